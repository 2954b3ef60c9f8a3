package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mcvm/internal/ui/output"
	"go.trai.ch/mcvm/internal/ui/style"
)

// printer writes styled lines to a command's output.
// Styles are applied to single line fragments only.
type printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, r: output.NewRenderer(w)}
}

func (p *printer) println(parts ...string) {
	for i, s := range parts {
		if i > 0 {
			_, _ = io.WriteString(p.w, " ")
		}
		_, _ = io.WriteString(p.w, s)
	}
	_, _ = io.WriteString(p.w, "\n")
}

func (p *printer) heading(s string) string { return style.Heading(p.r).Render(s) }
func (p *printer) muted(s string) string   { return style.Muted(p.r).Render(s) }
func (p *printer) success(s string) string { return style.Success(p.r).Render(s) }
func (p *printer) failure(s string) string { return style.Failure(p.r).Render(s) }
func (p *printer) notice(s string) string  { return style.Notice(p.r).Render(s) }

func (p *printer) bold(s string) string {
	return p.r.NewStyle().Bold(true).Render(s)
}

// field prints an indented "label: value" line and skips empty values.
func (p *printer) field(label, value string) {
	if value == "" {
		return
	}
	p.println("  ", p.bold(label+":"), value)
}

func (p *printer) warn(format string, args ...any) {
	p.println(p.notice(style.Warning), fmt.Sprintf(format, args...))
}
