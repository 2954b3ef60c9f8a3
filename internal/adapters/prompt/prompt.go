// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/ui/output"
	"go.trai.ch/mcvm/internal/ui/style"
	"go.trai.ch/zerr"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	renderer    *lipgloss.Renderer
	assumeYes   bool
	interactive bool
}

// New creates a Prompter. With assumeYes every question is answered yes
// without reading input.
func New(in io.Reader, out io.Writer, assumeYes bool) *Prompter {
	return &Prompter{
		in:        bufio.NewScanner(in),
		out:       out,
		renderer:    output.NewRenderer(out),
		assumeYes:   assumeYes,
		interactive: true,
	}
}

// WithInteractive sets whether input comes from a terminal. Without one
// every question is answered no unless assumeYes is set.
func (p *Prompter) WithInteractive(interactive bool) *Prompter {
	p.interactive = interactive
	return p
}

type answer struct {
	yes bool
	err error
}

// Confirm asks question and reports whether the user answered yes.
// Anything other than "y" or "yes" is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	if !p.interactive {
		return false, nil
	}

	marker := style.Notice(p.renderer).Render(style.Warning)
	if _, err := fmt.Fprintf(p.out, "%s %s [y/N]: ", marker, question); err != nil {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	ch := make(chan answer, 1)
	go func() {
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				ch <- answer{err: zerr.Wrap(err, domain.ErrPromptFailed.Error())}
				return
			}
			ch <- answer{}
			return
		}
		text := strings.ToLower(strings.TrimSpace(p.in.Text()))
		ch <- answer{yes: text == "y" || text == "yes"}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		return a.yes, a.err
	}
}
