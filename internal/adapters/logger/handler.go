package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mcvm/internal/ui/output"
	"go.trai.ch/mcvm/internal/ui/style"
)

// presentation is how one severity is shown on the terminal.
type presentation struct {
	icon  string
	color lipgloss.Color
}

func presentationFor(level slog.Level) presentation {
	switch {
	case level >= slog.LevelError:
		return presentation{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return presentation{icon: style.Warning, color: style.Yellow}
	case level < slog.LevelInfo:
		return presentation{icon: style.Dot, color: style.Slate}
	default:
		return presentation{color: style.White}
	}
}

// PrettyHandler writes one colored line per record, prefixed with the
// severity icon. Attributes follow the message as key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are stored with their group prefix already applied.
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w (stderr when nil).
// The level is read on every record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	p := presentationFor(r.Level)

	var sb strings.Builder
	if p.icon != "" {
		sb.WriteString(p.icon)
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})

	line := h.out.String(sb.String()).Foreground(termenv.RGBColor(string(p.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		// Attributes belong to the group that was open when they were added.
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := h.clone()
	next.group = name
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	c := *h
	return &c
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	sb.WriteByte(' ')
	if group != "" {
		sb.WriteString(group)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
