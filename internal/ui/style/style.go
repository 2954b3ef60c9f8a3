// Package style provides shared UI styling primitives: brand colors, icons
// and the text styles used by command output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Heading styles section titles such as a package name.
func Heading(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Bold(true).Foreground(Iris)
}

// Muted styles secondary information.
func Muted(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Slate)
}

// Success styles completed work.
func Success(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Green)
}

// Failure styles failed work.
func Failure(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Red)
}

// Notice styles notices and warnings.
func Notice(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Yellow)
}
