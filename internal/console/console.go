// Package console prints the friendly progress lines a person watching the
// run reads. It carries no behavior; all decisions are logged structurally
// elsewhere.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	startStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B392F0")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A90E2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Printer writes leveled, badge-prefixed progress lines.
type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) line(style lipgloss.Style, badge, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", style.Render(badge), fmt.Sprintf(format, args...))
}

func (p *Printer) Start(format string, args ...any)   { p.line(startStyle, "◐", format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.line(infoStyle, "ℹ", format, args...) }
func (p *Printer) Warn(format string, args ...any)    { p.line(warnStyle, "⚠", format, args...) }
func (p *Printer) Success(format string, args ...any) { p.line(successStyle, "✔", format, args...) }
func (p *Printer) Error(format string, args ...any)   { p.line(errorStyle, "✖", format, args...) }
