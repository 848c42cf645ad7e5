// Package cli holds terminal output helpers shared by the mimir command.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Output struct {
	enableColors bool
	success      lipgloss.Style
	warning      lipgloss.Style
	failure      lipgloss.Style
	muted        lipgloss.Style
}

func NewOutput() *Output {
	return &Output{
		enableColors: isTerminal(),
		success:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) render(style lipgloss.Style, text string) string {
	if !o.enableColors {
		return text
	}
	return style.Render(text)
}

func (o *Output) PrintHeader(msg string) {
	fmt.Println(msg)
	fmt.Println()
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  %s%s\n", o.render(o.success, "✓ "), formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  %s%s\n", o.render(o.warning, "⚠ "), formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "  %s%s\n", o.render(o.failure, "✗ "), formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Printf("    %s\n", o.render(o.muted, path))
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
