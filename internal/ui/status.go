package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output streams; swapped in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects status and panel output.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// Stdout is the writer status and panel output goes to.
func Stdout() io.Writer { return stdout }

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(strings.Join(lines, "\n")))
}

// PanelString frames inner with the current theme's border.
func PanelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	return border.Render(inner)
}
