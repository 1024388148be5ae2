package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every view draws with.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Cell, Help                 lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, Bullet, Cursor string
}

var current = classic()

// ThemeNames lists the accepted SetTheme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// SetTheme switches the current theme. Unknown names keep the current one.
func SetTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		current = classic()
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
	}
	return nil
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Cell:        lipgloss.NewStyle().Underline(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔",
		SymFail:     "✖",
		Bullet:      "•",
		Cursor:      "> ",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // bright magenta
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	t.BorderColor = lipgloss.Color("13")
	t.Bullet = "◆"
	t.Cursor = "» "
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:        "mono",
		Title:       plain,
		Muted:       plain,
		Accent:      plain,
		Success:     plain,
		Error:       plain,
		Selected:    plain,
		Cell:        plain,
		Help:        plain,
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		SymOK:       "ok",
		SymFail:     "error:",
		Bullet:      "-",
		Cursor:      "> ",
	}
}
