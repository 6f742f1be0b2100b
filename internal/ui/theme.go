package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + panel border.
// All renderers pull from Current().
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Pending, Error lipgloss.Style
	Selected, Done, Locked, Help                  lipgloss.Style

	BoxChecked, BoxUnchecked string
	SymDone, SymPending      string
	SymTrash                 string
	Cursor                   string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
}

// Themes lists the names SetTheme accepts.
var Themes = []string{"classic", "neon", "mono"}

var current = mustTheme("classic")

// ThemeNamed builds the theme called name (case-insensitive).
func ThemeNamed(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Locked:       lipgloss.NewStyle().Faint(true),
			Help:         lipgloss.NewStyle().Faint(true),
			BoxChecked:   "◼",
			BoxUnchecked: "◻",
			SymDone:      "✔",
			SymPending:   "•",
			SymTrash:     "♻",
			Cursor:       "❯ ",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
		}, nil
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain.Bold(true),
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Pending:      plain,
			Error:        plain,
			Selected:     plain.Bold(true),
			Done:         plain,
			Locked:       plain,
			Help:         plain,
			BoxChecked:   "[x]",
			BoxUnchecked: "[ ]",
			SymDone:      "x",
			SymPending:   "-",
			SymTrash:     "t",
			Cursor:       "> ",
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
			BorderColor: lipgloss.NoColor{},
		}, nil
	case "", "classic":
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Locked:       lipgloss.NewStyle().Faint(true),
			Help:         lipgloss.NewStyle().Faint(true),
			BoxChecked:   "☑",
			BoxUnchecked: "☐",
			SymDone:      "✔",
			SymPending:   "•",
			SymTrash:     "🗑",
			Cursor:       "> ",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("8"),
		}, nil
	default:
		return Theme{}, fmt.Errorf("ui: unknown theme %q", name)
	}
}

func mustTheme(name string) Theme {
	t, err := ThemeNamed(name)
	if err != nil {
		panic(err)
	}
	return t
}

// SetTheme switches the current theme.
func SetTheme(name string) error {
	t, err := ThemeNamed(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

// Current returns the active theme.
func Current() Theme { return current }
