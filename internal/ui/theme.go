package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, DoneText, TrashText, Help           lipgloss.Style

	BoxUnchecked, BoxChecked, BoxTrashed string
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor
	SymDone, SymPending, SymTrash        string
	SymOK, SymFail                       string
}

var themeNames = []string{"classic", "neon", "mono"}

var current = classic()

// Themes lists the names SetTheme understands.
func Themes() []string { return append([]string(nil), themeNames...) }

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range themeNames {
		if t == n {
			return true
		}
	}
	return false
}

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		DoneText:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		TrashText:    lipgloss.NewStyle().Faint(true).Italic(true),
		Help:         lipgloss.NewStyle().Faint(true),
		BoxUnchecked: "☐", BoxChecked: "☑", BoxTrashed: "☒",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDone:     "✔", SymPending: "•", SymTrash: "🗑",
		SymOK: "✔", SymFail: "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.BoxUnchecked, t.BoxChecked, t.BoxTrashed = "◻", "◼", "◌"
	t.BorderColor = lipgloss.Color("13")
	return t
}

// mono renders without colour and with ASCII-only symbols.
func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
		Selected: plain, DoneText: plain, TrashText: plain, Help: plain,
		BoxUnchecked: "[ ]", BoxChecked: "[x]", BoxTrashed: "[-]",
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		SymDone:     "x", SymPending: "-", SymTrash: "d",
		SymOK: "ok", SymFail: "error:",
	}
}
