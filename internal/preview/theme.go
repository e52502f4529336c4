package preview

import "github.com/charmbracelet/lipgloss"

// Theme holds the preview palette.
type Theme struct {
	Accent  string
	Text    string
	Muted   string
	Success string
	Danger  string
	Border  string
}

// DefaultTheme is a warm bakery palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:  "#C2185B",
		Text:    "#3E2723",
		Muted:   "#8D6E63",
		Success: "#2E7D32",
		Danger:  "#C62828",
		Border:  "#D7CCC8",
	}
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Heading lipgloss.Style
	Active  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Spinner lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),
		Active: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(t.Accent)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
	}
}
