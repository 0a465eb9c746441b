package tui

import "github.com/charmbracelet/lipgloss"

// Theme - стили терминального интерфейса
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Selected    lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	Overlay     lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Rating      lipgloss.Style
}

// DefaultTheme - тема по умолчанию
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#c0392b")).
		Padding(0, 1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#404040")),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		MarginTop(1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#c0392b")).
		Padding(1, 2),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Width(10),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	Rating: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f1c40f")),
}

// markerStyle - цвет маркера кухни
func markerStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
