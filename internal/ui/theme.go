package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Accent string

	Success string
	Warning string
	Danger  string

	Border string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Surface)).
			Bold(true).
			Padding(0, 2),

		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		Paused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles holds the rendered lipgloss styles for a theme.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Display   lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Done      lipgloss.Style
	Footer    lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Nord":    nordTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Slate"}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name:       "Dracula",
		Background: "#282a36",
		Surface:    "#44475a",
		Text:       "#f8f8f2",
		Muted:      "#6272a4",
		Accent:     "#bd93f9",
		Success:    "#50fa7b",
		Warning:    "#f1fa8c",
		Danger:     "#ff5555",
		Border:     "#6272a4",
	}
}

func nordTheme() Theme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Theme{
		Name:       "Nord",
		Background: "#2e3440",
		Surface:    "#3b4252",
		Text:       "#eceff4",
		Muted:      "#4c566a",
		Accent:     "#88c0d0",
		Success:    "#a3be8c",
		Warning:    "#ebcb8b",
		Danger:     "#bf616a",
		Border:     "#4c566a",
	}
}

func slateTheme() Theme {
	// Neutral grays for terminals with limited color support.
	return Theme{
		Name:       "Slate",
		Background: "#1e242b",
		Surface:    "#2c333b",
		Text:       "#d7dde4",
		Muted:      "#7a8490",
		Accent:     "#8fb4d8",
		Success:    "#9ec49f",
		Warning:    "#d8c08f",
		Danger:     "#d89090",
		Border:     "#49525c",
	}
}
