package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI chrome around the canvas.
type Theme struct {
	Name         string
	Primary      lipgloss.Color
	Secondary    lipgloss.Color
	Rotational   lipgloss.Color
	Irrotational lipgloss.Color
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
}

// Available themes
var (
	ThemeSlate = Theme{
		Name:         "slate",
		Primary:      lipgloss.Color("#60a5fa"), // Blue 400
		Secondary:    lipgloss.Color("#ffffff"),
		Rotational:   lipgloss.Color("#f97316"), // Orange 500
		Irrotational: lipgloss.Color("#38bdf8"), // Sky 400
		Text:         lipgloss.Color("#cbd5e1"),
		Muted:        lipgloss.Color("#64748b"),
		Border:       lipgloss.Color("#1e293b"),
	}

	ThemeRetroGreen = Theme{
		Name:         "retro",
		Primary:      lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:    lipgloss.Color("#88ff88"),
		Rotational:   lipgloss.Color("#ffff00"),
		Irrotational: lipgloss.Color("#00cc00"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Border:       lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:         "minimal",
		Primary:      lipgloss.Color("#ffffff"),
		Secondary:    lipgloss.Color("#cccccc"),
		Rotational:   lipgloss.Color("#ffffff"),
		Irrotational: lipgloss.Color("#888888"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666666"),
		Border:       lipgloss.Color("#444444"),
	}

	ThemeSunset = Theme{
		Name:         "sunset",
		Primary:      lipgloss.Color("#ff6b6b"), // Coral
		Secondary:    lipgloss.Color("#feca57"),
		Rotational:   lipgloss.Color("#ff9ff3"),
		Irrotational: lipgloss.Color("#48dbfb"),
		Text:         lipgloss.Color("#fff5f5"),
		Muted:        lipgloss.Color("#8b6b8c"),
		Border:       lipgloss.Color("#2d1b2e"),
	}

	// Default theme
	CurrentTheme = ThemeSlate

	// All available themes
	Themes = []Theme{
		ThemeSlate,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// LookupTheme returns a theme by name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeSlate, false
}

// SetTheme changes the current theme; unknown names fall back to slate.
func SetTheme(name string) {
	CurrentTheme, _ = LookupTheme(name)
}

// NextTheme cycles CurrentTheme through Themes.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeSlate
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
