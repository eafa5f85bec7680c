// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a colour palette for everything the wallet prints.
type Theme struct {
	Name     string
	Primary  lipgloss.Color // titles and headers
	Text     lipgloss.Color
	Accent   lipgloss.Color // highlighted figures
	Subtle   lipgloss.Color
	Border   lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Warning  lipgloss.Color
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic-dark"

var themes = map[string]Theme{
	"classic-dark": {
		Name:     "classic-dark",
		Primary:  lipgloss.Color("#FF6B6B"),
		Text:     lipgloss.Color("#FAFAFA"),
		Accent:   lipgloss.Color("#95E1D3"),
		Subtle:   lipgloss.Color("#666666"),
		Border:   lipgloss.Color("#404040"),
		Positive: lipgloss.Color("#4ECDC4"),
		Negative: lipgloss.Color("#FF6B6B"),
		Warning:  lipgloss.Color("#FFE66D"),
	},
	"synthwave": {
		Name:     "synthwave",
		Primary:  lipgloss.Color("#FF71CE"),
		Text:     lipgloss.Color("#01CDFE"),
		Accent:   lipgloss.Color("#FFF01F"),
		Subtle:   lipgloss.Color("#B967FF"),
		Border:   lipgloss.Color("#FF71CE"),
		Positive: lipgloss.Color("#05FFA1"),
		Negative: lipgloss.Color("#FF3F6E"),
		Warning:  lipgloss.Color("#FFF01F"),
	},
	"solarized-dark": {
		Name:     "solarized-dark",
		Primary:  lipgloss.Color("#B58900"),
		Text:     lipgloss.Color("#839496"),
		Accent:   lipgloss.Color("#2AA198"),
		Subtle:   lipgloss.Color("#586E75"),
		Border:   lipgloss.Color("#586E75"),
		Positive: lipgloss.Color("#859900"),
		Negative: lipgloss.Color("#DC322F"),
		Warning:  lipgloss.Color("#CB4B16"),
	},
	"solarized-light": {
		Name:     "solarized-light",
		Primary:  lipgloss.Color("#CB4B16"),
		Text:     lipgloss.Color("#657B83"),
		Accent:   lipgloss.Color("#2AA198"),
		Subtle:   lipgloss.Color("#93A1A1"),
		Border:   lipgloss.Color("#93A1A1"),
		Positive: lipgloss.Color("#859900"),
		Negative: lipgloss.Color("#DC322F"),
		Warning:  lipgloss.Color("#B58900"),
	},
}

// ThemeNames lists the available themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	theme, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// Icons.
const (
	SuccessIcon  = "✓"
	ErrorIcon    = "✗"
	WarningIcon  = "⚠️"
	InfoIcon     = "ℹ️"
	WalletIcon   = "💾"
	ExpenseIcon  = "💸"
	IncomeIcon   = "💰"
	CalendarIcon = "📅"
	ForecastIcon = "🔮"
)

// TitleStyle is used for section titles.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// HeaderStyle is used for table headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
}

// CellStyle formats ordinary table cells.
func (t Theme) CellStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
}

// AmountStyle colours a signed figure.
func (t Theme) AmountStyle(negative bool) lipgloss.Style {
	color := t.Positive
	if negative {
		color = t.Negative
	}
	return lipgloss.NewStyle().Foreground(color).Padding(0, 1)
}

// BoxStyle is used for bordered content boxes.
func (t Theme) BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// FormatSuccess formats a success message with icon.
func (t Theme) FormatSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(t.Positive).Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func (t Theme) FormatError(message string) string {
	return lipgloss.NewStyle().Foreground(t.Negative).Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func (t Theme) FormatWarning(message string) string {
	return lipgloss.NewStyle().Foreground(t.Warning).Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func (t Theme) FormatInfo(message string) string {
	return lipgloss.NewStyle().Foreground(t.Accent).Render(InfoIcon + " " + message)
}

// FormatTitle formats a section title with an icon.
func (t Theme) FormatTitle(icon, title string) string {
	return t.TitleStyle().Render(icon + " " + title)
}

// FormatSubtle renders secondary text.
func (t Theme) FormatSubtle(text string) string {
	return lipgloss.NewStyle().Foreground(t.Subtle).Render(text)
}
