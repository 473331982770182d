package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ModeStyle colors a recommendation by how aggressive it is.
func ModeStyle(mode domain.Mode) lipgloss.Style {
	switch mode {
	case domain.ModeAddWeight:
		return StyleGreen
	case domain.ModeAddRep:
		return StyleBlue
	default:
		return StylePurple
	}
}

// ModePill returns a short colored tag such as "▲ ADD WEIGHT".
func ModePill(mode domain.Mode) string {
	switch mode {
	case domain.ModeAddWeight:
		return StyleGreen.Render("▲ ADD WEIGHT")
	case domain.ModeAddRep:
		return StyleBlue.Render("● ADD REPS")
	default:
		return StylePurple.Render("○ START")
	}
}

// CategoryStyle colors an exercise category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryMain:
		return StyleHeader
	case domain.CategoryIsolation:
		return StyleBlue
	case domain.CategoryCore:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
