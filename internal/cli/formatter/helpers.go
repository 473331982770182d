package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return renderBox(title, content, ColorDim)
}

// RenderAlert is RenderBox with a red border.
func RenderAlert(title string, content string) string {
	return renderBox(title, content, ColorRed)
}

func renderBox(title, content string, border lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Weight renders a load such as "52.5 kg".
func Weight(w decimal.Decimal) string {
	return w.String() + " kg"
}

// Reps renders per-set reps as "10/10/11".
func Reps(reps []int) string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, "/")
}

// RPE renders an effort rating, or "–" when the set was not rated.
func RPE(rpe float64) string {
	if rpe == 0 {
		return "–"
	}
	return strconv.FormatFloat(rpe, 'f', -1, 64)
}

// RepRange renders "6-10".
func RepRange(low, high int) string {
	return fmt.Sprintf("%d-%d", low, high)
}

// DaysAgo describes a calendar date relative to today.
func DaysAgo(date, today time.Time) string {
	days := int(domain.CalendarDate(today).Sub(domain.CalendarDate(date)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days > 1 && days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days >= 14 && days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	case days >= 60:
		return fmt.Sprintf("%dmo ago", days/30)
	default:
		return date.Format(domain.DateLayout)
	}
}

// Truncate shortens s to n visible runes with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "…"
}
