package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/repcoach/internal/app"
)

// FormatDeload renders the deload check. A triggered check becomes an alert
// box with the reduced targets; otherwise a single dim status line.
func FormatDeload(resp *app.DeloadResponse) string {
	if !resp.Triggered {
		return Dim(resp.Reason)
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(resp.Reason))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Deload week: ~%d%% less weight, sets −30–50%%, 3–4 reps in reserve.\n", resp.DropPct)

	if len(resp.Detail.Slips) > 0 {
		b.WriteString("\n" + Bold("Slips") + "\n")
		for _, s := range resp.Detail.Slips {
			fmt.Fprintf(&b, "  %s %s: %d → %d reps at %s (%s → %s)\n",
				s.Day, s.Exercise, s.PreviousReps, s.LatestReps, Weight(s.Weight),
				s.PreviousDate.Format("Jan 2"), s.LatestDate.Format("Jan 2"))
		}
	}

	if len(resp.Targets) > 0 {
		rows := make([][]string, 0, len(resp.Targets))
		for _, t := range resp.Targets {
			rows = append(rows, []string{t.Day.String(), t.Exercise, Weight(t.WorkingWeight), Weight(t.DeloadWeight)})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"DAY", "EXERCISE", "WORKING", "DELOAD"}, rows, 2, 3))
	}
	return RenderAlert("Deload", strings.TrimRight(b.String(), "\n"))
}
