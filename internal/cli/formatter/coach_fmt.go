package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/plan"
)

// FormatPlan renders the catalog of each requested day as a table.
func FormatPlan(c *plan.Catalog, days []domain.Day) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header("Day " + day.String()))
		b.WriteString("\n")
		rows := make([][]string, 0, len(c.Exercises(day)))
		for _, spec := range c.Exercises(day) {
			rows = append(rows, []string{
				spec.Name,
				RepRange(spec.RepRangeLow, spec.RepRangeHigh),
				"+" + Weight(spec.WeightIncrement),
				CategoryStyle(spec.Category).Render(string(spec.Category)),
				strconv.Itoa(c.SetsTarget(spec.Category)),
			})
		}
		b.WriteString(RenderTable([]string{"EXERCISE", "REPS", "STEP", "CATEGORY", "SETS"}, rows, 1, 2, 4))
	}
	return b.String()
}

// FormatRecommendation renders one exercise's coaching block.
func FormatRecommendation(name string, rec domain.Recommendation, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(name), ModePill(rec.Mode))
	fmt.Fprintf(&b, "  %s\n", ModeStyle(rec.Mode).Render(rec.Message))

	target := fmt.Sprintf("%d × %s reps", rec.SetsTarget, RepRange(rec.RepRangeLow, rec.RepRangeHigh))
	if rec.Mode != domain.ModeStart {
		target += " @ " + Weight(rec.SuggestedBaseWeight)
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("target"), target)

	if rec.LastDate != nil {
		fmt.Fprintf(&b, "  %s %s × %s (%s)\n",
			Dim("last  "), Weight(rec.LastWeight), Reps(rec.LastReps), DaysAgo(*rec.LastDate, today))
	}
	return b.String()
}

// FormatSession renders a session plan: one coaching block per exercise with
// today's progress.
func FormatSession(resp *app.SessionPlanResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Day %s · %s", resp.Day, resp.Date.Format("Mon Jan 2"))))
	b.WriteString("\n")
	for _, ex := range resp.Exercises {
		b.WriteString("\n")
		name := ex.Exercise
		if ex.Substituted {
			name += Dim(" (for " + ex.Planned.Name + ")")
		}
		b.WriteString(FormatRecommendation(name, ex.Recommendation, resp.Date))
		fmt.Fprintf(&b, "  %s %s", Dim("today "), RenderSetProgress(len(ex.TodaySets), ex.Recommendation.SetsTarget))
		if len(ex.TodaySets) > 0 {
			b.WriteString("  " + Dim(loggedSummary(ex.TodaySets)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func loggedSummary(sets []domain.SetRecord) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = fmt.Sprintf("%s×%d", s.Weight, s.Reps)
		if s.RPE > 0 {
			parts[i] += "@" + RPE(s.RPE)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatSetList renders logged sets newest first, as returned by ListRecent.
func FormatSetList(records []domain.SetRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.DateString(),
			r.Day.String(),
			r.Exercise,
			strconv.Itoa(r.SetNumber),
			Weight(r.Weight),
			strconv.Itoa(r.Reps),
			RPE(r.RPE),
			Truncate(r.Note, 30),
		})
	}
	return RenderTable([]string{"DATE", "DAY", "EXERCISE", "SET", "WEIGHT", "REPS", "RPE", "NOTE"}, rows, 3, 4, 5, 6)
}

// FormatLoggedSet confirms a single logged set.
func FormatLoggedSet(r *domain.SetRecord) string {
	line := fmt.Sprintf("Logged %s set %d: %s × %d", r.Exercise, r.SetNumber, Weight(r.Weight), r.Reps)
	if r.RPE > 0 {
		line += " @ RPE " + RPE(r.RPE)
	}
	return StyleGreen.Render("✔") + " " + line + Dim(fmt.Sprintf(" (day %s, %s)", r.Day, r.DateString()))
}
