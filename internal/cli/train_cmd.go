package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// defaultEntryRPE prefills the effort select of every new set.
const defaultEntryRPE = 8.0

func repcoachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// setEntry holds the form values for one set, as typed.
type setEntry struct {
	Weight  string
	Reps    string
	RPE     float64
	Note    string
	Another bool
}

// newSetEntry prefills a set from the recommendation: the suggested base
// weight, the bottom of the rep range and RPE 8.
func newSetEntry(rec domain.Recommendation) setEntry {
	return setEntry{
		Weight:  rec.SuggestedBaseWeight.String(),
		Reps:    strconv.Itoa(rec.DefaultReps),
		RPE:     defaultEntryRPE,
		Another: true,
	}
}

func (e setEntry) request(day domain.Day, exercise string, date time.Time) (app.LogSetRequest, error) {
	weight, err := decimal.NewFromString(strings.TrimSpace(e.Weight))
	if err != nil {
		return app.LogSetRequest{}, fmt.Errorf("invalid weight %q", e.Weight)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(e.Reps))
	if err != nil {
		return app.LogSetRequest{}, fmt.Errorf("invalid reps %q", e.Reps)
	}
	return app.LogSetRequest{
		Date:     &date,
		Day:      day,
		Exercise: exercise,
		Weight:   weight,
		Reps:     reps,
		RPE:      e.RPE,
		Note:     strings.TrimSpace(e.Note),
	}, nil
}

// nextExercise returns the first exercise with sets left, or -1 when the
// session is complete.
func nextExercise(exercises []app.ExerciseCoaching) int {
	for i, ex := range exercises {
		if ex.SetsRemaining > 0 {
			return i
		}
	}
	return -1
}

func findCoaching(exercises []app.ExerciseCoaching, name string) (app.ExerciseCoaching, bool) {
	for _, ex := range exercises {
		if ex.Exercise == name {
			return ex, true
		}
	}
	return app.ExerciseCoaching{}, false
}

func rpeOptions() []huh.Option[float64] {
	opts := []huh.Option[float64]{huh.NewOption("not rated", 0.0)}
	for r := 6.0; r <= 10.0; r += 0.5 {
		opts = append(opts, huh.NewOption(formatter.RPE(r), r))
	}
	return opts
}

func exerciseForm(exercises []app.ExerciseCoaching, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(exercises))
	for _, ex := range exercises {
		label := fmt.Sprintf("%s  %d/%d", ex.Exercise, len(ex.TodaySets), ex.Recommendation.SetsTarget)
		options = append(options, huh.NewOption(label, ex.Exercise))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exercise").
				Options(options...).
				Value(choice),
		),
	).WithTheme(repcoachHuhTheme()).WithShowHelp(false)
}

func setForm(ex app.ExerciseCoaching, entry *setEntry) *huh.Form {
	rec := ex.Recommendation
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s, set %d", ex.Exercise, len(ex.TodaySets)+1)).
				Description(rec.Message),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&entry.Weight).
				Validate(validateWeight),
			huh.NewInput().
				Title("Reps").
				Description(formatter.RepRange(rec.RepRangeLow, rec.RepRangeHigh)).
				Value(&entry.Reps).
				Validate(validateReps),
			huh.NewSelect[float64]().
				Title("RPE").
				Options(rpeOptions()...).
				Value(&entry.RPE),
			huh.NewInput().
				Title("Note (optional)").
				Value(&entry.Note),
			huh.NewConfirm().
				Title("Log another set?").
				Value(&entry.Another),
		),
	).WithTheme(repcoachHuhTheme()).WithShowHelp(false)
}

func validateWeight(s string) error {
	w, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a number")
	}
	if w.IsNegative() {
		return errors.New("weight cannot be negative")
	}
	return nil
}

func validateReps(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("reps cannot be negative")
	}
	return nil
}

func newTrainCmd(a *App) *cobra.Command {
	var day domain.Day
	var subs []string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Log a session set by set with coached defaults",
		Long: `Walk through today's session. Each set form is prefilled from the
recommendation: the suggested weight, the bottom of the rep range and RPE 8.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.RunForm == nil && !a.interactive() {
				return errors.New("train needs an interactive terminal; use \"repcoach set log\" instead")
			}
			substitutions, err := parseSubstitutions(subs)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			for {
				now := a.now()
				session, err := a.Coach.SessionPlan(ctx, app.SessionPlanRequest{
					Day:           day,
					Now:           &now,
					Substitutions: substitutions,
				})
				if err != nil {
					return err
				}

				next := nextExercise(session.Exercises)
				if next < 0 {
					fmt.Fprintln(out, formatter.StyleGreen.Render("Session complete."))
					return nil
				}

				choice := session.Exercises[next].Exercise
				if err := a.runForm(exerciseForm(session.Exercises, &choice)); err != nil {
					return ignoreAbort(err)
				}
				ex, ok := findCoaching(session.Exercises, choice)
				if !ok {
					return fmt.Errorf("unknown exercise %q", choice)
				}

				entry := newSetEntry(ex.Recommendation)
				if err := a.runForm(setForm(ex, &entry)); err != nil {
					return ignoreAbort(err)
				}
				req, err := entry.request(day, ex.Exercise, session.Date)
				if err != nil {
					return err
				}
				rec, err := a.Log.LogSet(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatLoggedSet(rec))

				if !entry.Another {
					return nil
				}
			}
		},
	}

	addDayFlag(cmd, &day, true)
	cmd.Flags().StringArrayVar(&subs, "sub", nil, `Substitute an exercise for today ("Planned=Substitute", repeatable)`)

	return cmd
}

// ignoreAbort treats ctrl+c in a form as a normal exit.
func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
