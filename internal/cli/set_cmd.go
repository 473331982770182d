package cli

import (
	"fmt"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSetCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Log, undo and list sets",
	}

	cmd.AddCommand(
		newSetLogCmd(a),
		newSetUndoCmd(a),
		newSetListCmd(a),
	)

	return cmd
}

func newSetLogCmd(a *App) *cobra.Command {
	var day domain.Day
	var exercise, weight, note, date string
	var reps int
	var rpe float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log one working set",
		Long:  "Log one working set. The set number is assigned automatically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := decimal.NewFromString(weight)
			if err != nil {
				return fmt.Errorf("invalid --weight %q: %w", weight, err)
			}
			d, err := resolveDate(date, a.now())
			if err != nil {
				return err
			}

			rec, err := a.Log.LogSet(cmd.Context(), app.LogSetRequest{
				Date:     &d,
				Day:      day,
				Exercise: exercise,
				Weight:   w,
				Reps:     reps,
				RPE:      rpe,
				Note:     note,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLoggedSet(rec))
			return nil
		},
	}

	addDayFlag(cmd, &day, true)
	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise name")
	cmd.Flags().StringVarP(&weight, "weight", "w", "0", "Weight in kg")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "Repetitions")
	cmd.Flags().Float64Var(&rpe, "rpe", 0, "Rate of perceived exertion, 5-10 (0 = not recorded)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&date, "date", "", "Session date YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("reps")

	return cmd
}

func newSetUndoCmd(a *App) *cobra.Command {
	var day domain.Day
	var exercise, date string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove the last set logged for an exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDate(date, a.now())
			if err != nil {
				return err
			}
			removed, err := a.Log.UndoLast(cmd.Context(), app.UndoSetRequest{
				Date:     &d,
				Day:      day,
				Exercise: exercise,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s set %d (%s × %d).\n",
				removed.Exercise, removed.SetNumber, formatter.Weight(removed.Weight), removed.Reps)
			return nil
		},
	}

	addDayFlag(cmd, &day, true)
	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise name")
	cmd.Flags().StringVar(&date, "date", "", "Session date YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("exercise")

	return cmd
}

func newSetListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the most recent sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.Log.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, formatter.Dim("No sets logged yet."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatSetList(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 30, "Number of sets to show")

	return cmd
}
