package cli

import (
	"fmt"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App) *cobra.Command {
	var day domain.Day
	var subs []string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Coach today's session",
		Long: `Show the target for every exercise of the day, the sets already logged
today and the deload status.

Use --sub to swap a planned exercise for another one, e.g.
  repcoach today --day A --sub "Bench Press=Dumbbell Press"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			substitutions, err := parseSubstitutions(subs)
			if err != nil {
				return err
			}

			now := a.now()
			resp, err := a.Coach.SessionPlan(ctx, app.SessionPlanRequest{
				Day:           day,
				Now:           &now,
				Substitutions: substitutions,
			})
			if err != nil {
				return err
			}

			dreq, err := a.deloadRequest()
			if err != nil {
				return err
			}
			deload, err := a.Deload.Check(ctx, dreq)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSession(resp))
			fmt.Fprintln(out, formatter.FormatDeload(deload))
			return nil
		},
	}

	addDayFlag(cmd, &day, true)
	cmd.Flags().StringArrayVar(&subs, "sub", nil, `Substitute an exercise for today ("Planned=Substitute", repeatable)`)

	return cmd
}
