package cli

import (
	"fmt"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(a *App) *cobra.Command {
	var day domain.Day
	var exercise, planned string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next session for one exercise",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.Coach.Suggest(cmd.Context(), app.SuggestRequest{
				Day:      day,
				Exercise: exercise,
				Planned:  planned,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendation(exercise, *rec, a.now()))
			return nil
		},
	}

	addDayFlag(cmd, &day, true)
	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise name")
	cmd.Flags().StringVar(&planned, "planned", "", "Planned exercise this one replaces (uses its rep range and step)")
	_ = cmd.MarkFlagRequired("exercise")

	return cmd
}
