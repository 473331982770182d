package cli

import (
	"fmt"

	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var day domain.Day
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the training plan",
		Long:  "Show the exercises of each training day with rep range, load step, category and set target.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := a.Catalog.Marshal()
				if err != nil {
					return fmt.Errorf("encoding plan: %w", err)
				}
				_, err = out.Write(data)
				return err
			}

			days := domain.Days
			if day != "" {
				days = []domain.Day{day}
			}
			fmt.Fprint(out, formatter.FormatPlan(a.Catalog, days))
			return nil
		},
	}

	addDayFlag(cmd, &day, false)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the plan as a YAML plan file")

	return cmd
}
