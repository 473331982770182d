package cli

import (
	"fmt"

	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newDeloadCmd(a *App) *cobra.Command {
	var blockStart string
	var every, slipTolerance, drop int

	cmd := &cobra.Command{
		Use:   "deload",
		Short: "Check whether a deload week is due",
		Long: `Check the deload triggers: the calendar cadence (every N weeks of the
block) and performance slips (rep totals dropping at the same load).

Defaults come from the config file; flags override them for this run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.deloadRequest()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("block-start") {
				start, err := domain.ParseDate(blockStart)
				if err != nil {
					return fmt.Errorf("invalid --block-start: %w", err)
				}
				req.BlockStart = start
			}
			if flags.Changed("every") {
				req.EveryWeeks = every
			}
			if flags.Changed("slip-tolerance") {
				req.SlipTolerance = slipTolerance
			}
			if flags.Changed("drop") {
				req.DropPct = drop
			}

			resp, err := a.Deload.Check(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeload(resp))
			return nil
		},
	}

	cfg := a.settings()
	cmd.Flags().StringVar(&blockStart, "block-start", cfg.Deload.BlockStart, "First day of the training block (YYYY-MM-DD)")
	cmd.Flags().IntVar(&every, "every", cfg.Deload.EveryWeeks, "Deload every N weeks (0 disables the calendar check)")
	cmd.Flags().IntVar(&slipTolerance, "slip-tolerance", cfg.Deload.SlipTolerance, "Slips that trigger a deload")
	cmd.Flags().IntVar(&drop, "drop", cfg.Deload.DropPct, "Weight reduction during the deload week, percent")

	return cmd
}
