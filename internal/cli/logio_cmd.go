package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/repcoach/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the whole log as CSV",
		Long:  `Export every logged set as CSV. Use "-" to write to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				_, err := a.Log.Export(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			n, err := a.Log.Export(cmd.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sets to %s\n", n, args[0])
			return nil
		},
	}
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append sets from a CSV log",
		Long: `Append sets from a CSV log with the columns
date, day, exercise, setNumber, weight, reps, rpe, note.

Set numbers are rewritten where needed so every session stays numbered 1..N.
Rows missing a date, day or exercise are skipped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			res, err := a.Log.Import(cmd.Context(), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d sets", res.Imported)
			if res.Renumbered > 0 {
				fmt.Fprintf(out, " (%d renumbered)", res.Renumbered)
			}
			fmt.Fprintln(out)
			for _, rowErr := range res.Skipped {
				fmt.Fprintln(out, formatter.StyleYellow.Render("  skipped: ")+rowErr.Error())
			}
			return nil
		},
	}
}
