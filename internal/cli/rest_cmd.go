package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRestCmd(a *App) *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Count down a rest interval between sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seconds <= 0 {
				return fmt.Errorf("--seconds must be positive, got %d", seconds)
			}
			if a.RunProgram == nil && !a.interactive() {
				return errors.New("rest timer needs an interactive terminal")
			}
			a.logger().InfoContext(cmd.Context(), "rest_start", "seconds", seconds)
			return a.runProgram(newRestModel(time.Duration(seconds) * time.Second))
		},
	}

	cmd.Flags().IntVarP(&seconds, "seconds", "s", a.settings().RestSeconds, "Rest interval in seconds")

	return cmd
}
