package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/config"
	"github.com/alexanderramin/repcoach/internal/logging"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/alexanderramin/repcoach/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Log    service.LogService
	Coach  service.CoachService
	Deload service.DeloadService

	Catalog *plan.Catalog
	Config  *config.Config
	Logger  *slog.Logger

	// Now is the clock used for "today". Tests pin it.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal; the rest timer and
	// the train form refuse to start without one.
	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion. Defaults to a
	// full-screen tea.Program.
	RunProgram func(m tea.Model) error
	// RunForm runs one huh form. Defaults to form.Run.
	RunForm func(f *huh.Form) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (a *App) settings() *config.Config {
	if a.Config != nil {
		return a.Config
	}
	cfg := config.DefaultConfig("")
	return &cfg
}

// NewRootCmd creates the top-level "repcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "repcoach",
		Short:         "Strength-training log with double-progression coaching",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
			cmd.SetContext(ctx)
			a.logger().DebugContext(ctx, "command_start", "args", args)
		},
	}

	root.AddCommand(
		newPlanCmd(a),
		newTodayCmd(a),
		newSuggestCmd(a),
		newSetCmd(a),
		newDeloadCmd(a),
		newRestCmd(a),
		newTrainCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)

	return root
}

// deloadRequest builds a deload check from configured defaults.
func (a *App) deloadRequest() (app.DeloadRequest, error) {
	cfg := a.settings()
	req := app.DeloadRequest{
		EveryWeeks:    cfg.Deload.EveryWeeks,
		SlipTolerance: cfg.Deload.SlipTolerance,
		DropPct:       cfg.Deload.DropPct,
	}
	start, ok, err := cfg.BlockStart()
	if err != nil {
		return req, err
	}
	if ok {
		req.BlockStart = start
	}
	now := a.now()
	req.Now = &now
	return req, nil
}
