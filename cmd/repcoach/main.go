package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/repcoach/internal/cli"
	"github.com/alexanderramin/repcoach/internal/config"
	"github.com/alexanderramin/repcoach/internal/db"
	"github.com/alexanderramin/repcoach/internal/logging"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/alexanderramin/repcoach/internal/repository"
	"github.com/alexanderramin/repcoach/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger, logCloser := logging.New(logging.Options{Path: cfg.LogPath, Level: level})
	defer logCloser.Close()

	catalog := plan.Default()
	if cfg.PlanPath != "" {
		if catalog, err = plan.Load(cfg.PlanPath); err != nil {
			return err
		}
	}

	sets, tx, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore.Close()
	logger.Debug("store_opened", slog.String("store", string(cfg.Store)))

	observer := service.NewLogUseCaseObserver(logger)
	app := &cli.App{
		Log:     service.NewLogService(sets, tx, observer),
		Coach:   service.NewCoachService(sets, catalog, observer),
		Deload:  service.NewDeloadService(sets, catalog, observer),
		Catalog: catalog,
		Config:  cfg,
		Logger:  logger,
	}

	// The rest timer and train form only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

// openStore wires the configured log backend.
func openStore(cfg *config.Config) (repository.SetRepo, repository.Transactor, io.Closer, error) {
	switch cfg.Store {
	case config.StoreCSV:
		sets := repository.NewCSVSetRepo(cfg.CSVPath)
		return sets, sets, closerFunc(func() error { return nil }), nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		return repository.NewSQLiteSetRepo(database), repository.NewSQLiteTransactor(uow), database, nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
