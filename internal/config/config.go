// Package config resolves repcoach settings from defaults, an optional YAML
// file, an optional .env file and REPCOACH_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store selects the log backend.
type Store string

const (
	StoreSQLite Store = "sqlite"
	StoreCSV    Store = "csv"
)

type Config struct {
	DBPath      string       `yaml:"db_path"`
	Store       Store        `yaml:"store"`
	CSVPath     string       `yaml:"csv_path"`
	PlanPath    string       `yaml:"plan_path"`
	LogPath     string       `yaml:"log_path"`
	LogLevel    string       `yaml:"log_level"`
	RestSeconds int          `yaml:"rest_seconds"`
	Deload      DeloadConfig `yaml:"deload"`
}

type DeloadConfig struct {
	EveryWeeks    int    `yaml:"every_weeks"`
	SlipTolerance int    `yaml:"slip_tolerance"`
	DropPct       int    `yaml:"drop_pct"`
	BlockStart    string `yaml:"block_start"`
}

// Dir is the per-user data directory under home.
func Dir(home string) string {
	return filepath.Join(home, ".repcoach")
}

// DefaultConfig returns the settings used when nothing is configured.
// PlanPath is empty, which selects the built-in two-day plan.
func DefaultConfig(home string) Config {
	dir := Dir(home)
	return Config{
		DBPath:      filepath.Join(dir, "repcoach.db"),
		Store:       StoreSQLite,
		CSVPath:     filepath.Join(dir, "workout_log.csv"),
		LogPath:     filepath.Join(dir, "repcoach.log"),
		LogLevel:    "info",
		RestSeconds: 90,
		Deload: DeloadConfig{
			EveryWeeks:    8,
			SlipTolerance: 2,
			DropPct:       35,
		},
	}
}

// Load resolves the configuration for home. The YAML file is
// $REPCOACH_CONFIG or ~/.repcoach/config.yaml; a missing file is not an error.
func Load(home string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	path := os.Getenv("REPCOACH_CONFIG")
	if path == "" {
		path = filepath.Join(Dir(home), "config.yaml")
	}
	return LoadFile(path, home)
}

// LoadFile is Load with an explicit YAML path.
func LoadFile(path, home string) (*Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REPCOACH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("REPCOACH_STORE"); v != "" {
		cfg.Store = Store(v)
	}
	if v := os.Getenv("REPCOACH_CSV"); v != "" {
		cfg.CSVPath = v
	}
	if v := os.Getenv("REPCOACH_PLAN"); v != "" {
		cfg.PlanPath = v
	}
	if v := os.Getenv("REPCOACH_LOG"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("REPCOACH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	applyIntEnv(&cfg.RestSeconds, "REPCOACH_REST_SECONDS")
	applyIntEnv(&cfg.Deload.EveryWeeks, "REPCOACH_DELOAD_EVERY_WEEKS")
	applyIntEnv(&cfg.Deload.SlipTolerance, "REPCOACH_DELOAD_SLIP_TOLERANCE")
	applyIntEnv(&cfg.Deload.DropPct, "REPCOACH_DELOAD_DROP_PCT")
	if v := os.Getenv("REPCOACH_BLOCK_START"); v != "" {
		cfg.Deload.BlockStart = v
	}
}

// applyIntEnv ignores values that do not parse, leaving the previous setting.
func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

// Validate returns the first problem found.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return errors.New("db_path is required for the sqlite store")
		}
	case StoreCSV:
		if c.CSVPath == "" {
			return errors.New("csv_path is required for the csv store")
		}
	default:
		return fmt.Errorf("store must be %q or %q, got %q", StoreSQLite, StoreCSV, c.Store)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.RestSeconds <= 0 {
		return fmt.Errorf("rest_seconds must be > 0, got %d", c.RestSeconds)
	}
	if c.Deload.EveryWeeks < 0 {
		return fmt.Errorf("deload.every_weeks must be >= 0, got %d", c.Deload.EveryWeeks)
	}
	if c.Deload.SlipTolerance < 0 {
		return fmt.Errorf("deload.slip_tolerance must be >= 0, got %d", c.Deload.SlipTolerance)
	}
	if c.Deload.DropPct < 1 || c.Deload.DropPct > 90 {
		return fmt.Errorf("deload.drop_pct must be within [1, 90], got %d", c.Deload.DropPct)
	}
	if _, _, err := c.BlockStart(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// BlockStart returns the configured training block start, if any.
func (c *Config) BlockStart() (time.Time, bool, error) {
	if c.Deload.BlockStart == "" {
		return time.Time{}, false, nil
	}
	t, err := domain.ParseDate(c.Deload.BlockStart)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("deload.block_start: %w", err)
	}
	return t, true, nil
}

// RestDuration is RestSeconds as a duration.
func (c *Config) RestDuration() time.Duration {
	return time.Duration(c.RestSeconds) * time.Second
}
