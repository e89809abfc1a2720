package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"calix/internal/config"
	"calix/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	DBPath      string           `help:"Path to the calix database (overrides $CALIX_DB_PATH and settings)" name:"db-path" type:"path"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Catalog      CatalogCmd      `cmd:"catalog" help:"Browse exercises and workout templates"`
	History      HistoryCmd      `cmd:"history" help:"Review completed workouts"`
	Progressions ProgressionsCmd `cmd:"progressions" help:"Track skill progressions"`
	Settings     SettingsCmd     `cmd:"settings" help:"Manage settings (meta)"`
	Workout      WorkoutCmd      `cmd:"workout" help:"Run the workout in progress" default:"1"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("CALIX_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CALIX_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The storage layer reads CALIX_DEBUG to decide whether to log queries
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CALIX_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CALIX_DEBUG_FILE", logFilePath)
		}
	}

	// Container is created after logging so the storage logger has a destination
	container, err := NewContainer(c.settings.ResolveDBPath(c.DBPath))
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close flushes pending writes and closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *CLI) defaultTemplate() string {
	if c.settings == nil {
		return ""
	}
	return c.settings.DefaultTemplate
}
