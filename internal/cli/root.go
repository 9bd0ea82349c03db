// Package cli defines Cobra command definitions for the salesflow CLI.
// This file contains the root command, version flag, and shared wiring.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/config"
	"github.com/salesflow-dev/salesflow/internal/log"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/suggest"
	"github.com/salesflow-dev/salesflow/internal/tui"
	"github.com/salesflow-dev/salesflow/internal/tui/app"
)

var (
	dataDir string
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "salesflow",
	Short: "Interactive sales-script trainer and session tracker",
	Long: `Salesflow walks a fixed sales-call script as a directed flow of
conversation nodes. It tracks checkpoint completion and outcomes per
deal in local storage, and includes search and a quiz-style practice
mode over the script's Q&A.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the TUI if on a TTY.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		env, err := openEnv()
		if err != nil {
			return err
		}

		tuiApp := app.New(env.Config, env.Catalog, env.Controller, env.Logger)
		return tui.Run(tuiApp)
	},
}

// Env bundles the wired-up application services for a command invocation.
type Env struct {
	Dir        string
	Config     *config.Config
	Catalog    *catalog.Catalog
	Logger     *log.Logger
	Store      *session.Store
	Controller *session.Controller
}

// openEnv loads config and the catalog, and wires the store and controller
// over the configured backend. Missing config falls back to defaults.
func openEnv() (*Env, error) {
	baseDir := dataDir
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		baseDir = home
	}

	cfg, err := config.ReadConfig(baseDir)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("loading script catalog: %w", err)
	}

	dir := config.Dir(baseDir)

	// Logging is best-effort; a broken log directory never blocks the app.
	logger, err := log.NewLogger(dir)
	if err != nil {
		logger = nil
	}

	backend, err := openBackend(cfg, dir)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(backend, cat, logger)
	ctrl := session.NewController(store, cat, func(s session.Session) []string {
		return suggest.Generate(cat, s)
	})

	return &Env{
		Dir:        dir,
		Config:     cfg,
		Catalog:    cat,
		Logger:     logger,
		Store:      store,
		Controller: ctrl,
	}, nil
}

func openBackend(cfg *config.Config, dir string) (session.Backend, error) {
	switch cfg.Storage.Backend {
	case "", "file":
		path := cfg.Storage.Path
		if path == "" {
			path = dir + "/sessions.json"
		}
		return session.NewFileBackend(path), nil
	case "sqlite":
		path := cfg.Storage.Path
		if path == "" {
			path = dir + "/sessions.db"
		}
		return session.NewSQLiteBackend(path)
	case "memory":
		return session.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Base directory for salesflow data (defaults to your home directory)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reportCmd)
}
