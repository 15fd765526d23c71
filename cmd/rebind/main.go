package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jbeckham/rebind/internal/config"
	"github.com/jbeckham/rebind/internal/console"
	"github.com/jbeckham/rebind/internal/input"
	"github.com/jbeckham/rebind/internal/logger"
	"github.com/jbeckham/rebind/internal/tui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	load := func() (*config.Config, error) {
		return loadConfig(configPath)
	}

	rootCmd := &cobra.Command{
		Use:           "rebind",
		Short:         "Rebindable input actions in the terminal",
		Long:          "Play with a fixed set of input actions and rebind their keys, mouse buttons and wheel directions.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default .rebind/config.yaml next to the executable)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newBindingsCmd(load))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig reads the config at path, or the default config when path is
// empty, creating the default config directory on first run.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if !config.DirExists() {
			dir, err := config.Init()
			if err != nil {
				return nil, fmt.Errorf("initializing config: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Created %s/\n", dir)
		}
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadTable replaces table with the saved bindings. Any failure keeps the
// defaults already in table.
func loadTable(table *input.Table, store console.Store) {
	tokens, err := store.Load()
	if err != nil {
		slog.Warn("Loading bindings failed, using defaults", "error", err)
		return
	}
	if tokens == nil {
		slog.Info("No saved bindings, using defaults")
		return
	}
	if err := table.Deserialize(tokens); err != nil {
		slog.Warn("Saved bindings rejected, using defaults", "error", err)
		return
	}
	slog.Info("Bindings loaded", "tokens", len(tokens))
}

func runTUI(cfg *config.Config) error {
	logFile, err := logger.OpenFile(cfg.LogPath())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: logFile,
	})

	store := config.FileStore{Path: cfg.BindingsPath()}
	table := input.NewTable()
	loadTable(table, store)
	loaded := table.Version()
	table.Subscribe(func() {
		slog.Debug("Binding table changed", "version", table.Version())
	})

	con := console.New(cfg.Console.Locked)
	console.Install(con, table, store)

	app := tui.NewApp(tui.Options{
		Table:   table,
		Console: con,
		Store:   store,
		Hold:    cfg.Hold(),
		Frame:   cfg.FrameInterval(),
	})

	slog.Info("Starting", "version", version, "bindings", store.Path)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	return saveOnExit(table, store, loaded)
}

// saveOnExit writes table to store if it changed since version loaded. An
// untouched table is never written, so a bindings file rejected at startup
// survives for the user to repair.
func saveOnExit(table *input.Table, store console.Store, loaded uint64) error {
	if table.Version() == loaded {
		slog.Debug("Bindings unchanged, not saving")
		return nil
	}
	if err := store.Save(table.Serialize()); err != nil {
		return fmt.Errorf("saving bindings: %w", err)
	}
	return nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the .rebind config directory next to the executable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.DirExists() {
				dir, _ := config.DefaultConfigDir()
				fmt.Fprintf(cmd.OutOrStdout(), "%s/ already exists\n", dir)
				return nil
			}
			dir, err := config.Init()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s/\n", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "  config.yaml  key hold window, frame rate, console lock, logging\n")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build info, and platform details",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rebind %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", buildDate)
			fmt.Fprintf(out, "  go:        %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
