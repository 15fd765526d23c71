package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbeckham/rebind/internal/config"
	"github.com/jbeckham/rebind/internal/input"
	"github.com/jbeckham/rebind/internal/logger"
)

func newBindingsCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Inspect and manage the saved bindings",
	}

	// setup loads the config and sends logs to stderr.
	setup := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := load()
		if err != nil {
			return nil, err
		}
		logger.Init(logger.Config{
			Level:  cfg.Logging.Level,
			Format: "console",
			Output: cmd.ErrOrStderr(),
		})
		return cfg, nil
	}

	var defaults bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				printTable(cmd.OutOrStdout(), input.DefaultControls)
				return nil
			}
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			table := input.NewTable()
			loadTable(table, config.FileStore{Path: cfg.BindingsPath()})
			printTable(cmd.OutOrStdout(), table.Controls)
			return nil
		},
	}
	show.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the saved bindings with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := config.SaveBindings(cfg.BindingsPath(), input.NewTable().Serialize()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", cfg.BindingsPath())
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a bindings file and make it the saved bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			table, err := importBindings(args[0])
			if err != nil {
				return err
			}
			if err := config.SaveBindings(cfg.BindingsPath(), table.Serialize()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s\n", args[0], cfg.BindingsPath())
			return nil
		},
	}

	cmd.AddCommand(show, reset, importCmd)
	return cmd
}

// importBindings reads and validates the bindings file at path.
func importBindings(path string) (*input.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tokens, err := config.LoadBindings(path)
	if err != nil {
		return nil, err
	}
	table := input.NewTable()
	if err := table.Deserialize(tokens); err != nil {
		return nil, fmt.Errorf("invalid bindings in %s: %w", path, err)
	}
	return table, nil
}

// printTable writes one row per action using controls to look up its pair.
func printTable(w io.Writer, controls func(input.Action) (input.Control, input.Control, error)) {
	fmt.Fprintf(w, "%-14s %-12s %s\n", "ACTION", "PRIMARY", "ALTERNATE")
	for _, a := range input.Actions() {
		p, alt, _ := controls(a)
		fmt.Fprintf(w, "%-14s %-12s %s\n", a, p.Label(), alt.Label())
	}
}
