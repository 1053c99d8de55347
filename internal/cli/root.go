// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the binops command line.
//
// Each subcommand is defined in its own file. Commands read their operands
// from positional arguments, call into the selected engine and print the
// result, or the error message verbatim, as text or JSON.
//
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/db47h/binops/internal/config"
	"github.com/db47h/binops/internal/engine"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Version is the binary version, set at build time.
var Version = "dev"

// app holds the state shared by all commands of one invocation.
type app struct {
	// flags
	configPath string
	engineName string
	jsonOutput bool
	verbose    bool

	cfg    config.Config
	engine engine.Engine
	log    *slog.Logger
}

// NewRootCommand creates the root command with all subcommands registered.
//
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "binops",
		Short: "Explore 4-bit binary arithmetic",
		Long: `binops adds 4-bit binary numbers with a ripple-carry adder or a
carry-look-ahead adder, and converts numbers between binary and decimal.

Additions are computed by logic functions (--engine logic) or by simulating
the equivalent gate circuits (--engine gates).`,
		// errors are printed by Run, as text or JSON.
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default $"+config.EnvConfig+" or "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&a.engineName, "engine", "", "addition engine: logic or gates")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		newAddCommand(a),
		newCLACommand(a),
		newToDecimalCommand(a),
		newToBinaryCommand(a),
		newDiagramCommand(a),
	)
	return root
}

// setup loads the configuration, applies command line flags and builds the
// logger and engine.
//
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	if a.engineName != "" {
		cfg.Engine = a.engineName
	}
	if a.jsonOutput {
		cfg.Output = config.OutputJSON
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	// errors raised past this point honor the configured output format.
	a.jsonOutput = cfg.Output == config.OutputJSON

	a.engine, err = engine.New(cfg.Engine, cfg.MaxSteps)
	if err != nil {
		return err
	}
	a.log.Debug("configured", "engine", a.engine.Name(), "output", cfg.Output, "carry_in", cfg.CarryIn, "max_steps", cfg.MaxSteps)
	return nil
}

// print writes a result. text is printed as is in text mode, v is encoded
// in JSON mode.
//
func (a *app) print(w io.Writer, text string, v interface{}) error {
	if a.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// printError writes err to w as "Error: <message>" or as a JSON object.
//
func (a *app) printError(w io.Writer, err error) {
	if a.jsonOutput {
		data, _ := json.MarshalIndent(map[string]interface{}{
			"error": map[string]string{"message": err.Error()},
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

// Run executes the command line args and returns the process exit code.
//
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if a.log != nil {
			a.log.Debug("command failed", "error", fmt.Sprintf("%+v", err))
		}
		a.printError(stderr, err)
		return 1
	}
	return 0
}
