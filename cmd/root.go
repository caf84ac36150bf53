// Package cmd implements the CLI command structure for smallt.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smallt/internal/config"
	"smallt/internal/exitcode"
	"smallt/internal/logging"
	"smallt/internal/store"
	"smallt/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the smallt CLI and returns the process exit code.
func Run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var ee *exitErr
		if errors.As(err, &ee) {
			return ee.code
		}
		return exitcode.UserError
	}
	return exitcode.Success
}

// exitErr carries a process exit code through cobra's error path.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func ioErr(err error) error {
	return &exitErr{code: exitcode.IOError, err: err}
}

// options holds the persistent flag values.
type options struct {
	file    string
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "smallt",
		Short: "A tiny task manager backed by a Markdown checklist",
		Long: "smallt keeps a to-do list as GitHub-style Markdown checkboxes in\n" +
			"tasks.md in the current directory. Run it without arguments for the\n" +
			"interactive shell, or use the subcommands for one-shot operations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "task file to use (default "+config.DefaultTaskFile+")")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newAddCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads config, applies flag overrides, and builds the store and theme.
func setup(opts *options) (*config.Config, *store.Store, ui.Theme, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, ui.Theme{}, err
	}
	if opts.file != "" {
		cfg.TaskFile = opts.file
	}
	if opts.noColor {
		cfg.NoColor = true
	}

	th := ui.BlueTheme()
	if cfg.NoColor {
		th = ui.PlainTheme()
	}
	return cfg, store.New(cfg.TaskFile), th, nil
}

// runShell starts the interactive command loop. A task file that exists but
// cannot be read is fatal here; a missing file is just an empty list.
func runShell(opts *options) error {
	cfg, st, th, err := setup(opts)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.New(cfg.LogFile)
	if err != nil {
		return ioErr(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	list, err := st.Load()
	if err != nil {
		return ioErr(err)
	}

	return ui.Run(list, st,
		ui.WithTheme(th),
		ui.WithLogger(logger),
		ui.WithConfirmDestructive(cfg.ConfirmDestructive),
	)
}
