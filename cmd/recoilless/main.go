// Package main is the entry point for the Recoilless editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/recoilless/internal/app"
	"github.com/dshills/recoilless/internal/cli"
	"github.com/dshills/recoilless/internal/config"
	"github.com/dshills/recoilless/internal/input/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit status, which is 0
// on every path.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrFileNotFound) {
			fmt.Fprintln(stdout, err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	return 0
}

type options struct {
	path       string
	name       string
	keys       bool
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "recoilless [FILE]",
		Short:         "A modal terminal text editor",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, opts, args)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	flags := cmd.Flags()
	flags.StringVarP(&opts.path, "path", "p", "", "open the file at `PATH`")
	flags.StringVarP(&opts.name, "name", "n", "", "open the file `NAME` in the current directory")
	flags.BoolVarP(&opts.keys, "keys", "k", false, "print the key reference and exit")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to `FILE`")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		_ = cli.Help(w, loadKeymaps(opts.configPath))
		fmt.Fprintf(w, "\nFlags:\n%s", c.Flags().FlagUsages())
	})

	return cmd
}

func runEditor(cmd *cobra.Command, opts options, args []string) error {
	if opts.keys {
		return cli.KeyReference(cmd.OutOrStdout(), loadKeymaps(opts.configPath))
	}

	target := cli.Target{Path: opts.path, Name: opts.name}
	if len(args) > 0 {
		target.Arg = args[0]
	}
	if target.Empty() {
		return cmd.Help()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return app.WrapError(err, "reading working directory")
	}
	path, err := target.Resolve(cwd)
	if err != nil {
		return err
	}

	editor, err := app.New(app.Options{
		Path:       path,
		ConfigPath: opts.configPath,
		LogFile:    opts.logFile,
		LogLevel:   opts.logLevel,
	})
	if err != nil {
		return app.WrapError(err, "starting editor")
	}
	defer editor.Close()

	return editor.Run()
}

// loadKeymaps returns the bindings the editor would use, overrides
// included, for help output.
func loadKeymaps(configPath string) *keymap.Registry {
	var copts []config.Option
	if configPath != "" {
		copts = append(copts, config.WithPath(configPath))
	}
	cfg := config.New(copts...)
	cfg.Load()

	reg, err := app.LoadKeymaps(cfg, app.NullLogger)
	if err != nil {
		reg = keymap.NewRegistry()
	}
	return reg
}
