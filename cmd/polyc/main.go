// Package main implements the polyc command, which parses, checks and runs
// polynomial programs.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/polyc/internal/check"
	"github.com/you-not-fish/polyc/internal/config"
	"github.com/you-not-fish/polyc/internal/interp"
	"github.com/you-not-fish/polyc/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

// Exit statuses.
const (
	exitOK       = 0
	exitProgram  = 1 // syntax or semantic error in the program
	exitUsage    = 2 // bad flags, config or unreadable input
	exitInternal = 3 // internal fault during execution
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// exitError carries an exit status out of a command. A nil err means the
// diagnostic was already written.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// app holds the state shared by the subcommands.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	cfgFile string
	verbose bool
	memory  int
	tasks   []int

	conf *config.Config
	log  *slog.Logger
}

// run executes the command line args and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			a.errorf("%v", ee.err)
		}
		return ee.code
	}
	a.errorf("%v", err)
	return exitUsage
}

// errorf writes a diagnostic to stderr, colored unless disabled.
func (a *app) errorf(format string, args ...interface{}) {
	c := color.New(color.FgRed, color.Bold)
	if a.conf != nil && !a.conf.UseColor() {
		c.DisableColor()
	}
	c.Fprintf(a.stderr, "polyc: "+format+"\n", args...)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polyc",
		Short: "Polynomial program checker and interpreter",
		Long: `polyc parses programs made of TASKS, POLY, EXECUTE and INPUTS sections,
checks them and evaluates their statements.

The TASKS section selects what happens:
  1  semantic checks and syntax error reporting
  2  execution
  3  uninitialized-use warning
  4  useless-assignment warning`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./polyc.toml, ./polyc.yaml or ./polyc.yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.IntVar(&a.memory, "memory", 0, "number of memory slots (overrides memory_size)")
	flags.IntSliceVar(&a.tasks, "tasks", nil, "tasks enabled in addition to the TASKS section")

	root.AddCommand(
		a.runCmd(),
		a.checkCmd(),
		a.tokensCmd(),
		a.astCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	conf, err := config.Discover(a.cfgFile, ".")
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	if cmd.Flags().Changed("memory") {
		conf.MemorySize = a.memory
	}
	conf.ExtraTasks = append(conf.ExtraTasks, a.tasks...)
	if a.verbose {
		conf.LogLevel = "debug"
	}
	if err := conf.Validate(); err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	a.conf = conf
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: conf.Level()}))
	a.log.Debug("config", "path", conf.Path, "memory_size", conf.MemorySize, "extra_tasks", conf.ExtraTasks)
	return nil
}

// open returns the named input; "-" or no name is stdin.
func (a *app) open(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(a.stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}
	return f, nil
}

// exitStatus classifies a pipeline error.
func exitStatus(err error) int {
	var (
		serr  *syntax.SyntaxError
		cerr  *check.SemanticError
		fault *interp.Fault
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &serr), errors.As(err, &cerr):
		return exitProgram
	case errors.As(err, &fault):
		return exitInternal
	}
	return exitUsage
}
