package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/polyc/internal/driver"
	"github.com/you-not-fish/polyc/internal/syntax"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Check and execute a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.pipeline(args, driver.ModeRun)
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Check a program and report diagnostics without executing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.pipeline(args, driver.ModeCheck)
		},
	}
}

// pipeline runs the driver and writes the program's output.
func (a *app) pipeline(args []string, mode driver.Mode) error {
	f, err := a.open(args)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := driver.Run(f, driver.Options{
		Mode:   mode,
		Config: a.conf,
		Logger: a.log,
		Dump:   a.stderr,
	})
	if r != nil {
		if _, werr := r.WriteTo(a.stdout); werr != nil {
			return &exitError{code: exitUsage, err: werr}
		}
	}
	switch code := exitStatus(err); code {
	case exitOK:
		return nil
	case exitProgram:
		// already on stdout
		return &exitError{code: code}
	default:
		return &exitError{code: code, err: err}
	}
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args)
			if err != nil {
				return err
			}
			defer f.Close()

			var errs []string
			errh := func(line, col uint32, msg string) {
				errs = append(errs, fmt.Sprintf("%d:%d: %s", line, col, msg))
			}
			ts := syntax.NewTokenStream(f, errh)

			w := a.stdout
			fmt.Fprintf(w, "%-10s %-8s %s\n", "POSITION", "TOKEN", "LITERAL")
			fmt.Fprintf(w, "%-10s %-8s %s\n", strings.Repeat("-", 10), strings.Repeat("-", 8), strings.Repeat("-", 10))
			for {
				it := ts.Next()
				fmt.Fprintf(w, "%-10s %-8s %q\n", it.Pos, it.Tok, it.Lit)
				if it.Tok.IsEOF() {
					break
				}
			}

			if len(errs) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Errors:")
				for _, e := range errs {
					fmt.Fprintf(w, "  %s\n", e)
				}
				return &exitError{code: exitProgram}
			}
			return nil
		},
	}
}

func (a *app) astCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "yaml":
			default:
				return &exitError{code: exitUsage, err: fmt.Errorf("unknown format %q (want text, json or yaml)", format)}
			}

			f, err := a.open(args)
			if err != nil {
				return err
			}
			defer f.Close()

			prog, err := syntax.NewParser(f, nil, nil).Parse()
			if err != nil {
				return &exitError{code: exitProgram, err: err}
			}

			switch format {
			case "json":
				err = syntax.FprintJSON(a.stdout, prog)
			case "yaml":
				err = syntax.FprintYAML(a.stdout, prog)
			default:
				syntax.Fprint(a.stdout, prog)
			}
			if err != nil {
				return &exitError{code: exitUsage, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "polyc version %s\n", Version)
			fmt.Fprintf(a.stdout, "go version %s\n", runtime.Version())
		},
	}
}
