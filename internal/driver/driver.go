// Package driver runs the polynomial program pipeline: parse with
// checkpoints, execute, then the advisory analyses.
package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/you-not-fish/polyc/internal/check"
	"github.com/you-not-fish/polyc/internal/config"
	"github.com/you-not-fish/polyc/internal/interp"
	"github.com/you-not-fish/polyc/internal/passes"
	"github.com/you-not-fish/polyc/internal/syntax"
)

// SyntaxErrorMessage is the line printed for a syntax error.
const SyntaxErrorMessage = "SYNTAX ERROR !!!!!&%!!"

// Mode selects how far the pipeline goes.
type Mode int

const (
	ModeRun   Mode = iota // parse, check, execute and analyze
	ModeCheck             // as ModeRun without execution
)

// Options configures one pipeline run.
type Options struct {
	Mode   Mode
	Config *config.Config // config.Default() if nil
	Logger *slog.Logger   // discarded if nil
	Dump   io.Writer      // pass dumps; os.Stderr if nil
}

// Result is what a run leaves for the program's standard output.
type Result struct {
	RunID string
	Prog  *syntax.Program // nil after a syntax error
	Info  *check.Info

	// Output holds the OUTPUT lines written before the run ended.
	Output []byte

	// Diag is the terminating diagnostic line, if any.
	Diag string

	Warnings []check.Warning
}

// WriteTo writes the result in output order: execution output, then the
// terminating diagnostic or the warnings.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	b.Write(r.Output)
	if r.Diag != "" {
		b.WriteString(r.Diag)
		b.WriteByte('\n')
	} else {
		for _, wn := range r.Warnings {
			b.WriteString(wn.String())
			b.WriteByte('\n')
		}
	}
	return b.WriteTo(w)
}

// Run executes the program read from src. The returned error is a
// *syntax.SyntaxError, *check.SemanticError or *interp.Fault when the
// program ended the run; r.Diag then holds the line to print, if any.
func Run(src io.Reader, opts Options) (*Result, error) {
	conf := opts.Config
	if conf == nil {
		conf = config.Default()
	}
	r := &Result{RunID: uuid.NewString(), Info: &check.Info{}}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = log.With("run", r.RunID)

	prog, tasksKnown, err := parse(src, conf, r.Info, log)
	if err != nil {
		var serr *syntax.SyntaxError
		var cerr *check.SemanticError
		switch {
		case errors.As(err, &serr):
			// Before TASKS is complete the task set is unknown and the
			// error is always shown.
			if !tasksKnown || r.Info.Tasks.Has(check.TaskChecks) {
				r.Diag = SyntaxErrorMessage
			}
			log.Debug("syntax error", "err", err, "shown", r.Diag != "")
		case errors.As(err, &cerr):
			r.Diag = cerr.Error()
			log.Debug("semantic error", "code", int(cerr.Code), "lines", cerr.Lines)
		}
		return r, err
	}
	r.Prog = prog
	tasks := r.Info.Tasks
	log.Debug("parsed", "polys", r.Info.Polys.Len(), "stmts", len(prog.Stmts), "vars", r.Info.Locs.Len(), "tasks", tasks.List())

	if opts.Mode == ModeRun && tasks.Has(check.TaskExecute) {
		var out bytes.Buffer
		m := interp.New(interp.Config{MemorySize: conf.MemorySize, Logger: log}, r.Info)
		err := m.Run(prog, &out)
		r.Output = out.Bytes()
		if err != nil {
			log.Error("execution failed", "err", err)
			return r, err
		}
		log.Debug("executed", "bytes", out.Len())
	}

	if tasks.Has(check.TaskUninit) && len(r.Info.Uninit) > 0 {
		r.Warnings = append(r.Warnings, check.Warning{Code: check.UninitializedUse, Lines: r.Info.Uninit})
	}
	if tasks.Has(check.TaskDeadAssign) {
		u := &passes.Unit{Prog: prog}
		pcfg := passes.Config{DumpBefore: conf.DumpBefore, DumpAfter: conf.DumpAfter, Out: opts.Dump}
		if err := passes.Run(u, []passes.Pass{passes.DeadAssign}, pcfg); err != nil {
			return r, fmt.Errorf("analysis: %w", err)
		}
		if len(u.Dead) > 0 {
			r.Warnings = append(r.Warnings, check.Warning{Code: check.UselessAssign, Lines: u.Dead})
		}
	}
	log.Debug("done", "warnings", len(r.Warnings))
	return r, nil
}

// parse parses src with the semantic checks attached to the section
// checkpoints. tasksKnown reports whether the TASKS section completed.
func parse(src io.Reader, conf *config.Config, info *check.Info, log *slog.Logger) (prog *syntax.Program, tasksKnown bool, err error) {
	c := check.NewChecker(&check.Config{
		ExtraTasks: conf.ExtraTasks,
		Error: func(err *check.SemanticError, reported bool) {
			log.Debug("check", "code", int(err.Code), "lines", err.Lines, "reported", reported)
		},
	}, info)
	errh := func(pos syntax.Pos, msg string) {
		log.Debug("lexical error", "pos", pos.String(), "msg", msg)
	}
	checkpoint := func(sec syntax.Section, prog *syntax.Program) error {
		log.Debug("checkpoint", "section", sec.String())
		if sec == syntax.SectionTasks {
			tasksKnown = true
		}
		return c.Checkpoint(sec, prog)
	}
	prog, err = syntax.NewParser(src, checkpoint, errh).Parse()
	return prog, tasksKnown, err
}
