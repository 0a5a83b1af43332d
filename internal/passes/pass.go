// Package passes runs analysis passes over the statements of a parsed program.
package passes

import (
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/polyc/internal/syntax"
)

// Unit is the program a pipeline of passes works on, together with the
// results passes leave behind.
type Unit struct {
	Prog *syntax.Program

	// Dead holds the ascending lines of useless assignments, set by DeadAssign.
	Dead []int
}

// Pass describes a single analysis pass.
type Pass struct {
	Name string
	Fn   func(u *Unit)
}

// Config controls pass execution behavior.
type Config struct {
	DumpBefore string    // dump statements before this pass ("*" for all)
	DumpAfter  string    // dump statements after this pass ("*" for all)
	Out        io.Writer // dump destination; os.Stderr if nil
}

// Run executes the given passes on u in order.
func Run(u *Unit, passes []Pass, cfg Config) error {
	if u == nil || u.Prog == nil {
		return fmt.Errorf("passes: no program")
	}
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	for _, p := range passes {
		if p.Fn == nil {
			return fmt.Errorf("passes: pass %q has no function", p.Name)
		}

		if shouldDump(cfg.DumpBefore, p.Name) {
			fmt.Fprintf(out, "--- before %s ---\n", p.Name)
			Fprint(out, u)
		}

		p.Fn(u)

		if shouldDump(cfg.DumpAfter, p.Name) {
			fmt.Fprintf(out, "--- after %s ---\n", p.Name)
			Fprint(out, u)
		}
	}
	return nil
}

// Fprint writes the statement list of u, one statement per line prefixed
// with its source line, followed by the results collected so far.
func Fprint(w io.Writer, u *Unit) {
	for _, s := range u.Prog.Stmts {
		fmt.Fprintf(w, "%4d  %s\n", s.Pos().Line(), syntax.String(s))
	}
	if u.Dead != nil {
		fmt.Fprintf(w, "dead: %v\n", u.Dead)
	}
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}
