// Package interp executes polynomial programs against a flat memory.
package interp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/you-not-fish/polyc/internal/check"
	"github.com/you-not-fish/polyc/internal/syntax"
)

// DefaultMemorySize is the number of memory slots when Config leaves it unset.
const DefaultMemorySize = 1000

// Fault is an internal inconsistency found during execution. It means a
// program the checks should have rejected reached the evaluator.
type Fault struct {
	Pos syntax.Pos
	Msg string
}

func (f *Fault) Error() string {
	if f.Pos.IsValid() {
		return fmt.Sprintf("internal fault at line %d: %s", f.Pos.Line(), f.Msg)
	}
	return "internal fault: " + f.Msg
}

// Config specifies the evaluator configuration.
type Config struct {
	// MemorySize is the number of memory slots. DefaultMemorySize if <= 0.
	MemorySize int

	// Logger, if not nil, receives a debug record per executed statement.
	Logger *slog.Logger
}

// Machine evaluates the statements of a checked program.
type Machine struct {
	conf  Config
	polys *check.PolyTable
	locs  *check.LocTable
	mem   []int
}

// New returns a Machine using the declaration and location tables of info.
func New(conf Config, info *check.Info) *Machine {
	if conf.MemorySize <= 0 {
		conf.MemorySize = DefaultMemorySize
	}
	return &Machine{
		conf:  conf,
		polys: info.Polys,
		locs:  info.Locs,
		mem:   make([]int, conf.MemorySize),
	}
}

// Run executes prog from a zeroed memory, writing one line per OUTPUT
// statement to out. Variables named by INPUT statements are bound, in
// statement order, to the successive INPUTS values before the first
// statement runs; missing values leave 0.
func (m *Machine) Run(prog *syntax.Program, out io.Writer) error {
	if n := m.locs.Len(); n > len(m.mem) {
		return &Fault{Msg: fmt.Sprintf("program uses %d variables, memory holds %d", n, len(m.mem))}
	}

	clear(m.mem)
	if err := m.bindInputs(prog); err != nil {
		return err
	}

	for _, s := range prog.Stmts {
		if err := m.exec(s, out); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the current value of a program variable.
func (m *Machine) Value(name string) (int, bool) {
	slot, ok := m.locs.Lookup(name)
	if !ok {
		return 0, false
	}
	return m.mem[slot], true
}

func (m *Machine) bindInputs(prog *syntax.Program) error {
	next := 0
	for _, s := range prog.Stmts {
		in, ok := s.(*syntax.InputStmt)
		if !ok {
			continue
		}
		slot, err := m.slot(in.Var)
		if err != nil {
			return err
		}
		if next < len(prog.Inputs) {
			m.mem[slot] = prog.Inputs[next].Value
		}
		next++
	}
	return nil
}

func (m *Machine) exec(s syntax.Stmt, out io.Writer) error {
	switch s := s.(type) {
	case *syntax.InputStmt:
		// bound before execution started

	case *syntax.OutputStmt:
		slot, err := m.slot(s.Var)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, m.mem[slot]); err != nil {
			return err
		}

	case *syntax.AssignStmt:
		v, err := m.call(s.RHS)
		if err != nil {
			return err
		}
		slot, err := m.slot(s.LHS)
		if err != nil {
			return err
		}
		m.mem[slot] = v
		if m.conf.Logger != nil {
			m.conf.Logger.Debug("assign", "line", s.Line(), "var", s.LHS.Value, "value", v)
		}

	default:
		return &Fault{Pos: s.Pos(), Msg: fmt.Sprintf("unexpected statement %T", s)}
	}
	return nil
}

func (m *Machine) slot(n *syntax.Name) (int, error) {
	slot, ok := m.locs.Lookup(n.Value)
	if !ok {
		return 0, &Fault{Pos: n.Pos(), Msg: fmt.Sprintf("variable %s has no memory location", n.Value)}
	}
	return slot, nil
}
