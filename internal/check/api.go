package check

import "github.com/you-not-fish/polyc/internal/syntax"

// ErrorHandler is called for each semantic error the checker computes.
// reported is false when the checks task is disabled and the error will
// not end the run.
type ErrorHandler func(err *SemanticError, reported bool)

// Config specifies the configuration for checking.
type Config struct {
	// ExtraTasks are enabled in addition to the program's TASKS section.
	ExtraTasks []int

	// Error is called for each semantic error. If nil, errors are only
	// returned.
	Error ErrorHandler
}

// Info holds the tables produced by checking. They are written while the
// program is parsed and only read afterwards.
type Info struct {
	// Tasks is the program's task set, available after the TASKS section.
	Tasks TaskSet

	// Polys is the declaration table, complete after the POLY section.
	Polys *PolyTable

	// Locs maps every variable of the EXECUTE section to its memory slot.
	Locs *LocTable

	// Uninit holds the ascending lines of assignments that pass a variable
	// not yet set by INPUT or an earlier assignment.
	Uninit []int
}

// Check runs all checkpoints over an already parsed program. It returns
// the first reported *SemanticError, or nil.
func Check(prog *syntax.Program, conf *Config, info *Info) error {
	c := NewChecker(conf, info)
	for _, sec := range []syntax.Section{syntax.SectionTasks, syntax.SectionPoly, syntax.SectionExecute} {
		if err := c.Checkpoint(sec, prog); err != nil {
			return err
		}
	}
	return nil
}
