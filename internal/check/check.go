package check

import "github.com/you-not-fish/polyc/internal/syntax"

// Checker runs the semantic checks at parser checkpoints. Its Checkpoint
// method has the syntax.Checkpoint signature.
type Checker struct {
	conf *Config
	info *Info
}

// NewChecker returns a Checker filling info. A nil conf is an empty Config;
// a nil info is allocated.
func NewChecker(conf *Config, info *Info) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	if info == nil {
		info = &Info{}
	}
	if info.Polys == nil {
		info.Polys = NewPolyTable()
	}
	if info.Locs == nil {
		info.Locs = NewLocTable()
	}
	return &Checker{conf: conf, info: info}
}

// Info returns the tables filled so far.
func (c *Checker) Info() *Info {
	return c.info
}

// Checkpoint runs the checks belonging to the section just parsed:
//
//	TASKS   record the task set
//	POLY    duplicate declarations (1), invalid body variables (2)
//	EXECUTE undeclared polynomials (3), arity (4), uninitialized use
//
// Checks are always computed; a failing one is returned only when the
// checks task is enabled.
func (c *Checker) Checkpoint(sec syntax.Section, prog *syntax.Program) error {
	switch sec {
	case syntax.SectionTasks:
		nums := make([]int, 0, len(prog.Tasks)+len(c.conf.ExtraTasks))
		for _, t := range prog.Tasks {
			nums = append(nums, t.Value)
		}
		nums = append(nums, c.conf.ExtraTasks...)
		c.info.Tasks = NewTaskSet(nums...)
		return nil

	case syntax.SectionPoly:
		return c.firstError(
			c.declareAll(prog.Polys),
			c.checkBodies(prog.Polys),
		)

	case syntax.SectionExecute:
		c.allocate(prog.Stmts)
		c.info.Uninit = c.uninitialized(prog.Stmts)
		return c.firstError(
			c.checkUndeclared(prog.Stmts),
			c.checkArity(prog.Stmts),
		)
	}
	return nil
}

// firstError passes every computed error to the handler and returns the
// first one when checks are enabled.
func (c *Checker) firstError(errs ...*SemanticError) error {
	report := c.info.Tasks.Has(TaskChecks)
	var first *SemanticError
	for _, err := range errs {
		if err == nil {
			continue
		}
		if c.conf.Error != nil {
			c.conf.Error(err, report && first == nil)
		}
		if first == nil {
			first = err
		}
	}
	if first == nil || !report {
		return nil
	}
	return first
}

// newError returns nil when lines is empty.
func newError(code Code, lines []int) *SemanticError {
	if len(lines) == 0 {
		return nil
	}
	return &SemanticError{Code: code, Lines: lines}
}
