package passes

import (
	"sort"

	"github.com/ahrtr/gocontainer/set"

	"github.com/you-not-fish/polyc/internal/check"
	"github.com/you-not-fish/polyc/internal/syntax"
)

// DeadAssign is the useless-assignment pass.
var DeadAssign = Pass{Name: "deadassign", Fn: deadAssign}

func deadAssign(u *Unit) {
	u.Dead = UselessAssignments(u.Prog.Stmts)
}

// UselessAssignments scans stmts backwards keeping the set of variables
// that are read before being overwritten. An assignment whose target is
// not live at that point is useless. It returns their lines, ascending.
//
// OUTPUT makes its variable live. An assignment kills its target and then
// makes every variable among its arguments live, whether or not it was
// useless itself. INPUT leaves the set alone.
func UselessAssignments(stmts []syntax.Stmt) []int {
	live := set.New()
	lines := []int{}

	for i := len(stmts) - 1; i >= 0; i-- {
		switch s := stmts[i].(type) {
		case *syntax.OutputStmt:
			live.Add(s.Var.Value)

		case *syntax.AssignStmt:
			if live.Contains(s.LHS.Value) {
				live.Remove(s.LHS.Value)
			} else {
				lines = append(lines, s.Line())
			}
			for _, n := range check.ArgNames(s.RHS) {
				live.Add(n.Value)
			}
		}
	}

	sort.Ints(lines)
	return lines
}
