package check

import "github.com/you-not-fish/polyc/internal/syntax"

// uninitialized returns, in ascending order, the lines of assignments that
// pass a variable which no INPUT and no earlier assignment has set. Each
// assignment contributes its line at most once.
func (c *Checker) uninitialized(stmts []syntax.Stmt) []int {
	set := make(map[string]bool)
	var lines []int
	for _, s := range stmts {
		switch s := s.(type) {
		case *syntax.InputStmt:
			set[s.Var.Value] = true
		case *syntax.AssignStmt:
			for _, n := range ArgNames(s.RHS) {
				if !set[n.Value] {
					lines = append(lines, s.Line())
					break
				}
			}
			set[s.LHS.Value] = true
		}
	}
	return SortedLines(lines)
}
