package check

import "github.com/you-not-fish/polyc/internal/syntax"

// Calls returns every polynomial evaluation in s, outer calls before the
// calls nested in their arguments.
func Calls(s syntax.Stmt) []*syntax.CallExpr {
	as, ok := s.(*syntax.AssignStmt)
	if !ok {
		return nil
	}
	var list []*syntax.CallExpr
	syntax.Inspect(as.RHS, func(n syntax.Node) bool {
		if call, ok := n.(*syntax.CallExpr); ok {
			list = append(list, call)
		}
		return true
	})
	return list
}

// ArgNames returns the variables passed as arguments to call and to the
// calls nested in it, in source order. Callee names are not included.
func ArgNames(call *syntax.CallExpr) []*syntax.Name {
	var names []*syntax.Name
	for _, a := range call.Args {
		switch a := a.(type) {
		case *syntax.Name:
			names = append(names, a)
		case *syntax.CallExpr:
			names = append(names, ArgNames(a)...)
		}
	}
	return names
}

// allocate gives every variable of the EXECUTE section a memory slot in
// order of first mention.
func (c *Checker) allocate(stmts []syntax.Stmt) {
	locs := c.info.Locs
	for _, s := range stmts {
		switch s := s.(type) {
		case *syntax.InputStmt:
			locs.Alloc(s.Var.Value)
		case *syntax.OutputStmt:
			locs.Alloc(s.Var.Value)
		case *syntax.AssignStmt:
			locs.Alloc(s.LHS.Value)
			for _, n := range ArgNames(s.RHS) {
				locs.Alloc(n.Value)
			}
		}
	}
}

// checkUndeclared reports the line of every call of a name missing from
// the declaration table, once per call.
func (c *Checker) checkUndeclared(stmts []syntax.Stmt) *SemanticError {
	var lines []int
	for _, s := range stmts {
		for _, call := range Calls(s) {
			if _, ok := c.info.Polys.Lookup(call.Fun.Value); !ok {
				lines = append(lines, call.Line())
			}
		}
	}
	return newError(UndeclaredPoly, SortedLines(lines))
}

// checkArity reports each line holding a call whose argument count
// differs from the callee's parameter count. Unknown callees take one
// argument.
func (c *Checker) checkArity(stmts []syntax.Stmt) *SemanticError {
	var lines []int
	for _, s := range stmts {
		for _, call := range Calls(s) {
			arity := 1
			if e, ok := c.info.Polys.Lookup(call.Fun.Value); ok {
				arity = e.Arity()
			}
			if len(call.Args) != arity {
				lines = append(lines, call.Line())
			}
		}
	}
	return newError(ArityMismatch, uniqueLines(lines))
}
