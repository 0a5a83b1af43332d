package check

import "github.com/you-not-fish/polyc/internal/syntax"

// declareAll fills the declaration table and returns the duplicate
// declaration error: every declaration line of a name after its first.
func (c *Checker) declareAll(decls []*syntax.PolyDecl) *SemanticError {
	for _, d := range decls {
		c.info.Polys.Declare(d)
	}

	var dups []int
	for _, name := range c.info.Polys.Names() {
		e, _ := c.info.Polys.Lookup(name)
		dups = append(dups, e.Lines[1:]...)
	}
	return newError(DuplicateDecl, SortedLines(dups))
}

// checkBodies reports every use of a name in a body that is not one of
// that declaration's parameters. Each declaration is checked against its
// own header, duplicates included.
func (c *Checker) checkBodies(decls []*syntax.PolyDecl) *SemanticError {
	var bad []int
	for _, d := range decls {
		params := make(map[string]bool)
		for _, p := range d.ParamNames() {
			params[p] = true
		}
		syntax.Inspect(d.Body, func(n syntax.Node) bool {
			if name, ok := n.(*syntax.Name); ok && !params[name.Value] {
				bad = append(bad, name.Line())
			}
			return true
		})
	}
	return newError(InvalidVar, SortedLines(bad))
}
