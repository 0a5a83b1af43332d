package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, t := range n.Tasks {
			Walk(t, v)
		}
		for _, d := range n.Polys {
			Walk(d, v)
		}
		for _, s := range n.Stmts {
			Walk(s, v)
		}
		for _, in := range n.Inputs {
			Walk(in, v)
		}

	case *PolyDecl:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *TermList:
		for _, t := range n.Terms {
			Walk(t, v)
		}

	case *Term:
		for _, m := range n.Monos {
			Walk(m, v)
		}

	case *Monomial:
		Walk(n.Base, v)

	case *ParenExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *InputStmt:
		Walk(n.Var, v)

	case *OutputStmt:
		Walk(n.Var, v)

	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	// Leaf nodes: Name, NumberLit
	}
}

// Inspect traverses an AST and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
