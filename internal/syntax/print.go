package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		tasks := make([]string, len(n.Tasks))
		for i, t := range n.Tasks {
			tasks[i] = t.Lit
		}
		p.printf("Tasks: %s\n", strings.Join(tasks, " "))
		for _, d := range n.Polys {
			p.print(d)
		}
		for _, s := range n.Stmts {
			p.print(s)
		}
		inputs := make([]string, len(n.Inputs))
		for i, in := range n.Inputs {
			inputs[i] = in.Lit
		}
		p.printf("Inputs: %s\n", strings.Join(inputs, " "))
		p.indent--

	case *PolyDecl:
		p.printf("PolyDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Params == nil {
			p.printf("Params: %s (implicit)\n", ImplicitParam)
		} else {
			p.printf("Params: %s\n", strings.Join(n.ParamNames(), ", "))
		}
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *TermList:
		p.printf("TermList %s\n", n.pos)
		p.indent++
		for _, t := range n.Terms {
			p.print(t)
		}
		p.indent--

	case *Term:
		p.printf("Term %s %s coef=%d\n", n.Op, n.pos, n.Coef)
		p.indent++
		for _, m := range n.Monos {
			p.print(m)
		}
		p.indent--

	case *Monomial:
		p.printf("Monomial %s exp=%d\n", n.pos, n.Exp)
		p.indent++
		p.print(n.Base)
		p.indent--

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Name:
		p.printf("Name %q %s\n", n.Value, n.pos)

	case *NumberLit:
		p.printf("NumberLit %s %s\n", n.Lit, n.pos)

	case *CallExpr:
		p.printf("CallExpr %s %s\n", n.Fun.Value, n.pos)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *InputStmt:
		p.printf("InputStmt %s %s\n", n.Var.Value, n.pos)

	case *OutputStmt:
		p.printf("OutputStmt %s %s\n", n.Var.Value, n.pos)

	case *AssignStmt:
		p.printf("AssignStmt %s %s\n", n.LHS.Value, n.pos)
		p.indent++
		p.print(n.RHS)
		p.indent--

	default:
		p.printf("<unknown node %T>\n", n)
	}
}

// String returns the node in program syntax, without trailing semicolons
// on declarations. It is used in dumps and log lines.
func String(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *PolyDecl:
		b.WriteString(n.Name.Value)
		if n.Params != nil {
			b.WriteString("(" + strings.Join(n.ParamNames(), ", ") + ")")
		}
		b.WriteString(" = ")
		writeNode(b, n.Body)

	case *TermList:
		for i, t := range n.Terms {
			switch {
			case t.Op == Sub && i == 0:
				b.WriteString("-")
			case t.Op == Sub:
				b.WriteString(" - ")
			case t.Op == Add && i == 0:
				b.WriteString("+")
			case i > 0:
				b.WriteString(" + ")
			}
			writeNode(b, t)
		}

	case *Term:
		if n.HasCoef || len(n.Monos) == 0 {
			fmt.Fprintf(b, "%d", n.Coef)
		}
		for i, m := range n.Monos {
			if i > 0 {
				b.WriteString(" ")
			}
			writeNode(b, m)
		}

	case *Monomial:
		writeNode(b, n.Base)
		if n.HasExp {
			fmt.Fprintf(b, "^%d", n.Exp)
		}

	case *ParenExpr:
		b.WriteString("(")
		writeNode(b, n.X)
		b.WriteString(")")

	case *Name:
		b.WriteString(n.Value)

	case *NumberLit:
		b.WriteString(n.Lit)

	case *CallExpr:
		b.WriteString(n.Fun.Value + "(")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, a)
		}
		b.WriteString(")")

	case *InputStmt:
		b.WriteString("INPUT " + n.Var.Value + ";")

	case *OutputStmt:
		b.WriteString("OUTPUT " + n.Var.Value + ";")

	case *AssignStmt:
		b.WriteString(n.LHS.Value + " = ")
		writeNode(b, n.RHS)
		b.WriteString(";")
	}
}
