package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// A program is a tree of declarations, expressions and statements. Primaries,
// statements and call arguments are closed sets: only types in this package
// implement them.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token of the node
	aNode()
}

// Primary is the base of a monomial: a *Name or a *ParenExpr.
type Primary interface {
	Node
	aPrimary()
}

// Stmt is an executable statement: *InputStmt, *OutputStmt or *AssignStmt.
type Stmt interface {
	Node
	aStmt()
}

// Arg is a call argument: *NumberLit, *Name or *CallExpr.
type Arg interface {
	Node
	aArg()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// Line returns the source line of the node.
func (n *node) Line() int { return n.pos.Line() }

// ----------------------------------------------------------------------------
// Program

// Program is a complete parsed program.
type Program struct {
	node
	Tasks  []*NumberLit // TASKS section, in source order
	Polys  []*PolyDecl  // POLY section, in source order (duplicates included)
	Stmts  []Stmt       // EXECUTE section, in source order
	Inputs []*NumberLit // INPUTS section
}

// ImplicitParam is the parameter of a polynomial declared without a parameter list.
const ImplicitParam = "x"

// PolyDecl is a polynomial declaration: Name [ ( Params ) ] = Body ;
type PolyDecl struct {
	node
	Name   *Name
	Params []*Name // nil when the header has no parameter list
	Body   *TermList
}

// ParamNames returns the formal parameter names, which is the single
// implicit parameter x when the header has no parameter list.
func (d *PolyDecl) ParamNames() []string {
	if d.Params == nil {
		return []string{ImplicitParam}
	}
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Value
	}
	return names
}

// ----------------------------------------------------------------------------
// Polynomial bodies

// TermList is a sum or difference of terms, evaluated left to right.
type TermList struct {
	node
	Terms []*Term
}

// Term is Coef times the product of Monos.
type Term struct {
	node
	Op      Token // Add, Sub, or None for a first term without sign
	Coef    int   // 1 when omitted
	HasCoef bool  // coefficient written in the source
	Monos   []*Monomial
}

// Monomial is Base raised to Exp.
type Monomial struct {
	node
	Base   Primary
	Exp    int  // 1 when omitted
	HasExp bool // exponent written in the source
}

// Name is an identifier. As a Primary it is a variable reference; as an
// Arg it passes the value of a program variable.
type Name struct {
	node
	Value string
}

// ParenExpr is a parenthesized term list used as a primary.
type ParenExpr struct {
	node
	X *TermList
}

// NumberLit is a decimal integer literal.
type NumberLit struct {
	node
	Value int
	Lit   string // source text
}

// CallExpr is a polynomial evaluation: Fun ( Args ).
type CallExpr struct {
	node
	Fun  *Name
	Args []Arg
}

func (*Name) aPrimary()      {}
func (*ParenExpr) aPrimary() {}

func (*NumberLit) aArg() {}
func (*Name) aArg()      {}
func (*CallExpr) aArg()  {}

// ----------------------------------------------------------------------------
// Statements

// InputStmt is INPUT Var ;
type InputStmt struct {
	node
	Var *Name
}

// OutputStmt is OUTPUT Var ;
type OutputStmt struct {
	node
	Var *Name
}

// AssignStmt is LHS = RHS ;
type AssignStmt struct {
	node
	LHS *Name
	RHS *CallExpr
}

func (*InputStmt) aStmt()  {}
func (*OutputStmt) aStmt() {}
func (*AssignStmt) aStmt() {}
