package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// SyntaxError reports the first token that does not fit the grammar.
// Parsing stops at the first syntax error; there is no recovery.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Section identifies a program section for parser checkpoints.
type Section int

const (
	SectionTasks Section = iota
	SectionPoly
	SectionExecute
	SectionInputs
)

var sectionNames = [...]string{
	SectionTasks:   "TASKS",
	SectionPoly:    "POLY",
	SectionExecute: "EXECUTE",
	SectionInputs:  "INPUTS",
}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Checkpoint is called by the parser each time a section has been parsed
// completely, with the program built so far. A non-nil error stops parsing
// and is returned unchanged from Parse.
type Checkpoint func(sec Section, prog *Program) error

// bailout is the panic value used to unwind the parser on the first error.
type bailout struct{ err error }

// Parser performs syntax analysis of polynomial programs.
type Parser struct {
	ts    *TokenStream
	check Checkpoint
	prog  *Program

	// lexical error handler
	errh func(pos Pos, msg string)
}

// NewParser creates a Parser reading src. check may be nil.
// errh, if not nil, is called for lexical errors as they are found; the
// offending token then also causes a syntax error.
func NewParser(src io.Reader, check Checkpoint, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{check: check, errh: errh}
	p.ts = NewTokenStream(src, func(line, col uint32, msg string) {
		if p.errh != nil {
			p.errh(MakePos(line, col), msg)
		}
	})
	return p
}

// Parse parses a complete program. On failure it returns a nil program and
// either a *SyntaxError or the error returned by the checkpoint.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	p.prog = &Program{}
	p.prog.pos = p.peek(1).Pos

	p.tasksSection()
	p.checkpoint(SectionTasks)

	p.polySection()
	p.checkpoint(SectionPoly)

	p.executeSection()
	p.checkpoint(SectionExecute)

	p.inputsSection()
	p.checkpoint(SectionInputs)

	p.want(_EOF)
	return p.prog, nil
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() Item {
	return p.ts.Next()
}

func (p *Parser) peek(k int) Item {
	return p.ts.Peek(k)
}

// want consumes the next token, which must be tok.
func (p *Parser) want(tok Token) Item {
	it := p.next()
	if it.Tok != tok {
		p.syntaxErrorAt(it, "expected "+tok.String())
	}
	return it
}

// startsPrimary reports whether the next token can begin a primary.
// It is the only continuation test for monomial lists, which may be empty.
func (p *Parser) startsPrimary() bool {
	tok := p.peek(1).Tok
	return tok == _Name || tok == _Lparen
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxErrorAt(it Item, msg string) {
	if it.Tok == _EOF {
		msg += ", found end of input"
	} else {
		msg += fmt.Sprintf(", found %s %q", it.Tok, it.Lit)
	}
	panic(bailout{&SyntaxError{Pos: it.Pos, Msg: msg}})
}

func (p *Parser) checkpoint(sec Section) {
	if p.check == nil {
		return
	}
	if err := p.check(sec, p.prog); err != nil {
		panic(bailout{err})
	}
}

// ----------------------------------------------------------------------------
// Sections

// tasksSection parses: TASKS NUM+
func (p *Parser) tasksSection() {
	p.want(_Tasks)
	p.prog.Tasks = append(p.prog.Tasks, p.number())
	for p.peek(1).Tok == _Number {
		p.prog.Tasks = append(p.prog.Tasks, p.number())
	}
}

// polySection parses: POLY PolyDecl+
func (p *Parser) polySection() {
	p.want(_Poly)
	p.prog.Polys = append(p.prog.Polys, p.polyDecl())
	for p.peek(1).Tok == _Name {
		p.prog.Polys = append(p.prog.Polys, p.polyDecl())
	}
}

// executeSection parses: EXECUTE Statement+
func (p *Parser) executeSection() {
	p.want(_Execute)
	p.prog.Stmts = append(p.prog.Stmts, p.stmt())
	for p.startsStmt() {
		p.prog.Stmts = append(p.prog.Stmts, p.stmt())
	}
}

// inputsSection parses: INPUTS NUM*
func (p *Parser) inputsSection() {
	p.want(_Inputs)
	for p.peek(1).Tok == _Number {
		p.prog.Inputs = append(p.prog.Inputs, p.number())
	}
}

// ----------------------------------------------------------------------------
// Polynomial declarations

// polyDecl parses: Header = TermList ;
func (p *Parser) polyDecl() *PolyDecl {
	d := &PolyDecl{}
	d.Name = p.name()
	d.pos = d.Name.pos

	if p.peek(1).Tok == _Lparen {
		d.Params = p.paramList()
	}

	p.want(_Assign)
	d.Body = p.termList()
	p.want(_Semi)
	return d
}

// paramList parses: ( ID (, ID)* )
func (p *Parser) paramList() []*Name {
	p.want(_Lparen)
	params := []*Name{p.name()}
	for p.peek(1).Tok == _Comma {
		p.next()
		params = append(params, p.name())
	}
	p.want(_Rparen)
	return params
}

// termList parses: [+|-] Term ((+|-) Term)*
func (p *Parser) termList() *TermList {
	l := &TermList{}
	l.pos = p.peek(1).Pos

	op := None
	if p.peek(1).Tok.IsAddOp() {
		op = p.next().Tok
	}
	l.Terms = append(l.Terms, p.term(op))

	for p.peek(1).Tok.IsAddOp() {
		op = p.next().Tok
		l.Terms = append(l.Terms, p.term(op))
	}
	return l
}

// term parses: NUM [MonomialList] | MonomialList
func (p *Parser) term(op Token) *Term {
	t := &Term{Op: op, Coef: 1}
	t.pos = p.peek(1).Pos

	switch {
	case p.peek(1).Tok == _Number:
		n := p.number()
		t.Coef = n.Value
		t.HasCoef = true
		if p.startsPrimary() {
			t.Monos = p.monomialList()
		}
	case p.startsPrimary():
		t.Monos = p.monomialList()
	default:
		p.syntaxErrorAt(p.next(), "expected term")
	}
	return t
}

// monomialList parses: Monomial+
func (p *Parser) monomialList() []*Monomial {
	list := []*Monomial{p.monomial()}
	for p.startsPrimary() {
		list = append(list, p.monomial())
	}
	return list
}

// monomial parses: Primary [^ NUM]
func (p *Parser) monomial() *Monomial {
	m := &Monomial{Exp: 1}
	m.pos = p.peek(1).Pos
	m.Base = p.primary()
	if p.peek(1).Tok == _Pow {
		p.next()
		m.Exp = p.number().Value
		m.HasExp = true
	}
	return m
}

// primary parses: ID | ( TermList )
func (p *Parser) primary() Primary {
	switch p.peek(1).Tok {
	case _Name:
		return p.name()
	case _Lparen:
		x := &ParenExpr{}
		x.pos = p.next().Pos
		x.X = p.termList()
		p.want(_Rparen)
		return x
	default:
		p.syntaxErrorAt(p.next(), "expected identifier or (")
		return nil
	}
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) startsStmt() bool {
	switch p.peek(1).Tok {
	case _Name, _Input, _Output:
		return true
	}
	return false
}

// stmt parses: INPUT ID ; | OUTPUT ID ; | ID = Call ;
func (p *Parser) stmt() Stmt {
	switch p.peek(1).Tok {
	case _Input:
		s := &InputStmt{}
		s.pos = p.next().Pos
		s.Var = p.name()
		p.want(_Semi)
		return s

	case _Output:
		s := &OutputStmt{}
		s.pos = p.next().Pos
		s.Var = p.name()
		p.want(_Semi)
		return s

	case _Name:
		s := &AssignStmt{}
		s.LHS = p.name()
		s.pos = s.LHS.pos
		p.want(_Assign)
		s.RHS = p.call()
		p.want(_Semi)
		return s

	default:
		p.syntaxErrorAt(p.next(), "expected statement")
		return nil
	}
}

// call parses: ID ( Arg (, Arg)* )
func (p *Parser) call() *CallExpr {
	c := &CallExpr{}
	c.Fun = p.name()
	c.pos = c.Fun.pos

	p.want(_Lparen)
	c.Args = append(c.Args, p.arg())
	for p.peek(1).Tok == _Comma {
		p.next()
		c.Args = append(c.Args, p.arg())
	}
	p.want(_Rparen)
	return c
}

// arg parses: NUM | ID | Call. An identifier followed by ( starts a
// nested call, which is evaluated as the argument value.
func (p *Parser) arg() Arg {
	switch p.peek(1).Tok {
	case _Number:
		return p.number()
	case _Name:
		if p.peek(2).Tok == _Lparen {
			return p.call()
		}
		return p.name()
	default:
		p.syntaxErrorAt(p.next(), "expected argument")
		return nil
	}
}

// ----------------------------------------------------------------------------
// Leaves

func (p *Parser) name() *Name {
	it := p.want(_Name)
	n := &Name{Value: it.Lit}
	n.pos = it.Pos
	return n
}

// number parses a NUM token into a native int.
func (p *Parser) number() *NumberLit {
	it := p.want(_Number)
	v, err := strconv.Atoi(it.Lit)
	if err != nil {
		panic(bailout{&SyntaxError{Pos: it.Pos, Msg: fmt.Sprintf("number %s out of range", it.Lit)}})
	}
	n := &NumberLit{Value: v, Lit: it.Lit}
	n.pos = it.Pos
	return n
}
