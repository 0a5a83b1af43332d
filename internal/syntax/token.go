// Package syntax implements lexical and syntactic analysis for polynomial programs.
package syntax

import "fmt"

// Token is the kind of a lexical token.
type Token uint

const (
	_EOF   Token = iota // end of input
	_Error              // character that cannot start a token

	_Name   // p, x, total
	_Number // 42

	// Operators and delimiters
	_Assign // =
	_Add    // +
	_Sub    // -
	_Pow    // ^
	_Lparen // (
	_Rparen // )
	_Comma  // ,
	_Semi   // ;

	// Section keywords
	_Tasks
	_Poly
	_Execute
	_Input
	_Output
	_Inputs

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "ID",
	_Number: "NUM",

	_Assign: "=",
	_Add:    "+",
	_Sub:    "-",
	_Pow:    "^",
	_Lparen: "(",
	_Rparen: ")",
	_Comma:  ",",
	_Semi:   ";",

	_Tasks:   "TASKS",
	_Poly:    "POLY",
	_Execute: "EXECUTE",
	_Input:   "INPUT",
	_Output:  "OUTPUT",
	_Inputs:  "INPUTS",
}

// String returns the token name as it appears in the grammar.
func (t Token) String() string {
	if t == None {
		return "NONE"
	}
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a section keyword.
func (t Token) IsKeyword() bool {
	return t >= _Tasks && t <= _Inputs
}

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsAddOp reports whether t is + or -.
func (t Token) IsAddOp() bool {
	return t == _Add || t == _Sub
}

// Exported tokens for packages that inspect operators of a term list.
const (
	EOF  Token = _EOF
	Add  Token = _Add
	Sub  Token = _Sub
	None Token = tokenCount // operator of the first term without a leading sign
)

// keywords maps section keywords to their tokens. Keywords are case-sensitive.
var keywords = map[string]Token{
	"TASKS":   _Tasks,
	"POLY":    _Poly,
	"EXECUTE": _Execute,
	"INPUT":   _Input,
	"OUTPUT":  _Output,
	"INPUTS":  _Inputs,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
