package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis of polynomial program text.
type Scanner struct {
	source

	tok    Token
	lit    string
	tokPos Pos

	litBuf strings.Builder
}

// NewScanner creates a Scanner reading src.
// errh is called for each lexical error; if nil, errors are ignored.
func NewScanner(src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(src, errh)}
}

// Next advances to the next token. At end of input it keeps returning EOF.
func (s *Scanner) Next() {
	for isSpace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	default:
		s.scanOperator()
	}
}

// Token returns the current token kind.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the source text of the current token.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the start position of the current token.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = _Number
}

func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()
	s.lit = string(ch)

	switch ch {
	case '=':
		s.tok = _Assign
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '^':
		s.tok = _Pow
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	default:
		s.tok = _Error
		if s.errh != nil {
			s.errh(s.tokPos.line, s.tokPos.col, fmt.Sprintf("unexpected character %q", ch))
		}
	}
}
