package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with line and column tracking.
// The whole input is read into memory up front.
type source struct {
	buf []byte

	line uint32 // line of ch, 1-based
	col  uint32 // column of ch, 1-based

	ch   rune // current character, -1 at EOF
	offs int  // byte offset of the character after ch

	errh func(line, col uint32, msg string)
}

// newSource creates a source reading all of src.
// errh is called for each error; if nil, errors are ignored.
func newSource(src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		line: 1,
		col:  0, // first nextch moves to 1
		ch:   -1,
		errh: errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading program text: " + err.Error())
		s.ch = -1
		return s
	}

	s.nextch()
	return s
}

// nextch advances to the next character. (line, col) always describe s.ch.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}

	s.ch = r
	s.offs += width
}

func (s *source) pos() Pos {
	return MakePos(s.line, s.col)
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace includes the newline; the grammar is not line-sensitive.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}
