package syntax

import (
	"fmt"
	"io"

	"github.com/edwingeng/deque"
)

// maxLookahead is the deepest Peek the grammar needs.
const maxLookahead = 2

// Item is a scanned token together with its text and position.
type Item struct {
	Tok Token
	Lit string
	Pos Pos
}

// Line returns the source line of the token.
func (it Item) Line() int {
	return it.Pos.Line()
}

func (it Item) String() string {
	return fmt.Sprintf("%s %s %q", it.Pos, it.Tok, it.Lit)
}

// TokenStream buffers scanned tokens so the parser can look up to two
// tokens ahead without consuming them.
type TokenStream struct {
	scanner *Scanner
	buf     deque.Deque // of Item
}

// NewTokenStream creates a TokenStream reading src.
func NewTokenStream(src io.Reader, errh func(line, col uint32, msg string)) *TokenStream {
	return &TokenStream{
		scanner: NewScanner(src, errh),
		buf:     deque.NewDeque(),
	}
}

// Next consumes and returns the next token.
func (ts *TokenStream) Next() Item {
	ts.fill(1)
	it := ts.buf.PopFront().(Item)
	return it
}

// Peek returns the token k positions ahead (1 is the next token) without
// consuming anything. k must be 1 or 2.
func (ts *TokenStream) Peek(k int) Item {
	if k < 1 || k > maxLookahead {
		panic(fmt.Sprintf("syntax: lookahead %d out of range", k))
	}
	ts.fill(k)
	return ts.buf.Peek(k - 1).(Item)
}

// fill scans until at least n tokens are buffered. Past the end of input
// the scanner keeps producing EOF items.
func (ts *TokenStream) fill(n int) {
	for ts.buf.Len() < n {
		ts.scanner.Next()
		ts.buf.PushBack(Item{
			Tok: ts.scanner.Token(),
			Lit: ts.scanner.Literal(),
			Pos: ts.scanner.Pos(),
		})
	}
}
