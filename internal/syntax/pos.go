package syntax

import "fmt"

// Pos is a source position. Lines carry the diagnostics of the language;
// the column is kept for tooling output only.
// The zero value is an invalid position.
type Pos struct {
	line uint32 // 1-based
	col  uint32 // 1-based byte offset in line
}

// MakePos returns the position at line and col.
func MakePos(line, col uint32) Pos {
	return Pos{line: line, col: col}
}

// String returns "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position refers to a source line.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() int {
	return int(p.line)
}

// Col returns the 1-based column number.
func (p Pos) Col() int {
	return int(p.col)
}
