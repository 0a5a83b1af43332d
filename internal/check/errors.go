// Package check implements the semantic checks for polynomial programs.
package check

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code classifies a fatal semantic error.
type Code int

const (
	DuplicateDecl  Code = 1 // polynomial declared more than once
	InvalidVar     Code = 2 // body uses a name that is not a parameter
	UndeclaredPoly Code = 3 // call of a polynomial that is never declared
	ArityMismatch  Code = 4 // call with the wrong number of arguments
)

var codeNames = map[Code]string{
	DuplicateDecl:  "duplicate declaration",
	InvalidVar:     "invalid variable in polynomial body",
	UndeclaredPoly: "undeclared polynomial",
	ArityMismatch:  "wrong number of arguments",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// SemanticError is a fatal semantic error. Lines are ascending.
type SemanticError struct {
	Code  Code
	Lines []int
}

// Error returns the diagnostic line in the program's output format.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("Semantic Error Code %d: %s", int(e.Code), joinLines(e.Lines))
}

// WarningCode classifies an advisory diagnostic.
type WarningCode int

const (
	UninitializedUse WarningCode = 1 // argument read before any INPUT or assignment
	UselessAssign    WarningCode = 2 // assigned value is never observed
)

// Warning is an advisory diagnostic. Lines are ascending.
type Warning struct {
	Code  WarningCode
	Lines []int
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning Code %d: %s", int(w.Code), joinLines(w.Lines))
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, " ")
}

// SortedLines returns a sorted copy of lines.
func SortedLines(lines []int) []int {
	out := append([]int(nil), lines...)
	sort.Ints(out)
	return out
}

// uniqueLines returns lines sorted with repeats removed.
func uniqueLines(lines []int) []int {
	out := SortedLines(lines)
	n := 0
	for i, l := range out {
		if i == 0 || l != out[n-1] {
			out[n] = l
			n++
		}
	}
	return out[:n]
}
