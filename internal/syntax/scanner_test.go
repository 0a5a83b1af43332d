package syntax

import (
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) ([]Token, []string, []string) {
	t.Helper()
	var errs []string
	s := NewScanner(strings.NewReader(src), func(line, col uint32, msg string) {
		errs = append(errs, MakePos(line, col).String()+": "+msg)
	})
	var toks []Token
	var lits []string
	for {
		s.Next()
		toks = append(toks, s.Token())
		lits = append(lits, s.Literal())
		if s.Token() == _EOF {
			break
		}
	}
	return toks, lits, errs
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{"ident", "abc", []Token{_Name, _EOF}, []string{"abc", ""}},
		{"ident_digits", "x1y2", []Token{_Name, _EOF}, []string{"x1y2", ""}},
		{"number", "42", []Token{_Number, _EOF}, []string{"42", ""}},
		{"number_then_ident", "3x", []Token{_Number, _Name, _EOF}, []string{"3", "x", ""}},
		{"keywords", "TASKS POLY EXECUTE INPUT OUTPUT INPUTS",
			[]Token{_Tasks, _Poly, _Execute, _Input, _Output, _Inputs, _EOF},
			[]string{"TASKS", "POLY", "EXECUTE", "INPUT", "OUTPUT", "INPUTS", ""}},
		{"keywords_case_sensitive", "tasks Poly", []Token{_Name, _Name, _EOF}, []string{"tasks", "Poly", ""}},
		{"operators", "= + - ^ ( ) , ;",
			[]Token{_Assign, _Add, _Sub, _Pow, _Lparen, _Rparen, _Comma, _Semi, _EOF},
			[]string{"=", "+", "-", "^", "(", ")", ",", ";", ""}},
		{"dense", "f(a,b)=a^2+b;",
			[]Token{_Name, _Lparen, _Name, _Comma, _Name, _Rparen, _Assign, _Name, _Pow, _Number, _Add, _Name, _Semi, _EOF},
			[]string{"f", "(", "a", ",", "b", ")", "=", "a", "^", "2", "+", "b", ";", ""}},
		{"empty", "", []Token{_EOF}, []string{""}},
		{"only_space", " \t\r\n\n ", []Token{_EOF}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, lits, errs := scanAll(t, tt.src)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(toks) != len(tt.tokens) {
				t.Fatalf("got %d tokens %v, want %d %v", len(toks), toks, len(tt.tokens), tt.tokens)
			}
			for i := range toks {
				if toks[i] != tt.tokens[i] {
					t.Errorf("token[%d] = %s, want %s", i, toks[i], tt.tokens[i])
				}
				if lits[i] != tt.lits[i] {
					t.Errorf("literal[%d] = %q, want %q", i, lits[i], tt.lits[i])
				}
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	src := "TASKS 1\nPOLY\n  f = x;\n"
	s := NewScanner(strings.NewReader(src), nil)

	want := []struct {
		tok       Token
		line, col int
	}{
		{_Tasks, 1, 1},
		{_Number, 1, 7},
		{_Poly, 2, 1},
		{_Name, 3, 3},
		{_Assign, 3, 5},
		{_Name, 3, 7},
		{_Semi, 3, 8},
		{_EOF, 4, 1},
	}
	for i, w := range want {
		s.Next()
		if s.Token() != w.tok {
			t.Fatalf("token %d = %s, want %s", i, s.Token(), w.tok)
		}
		if s.Pos().Line() != w.line || s.Pos().Col() != w.col {
			t.Errorf("token %d (%s) at %s, want %d:%d", i, w.tok, s.Pos(), w.line, w.col)
		}
	}
}

func TestScanInvalidCharacter(t *testing.T) {
	toks, lits, errs := scanAll(t, "a * b")
	want := []Token{_Name, _Error, _Name, _EOF}
	if len(toks) != len(want) {
		t.Fatalf("got tokens %v, want %v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, toks[i], want[i])
		}
	}
	if lits[1] != "*" {
		t.Errorf("error literal = %q, want %q", lits[1], "*")
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "1:3") {
		t.Errorf("errors = %v, want one error at 1:3", errs)
	}
}

func TestScanEOFRepeats(t *testing.T) {
	s := NewScanner(strings.NewReader("x"), nil)
	s.Next()
	for i := 0; i < 3; i++ {
		s.Next()
		if !s.Token().IsEOF() {
			t.Fatalf("Next #%d after end = %s, want EOF", i, s.Token())
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_Name, "ID"},
		{_Number, "NUM"},
		{_Pow, "^"},
		{_Inputs, "INPUTS"},
		{None, "NONE"},
		{Token(999), "token(999)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
	if !_Output.IsKeyword() || _Name.IsKeyword() {
		t.Error("IsKeyword misclassifies tokens")
	}
}
