package passes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/you-not-fish/polyc/internal/syntax"
)

func parseUnit(t *testing.T, stmts string) *Unit {
	t.Helper()
	src := "TASKS 4\nPOLY\nf = x;\ng(a, b) = a + b;\nEXECUTE\n" + stmts + "\nINPUTS\n"
	prog, err := syntax.NewParser(strings.NewReader(src), nil, nil).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return &Unit{Prog: prog}
}

func TestUselessAssignments(t *testing.T) {
	// Statements start on line 6.
	tests := []struct {
		name  string
		stmts string
		want  []int
	}{
		{"never_read", "INPUT x;\ny = f(x);\nOUTPUT x;", []int{7}},
		{"read_by_output", "INPUT x;\ny = f(x);\nOUTPUT y;", nil},
		{"overwritten", "y = f(1);\ny = f(2);\nOUTPUT y;", []int{6}},
		{"read_by_later_assignment", "a = f(1);\nb = f(a);\nOUTPUT b;", nil},
		{"output_before_assignment", "OUTPUT y;\ny = f(1);", []int{7}},
		{"nested_argument_keeps_live", "a = f(2);\nb = g(f(a), 1);\nOUTPUT b;", nil},
		{"useless_chain_still_reads", "a = f(1);\nb = f(a);\nOUTPUT a;", []int{7}},
		{"self_update", "a = f(1);\na = g(a, a);\nOUTPUT a;", nil},
		{"input_does_not_kill", "y = f(1);\nINPUT y;\nOUTPUT y;", nil},
		{"nothing_output", "a = f(1);\nb = f(2);", []int{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := parseUnit(t, tt.stmts)
			got := UselessAssignments(u.Prog.Stmts)
			if len(got) != len(tt.want) {
				t.Fatalf("useless = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("useless = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRunDeadAssign(t *testing.T) {
	u := parseUnit(t, "INPUT x;\ny = f(x);\nOUTPUT x;")
	var dump bytes.Buffer
	cfg := Config{DumpBefore: "*", DumpAfter: "deadassign", Out: &dump}
	if err := Run(u, []Pass{DeadAssign}, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(u.Dead) != 1 || u.Dead[0] != 7 {
		t.Errorf("Dead = %v, want [7]", u.Dead)
	}

	out := dump.String()
	for _, want := range []string{
		"--- before deadassign ---",
		"--- after deadassign ---",
		"   7  y = f(x);",
		"dead: [7]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRunErrors(t *testing.T) {
	if err := Run(&Unit{}, []Pass{DeadAssign}, Config{}); err == nil {
		t.Error("Run without program succeeded")
	}
	u := parseUnit(t, "OUTPUT x;")
	if err := Run(u, []Pass{{Name: "empty"}}, Config{}); err == nil {
		t.Error("Run with nil pass function succeeded")
	}
}
