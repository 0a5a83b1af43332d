package driver

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/polyc/internal/check"
	"github.com/you-not-fish/polyc/internal/config"
	"github.com/you-not-fish/polyc/internal/interp"
	"github.com/you-not-fish/polyc/internal/syntax"
)

// runSource runs src and returns what the program prints.
func runSource(t *testing.T, src string, opts Options) (string, error) {
	t.Helper()
	r, err := Run(strings.NewReader(src), opts)
	if r == nil {
		t.Fatalf("nil result (err %v)", err)
	}
	var out bytes.Buffer
	if _, werr := r.WriteTo(&out); werr != nil {
		t.Fatal(werr)
	}
	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "execute",
			src: `TASKS 2
POLY
  p(a, b) = a^2 + b;
EXECUTE
  y = p(3, 4);
  OUTPUT y;
  y = p(p(1, 2), 0);
  OUTPUT y;
INPUTS`,
			want: "13\n9\n",
		},
		{
			name: "liveness",
			src: `TASKS 4
POLY
  f = x;
EXECUTE
  INPUT x;
  y = f(x);
  OUTPUT x;
INPUTS 1`,
			want: "Warning Code 2: 6\n",
		},
		{
			name: "uninitialized",
			src: `TASKS 3
POLY
  f = x;
EXECUTE
  y = f(x);
  INPUT x;
  OUTPUT y;
INPUTS 1`,
			want: "Warning Code 1: 5\n",
		},
		{
			name: "output_then_warnings",
			src: `TASKS 2 3 4
POLY
  f = x + 1;
EXECUTE
  y = f(z);
  w = f(y);
  OUTPUT y;
INPUTS`,
			want: "1\nWarning Code 1: 5\nWarning Code 2: 6\n",
		},
		{
			name: "duplicates_ignored_without_checks",
			src: `TASKS 2
POLY
  f = x;
  f = 2x;
EXECUTE
  y = f(5);
  OUTPUT y;
INPUTS`,
			want: "10\n",
		},
		{
			name: "nothing_enabled",
			src: `TASKS 9
POLY
  f = x;
EXECUTE
  y = f(5);
  OUTPUT y;
INPUTS`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runSource(t, tt.src, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSemanticErrorEndsRun(t *testing.T) {
	src := `TASKS 1 2 3 4
POLY
  f = x;
  f = y;
EXECUTE
  z = g(1);
  OUTPUT z;
INPUTS`
	got, err := runSource(t, src, Options{})
	var se *check.SemanticError
	if !errors.As(err, &se) || se.Code != check.DuplicateDecl {
		t.Fatalf("err = %v, want code 1", err)
	}
	if got != "Semantic Error Code 1: 4\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"checks_enabled", "TASKS 1 2\nPOLY f = ;\n", SyntaxErrorMessage + "\n"},
		{"checks_disabled", "TASKS 2\nPOLY f = ;\n", ""},
		{"before_tasks_done", "TASKS\nPOLY f = x;\n", SyntaxErrorMessage + "\n"},
		{"bad_character", "TASKS 1\nPOLY f = x $ 1;\n", SyntaxErrorMessage + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runSource(t, tt.src, Options{})
			var se *syntax.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *syntax.SyntaxError", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckMode(t *testing.T) {
	src := `TASKS 2 4
POLY
  f = x;
EXECUTE
  y = f(1);
  OUTPUT x;
INPUTS`
	got, err := runSource(t, src, Options{Mode: ModeCheck})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Warning Code 2: 5\n" {
		t.Errorf("output = %q", got)
	}
}

func TestConfig(t *testing.T) {
	src := `TASKS 2
POLY
  f = x;
  f = y;
EXECUTE
  a = f(b);
  OUTPUT a;
INPUTS`

	t.Run("extra_tasks", func(t *testing.T) {
		conf := config.Default()
		conf.ExtraTasks = []int{1}
		got, err := runSource(t, src, Options{Config: conf})
		if err == nil || got != "Semantic Error Code 1: 4\n" {
			t.Errorf("output = %q, err = %v", got, err)
		}
	})

	t.Run("memory_size", func(t *testing.T) {
		conf := config.Default()
		conf.MemorySize = 1
		_, err := runSource(t, src, Options{Config: conf})
		var f *interp.Fault
		if !errors.As(err, &f) {
			t.Errorf("err = %v, want *interp.Fault", err)
		}
	})

	t.Run("dump", func(t *testing.T) {
		conf := config.Default()
		conf.ExtraTasks = []int{4}
		conf.DumpAfter = "*"
		var dump bytes.Buffer
		if _, err := runSource(t, src, Options{Config: conf, Dump: &dump}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(dump.String(), "--- after deadassign ---") {
			t.Errorf("dump = %q", dump.String())
		}
	})
}

func TestRunIDs(t *testing.T) {
	src := "TASKS 2\nPOLY f = x;\nEXECUTE OUTPUT a;\nINPUTS\n"
	r1, err := Run(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Run(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r1.RunID == "" || r1.RunID == r2.RunID {
		t.Errorf("run ids %q, %q", r1.RunID, r2.RunID)
	}
}
