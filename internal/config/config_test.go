package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		mem    int
		level  string
		color  bool
		extra  []int
	}{
		{"empty_toml", "", FormatTOML, 1000, "warn", true, nil},
		{"empty_yaml", "", FormatYAML, 1000, "warn", true, nil},
		{
			name:   "toml",
			data:   "memory_size = 64\nlog_level = \"debug\"\ncolor = false\nextra_tasks = [1, 3]\n",
			format: FormatTOML,
			mem:    64, level: "debug", color: false, extra: []int{1, 3},
		},
		{
			name:   "yaml",
			data:   "memory_size: 32\nlog_level: error\nextra_tasks: [4]\n",
			format: FormatYAML,
			mem:    32, level: "error", color: true, extra: []int{4},
		},
		{"auto_is_toml", "memory_size = 5", FormatAuto, 5, "warn", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if c.MemorySize != tt.mem || c.LogLevel != tt.level || c.UseColor() != tt.color {
				t.Errorf("got %+v", c)
			}
			if len(c.ExtraTasks) != len(tt.extra) {
				t.Fatalf("extra_tasks = %v, want %v", c.ExtraTasks, tt.extra)
			}
			for i := range tt.extra {
				if c.ExtraTasks[i] != tt.extra[i] {
					t.Errorf("extra_tasks = %v, want %v", c.ExtraTasks, tt.extra)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string // substring of the error
	}{
		{"negative_memory", "memory_size = -1", FormatTOML, "memory_size"},
		{"bad_level", "log_level = \"loud\"", FormatTOML, "log_level"},
		{"bad_task", "extra_tasks = [0]", FormatTOML, "extra_tasks"},
		{"unknown_toml_key", "memroy_size = 3", FormatTOML, "memroy_size"},
		{"unknown_yaml_key", "memroy_size: 3\n", FormatYAML, "memroy_size"},
		{"bad_toml", "memory_size = ", FormatTOML, "parse toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"POLYC_MEMORY_SIZE": "12",
		"POLYC_LOG_LEVEL":   "info",
		"POLYC_COLOR":       "false",
	}
	c := Default()
	err := c.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.MemorySize != 12 || c.LogLevel != "info" || c.UseColor() {
		t.Errorf("got %+v", c)
	}

	env["POLYC_MEMORY_SIZE"] = "lots"
	if err := Default().ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}); err == nil || !strings.Contains(err.Error(), "POLYC_MEMORY_SIZE") {
		t.Errorf("err = %v", err)
	}
}

func TestDiscover(t *testing.T) {
	for _, k := range []string{"POLYC_MEMORY_SIZE", "POLYC_LOG_LEVEL", "POLYC_COLOR"} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	dir := t.TempDir()
	c, err := Discover("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Path != "" || c.MemorySize != DefaultMemorySize {
		t.Errorf("defaults = %+v", c)
	}

	yml := filepath.Join(dir, "polyc.yml")
	if err := os.WriteFile(yml, []byte("memory_size: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c, err = Discover("", dir); err != nil {
		t.Fatal(err)
	}
	if c.Path != yml || c.MemorySize != 7 {
		t.Errorf("yml = %+v", c)
	}

	// polyc.toml is preferred over polyc.yml.
	tml := filepath.Join(dir, "polyc.toml")
	if err := os.WriteFile(tml, []byte("memory_size = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c, err = Discover("", dir); err != nil {
		t.Fatal(err)
	}
	if c.Path != tml || c.MemorySize != 9 {
		t.Errorf("toml = %+v", c)
	}

	// An explicit path wins.
	if c, err = Discover(yml, dir); err != nil {
		t.Fatal(err)
	}
	if c.MemorySize != 7 {
		t.Errorf("explicit = %+v", c)
	}

	t.Setenv("POLYC_MEMORY_SIZE", "3")
	if c, err = Discover("", dir); err != nil {
		t.Fatal(err)
	}
	if c.MemorySize != 3 {
		t.Errorf("env override = %+v", c)
	}

	if _, err := Discover(filepath.Join(dir, "missing.toml"), dir); err == nil {
		t.Error("missing explicit file: expected error")
	}
}
