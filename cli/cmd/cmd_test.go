package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calwe/ocr-interpretor/lang"
)

func TestOpenSource_MissingFile(t *testing.T) {
	_, err := openSource(filepath.Join(t.TempDir(), "absent.ocr"))
	if !errors.Is(err, ErrOpenSource) {
		t.Fatalf("expected ErrOpenSource, got %v", err)
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.ocr")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := readSource(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	if src != "x = 1\n" {
		t.Errorf("unexpected source: %q", src)
	}
}

func TestWriteSnapshot(t *testing.T) {
	env := lang.NewEnv()
	env.Set("count", lang.NumberValue(3))
	env.Set("done", lang.BooleanValue(true))

	t.Run("yaml", func(t *testing.T) {
		var out strings.Builder

		if err := writeSnapshot(&out, env, "yaml"); err != nil {
			t.Fatalf("snapshot error: %v", err)
		}

		got := out.String()

		if !strings.Contains(got, "count: 3") {
			t.Errorf("expected count binding, got:\n%s", got)
		}

		if !strings.Contains(got, "done: true") {
			t.Errorf("expected done binding, got:\n%s", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		var out strings.Builder

		if err := writeSnapshot(&out, env, "json"); err != nil {
			t.Fatalf("snapshot error: %v", err)
		}

		var bindings map[string]any
		if err := json.Unmarshal([]byte(out.String()), &bindings); err != nil {
			t.Fatalf("expected valid JSON, got %q: %v", out.String(), err)
		}

		if bindings["count"] != float64(3) {
			t.Errorf("expected count = 3, got %v", bindings["count"])
		}

		if bindings["done"] != true {
			t.Errorf("expected done = true, got %v", bindings["done"])
		}
	})
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr *lang.Error
	}{
		{
			name:   "well-formed program",
			source: "x = 1\ny = x + 2",
		},
		{
			name:    "parse error",
			source:  "x = ",
			wantErr: lang.ErrParse,
		},
		{
			name:    "runtime error",
			source:  "x = 1 / 0",
			wantErr: lang.ErrDivisionByZero,
		},
		{
			name:    "unknown function",
			source:  "nope()",
			wantErr: lang.ErrUnknownFunction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "program.ocr")
			if err := os.WriteFile(path, []byte(tt.source), 0o600); err != nil {
				t.Fatal(err)
			}

			cmd := Run{Source: path}

			err := cmd.Run(t.Context())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTokensCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.ocr")
	if err := os.WriteFile(path, []byte("x = 1"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := Tokens{Source: path}
	if err := cmd.Run(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAstCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.ocr")
	if err := os.WriteFile(path, []byte("if x > 0 then\n  y = 1\nendif"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := Ast{Source: path}
	if err := cmd.Run(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
