package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_AddAndGet(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if err := h.Add("x = 1", modeEval); err != nil {
		t.Fatalf("add error: %v", err)
	}

	if err := h.Add("vars", modeCtrl); err != nil {
		t.Fatalf("add error: %v", err)
	}

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	entry, err := h.GetEntry(0)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if entry.Line != "x = 1" || entry.Mode != modeEval {
		t.Errorf("unexpected entry: %+v", entry)
	}

	entry, err = h.GetEntry(1)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if entry.Line != "vars" || entry.Mode != modeCtrl {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestHistory_GetEntryOutOfBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if _, err := h.GetEntry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}

	if _, err := h.GetEntry(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestHistory_SkipsBlankAndRepeat(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	_ = h.Add("x = 1", modeEval)
	_ = h.Add("x = 1", modeEval) // consecutive duplicate
	_ = h.Add("  ", modeEval)    // blank

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_DuplicateMovesToEnd(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	_ = h.Add("first", modeEval)
	_ = h.Add("second", modeEval)
	_ = h.Add("first", modeEval)

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	entry, _ := h.GetEntry(1)
	if entry.Line != "first" {
		t.Errorf("expected duplicate moved to end, got %q", entry.Line)
	}
}

func TestHistory_SameLineDifferentModes(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	_ = h.Add("help", modeEval)
	_ = h.Add("help", modeCtrl)

	if h.Len() != 2 {
		t.Errorf("expected entries in both modes, got %d", h.Len())
	}
}

func TestHistory_LoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	_ = h.Add("x = 1", modeEval)
	_ = h.Add("vars", modeCtrl)
	_ = h.Add("y = x + 1", modeEval)

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	want := []HistoryEntry{
		{Line: "x = 1", Mode: modeEval},
		{Line: "vars", Mode: modeCtrl},
		{Line: "y = x + 1", Mode: modeEval},
	}

	got := loaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestHistory_LoadLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	// Lines without a mode prefix are eval entries.
	if err := os.WriteFile(path, []byte("x = 1\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	entry, _ := h.GetEntry(0)
	if entry.Mode != modeEval {
		t.Errorf("expected legacy line to load as eval, got %v", entry.Mode)
	}

	entry, _ = h.GetEntry(1)
	if entry.Mode != modeCtrl {
		t.Errorf("expected C: prefix to load as ctrl, got %v", entry.Mode)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))

	if err := h.Load(); err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d", h.Len())
	}
}
