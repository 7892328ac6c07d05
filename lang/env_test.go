package lang

import (
	"slices"
	"testing"
)

func TestEnv_SetGet(t *testing.T) {
	env := NewEnv()

	if _, ok := env.Get("x"); ok {
		t.Fatal("expected unbound variable to report !ok")
	}

	env.Set("x", NumberValue(1))
	env.Set("b", BooleanValue(true))

	value, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}

	if num, _ := value.Number(); num != 1 {
		t.Errorf("expected 1, got %v", num)
	}

	// Rebinding replaces both value and type.
	env.Set("x", BooleanValue(false))

	value, _ = env.Get("x")
	if value.Type() != TypeBoolean {
		t.Errorf("expected Boolean after rebinding, got %v", value.Type())
	}

	if env.Len() != 2 {
		t.Errorf("expected 2 bindings, got %d", env.Len())
	}
}

func TestEnv_Names(t *testing.T) {
	env := NewEnv()
	env.Set("zebra", NumberValue(1))
	env.Set("apple", NumberValue(2))
	env.Set("mango", NumberValue(3))

	want := []string{"apple", "mango", "zebra"}
	if got := env.Names(); !slices.Equal(got, want) {
		t.Errorf("expected sorted names %v, got %v", want, got)
	}
}

func TestEnv_Snapshot(t *testing.T) {
	env := NewEnv()
	env.Set("x", NumberValue(1))

	snap := env.Snapshot()

	env.Set("x", NumberValue(99))
	env.Set("y", NumberValue(2))

	if len(snap) != 1 {
		t.Fatalf("expected snapshot with 1 binding, got %d", len(snap))
	}

	if num, _ := snap["x"].Number(); num != 1 {
		t.Errorf("expected snapshot to keep old value, got %v", num)
	}
}

func TestEnv_ToMap(t *testing.T) {
	env := NewEnv()
	env.Set("n", NumberValue(1.5))
	env.Set("b", BooleanValue(true))

	got := env.ToMap()

	if num, ok := got["n"].(float64); !ok || num != 1.5 {
		t.Errorf("expected float64 1.5, got %#v", got["n"])
	}

	if b, ok := got["b"].(bool); !ok || !b {
		t.Errorf("expected bool true, got %#v", got["b"])
	}
}
