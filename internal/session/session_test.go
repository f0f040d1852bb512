package session

import (
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestSetGet(t *testing.T) {
	m := newTestManager(t)
	defer m.Stop()

	if _, ok := m.Get("age"); ok {
		t.Fatalf("Get on fresh session returned a value")
	}
	m.Set("age", FieldValue{Value: "42", Present: true})
	v, ok := m.Get("age")
	if !ok || v.Value != "42" || !v.Present {
		t.Fatalf("Get = %+v ok=%v, want value 42 present", v, ok)
	}
}

func TestPersistAcrossManagers(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	m.Set("price", FieldValue{Value: "2.5", Present: true})
	m.Set("notes", FieldValue{Value: "", Present: false})
	m.Stop()

	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager reload: %v", err)
	}
	defer m2.Stop()
	v, ok := m2.Get("price")
	if !ok || v.Value != "2.5" || !v.Present {
		t.Fatalf("reloaded price = %+v ok=%v, want 2.5 present", v, ok)
	}
	v, ok = m2.Get("notes")
	if !ok || v.Present {
		t.Fatalf("reloaded notes = %+v ok=%v, want absent entry", v, ok)
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	m := newTestManager(t)
	defer m.Stop()
	if err := m.Save(); err != nil {
		t.Fatalf("Save on clean session: %v", err)
	}
}
