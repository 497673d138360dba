package clipboard

import (
	"errors"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory(nil)
	if err := m.WriteText("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.WriteText("second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Text() != "second" || m.Writes() != 2 {
		t.Errorf("text=%q writes=%d", m.Text(), m.Writes())
	}
	<-m.Written()
	<-m.Written()
}

func TestMemoryFailure(t *testing.T) {
	errDenied := errors.New("denied")
	m := NewMemory(errDenied)
	if err := m.WriteText("x"); !errors.Is(err, errDenied) {
		t.Fatalf("expected errDenied, got %v", err)
	}
	if m.Text() != "" || m.Writes() != 1 {
		t.Errorf("text=%q writes=%d", m.Text(), m.Writes())
	}
}
