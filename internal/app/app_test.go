package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kioku/internal/screen"
)

// stubScreen is a minimal screen for testing the stack.
type stubScreen struct {
	title     string
	initRan   bool
	refreshed bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		s.refreshed = true
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func update(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want app.Model", next)
	}
	return am
}

func TestPush(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	m := NewModel(first)

	m = update(t, m, screen.PushMsg{Screen: second})

	if len(m.stack) != 2 {
		t.Fatalf("stack depth = %d, want 2", len(m.stack))
	}
	if m.active().Title() != "second" {
		t.Errorf("active = %q, want %q", m.active().Title(), "second")
	}
	if !second.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopRefreshesScreenBelow(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	m := NewModel(first)
	m = update(t, m, screen.PushMsg{Screen: second})

	m = update(t, m, screen.PopMsg{})

	if len(m.stack) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(m.stack))
	}
	if m.active().Title() != "first" {
		t.Errorf("active = %q, want %q", m.active().Title(), "first")
	}
	if !first.refreshed {
		t.Error("expected RefreshMsg delivered to the screen below")
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	first := &stubScreen{title: "first"}
	m := NewModel(first)

	m = update(t, m, screen.PopMsg{})

	if len(m.stack) != 1 {
		t.Errorf("stack depth = %d after pop at root, want 1", len(m.stack))
	}
}

func TestReplace(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	third := &stubScreen{title: "third"}
	m := NewModel(first)
	m = update(t, m, screen.PushMsg{Screen: second})

	m = update(t, m, screen.ReplaceMsg{Screen: third})

	if len(m.stack) != 2 {
		t.Fatalf("stack depth = %d, want 2", len(m.stack))
	}
	if m.active().Title() != "third" {
		t.Errorf("active = %q, want %q", m.active().Title(), "third")
	}
	if !third.initRan {
		t.Error("expected Init() to run on replacement screen")
	}

	// Popping the replacement skips the replaced screen entirely.
	m = update(t, m, screen.PopMsg{})
	if m.active().Title() != "first" {
		t.Errorf("active after pop = %q, want %q", m.active().Title(), "first")
	}
}

func TestHomeUnwindsToRoot(t *testing.T) {
	first := &stubScreen{title: "first"}
	m := NewModel(first)
	m = update(t, m, screen.PushMsg{Screen: &stubScreen{title: "second"}})
	m = update(t, m, screen.PushMsg{Screen: &stubScreen{title: "third"}})

	m = update(t, m, screen.HomeMsg{})

	if len(m.stack) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(m.stack))
	}
	if m.active().Title() != "first" {
		t.Errorf("active = %q, want %q", m.active().Title(), "first")
	}
	if !first.refreshed {
		t.Error("expected RefreshMsg delivered to the root screen")
	}
}

func TestHomeAtRootQuits(t *testing.T) {
	m := NewModel(&stubScreen{title: "only"})

	_, cmd := m.Update(screen.HomeMsg{})

	if cmd == nil {
		t.Fatal("expected quit command when home is requested at the root")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit at the root")
	}
}

func TestEscPops(t *testing.T) {
	first := &stubScreen{title: "first"}
	m := NewModel(first)
	m = update(t, m, screen.PushMsg{Screen: &stubScreen{title: "second"}})

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.active().Title() != "first" {
		t.Errorf("active after esc = %q, want %q", m.active().Title(), "first")
	}
}

func TestEnvToday(t *testing.T) {
	env := &Env{}
	if env.Today().IsZero() {
		t.Error("expected Today to fall back to the system clock")
	}
}
