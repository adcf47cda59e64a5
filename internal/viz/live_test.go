package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/san-kum/vortexcurl/internal/vortex"
)

func newTestModel(t *testing.T, in Input) Model {
	t.Helper()
	m, err := NewModel(Options{Input: in, FPS: 30, Seed: 3, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestModelFrameChain(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.Center, Playing: true})

	next, cmd := m.Update(frameMsg{token: m.token})
	if cmd == nil {
		t.Fatal("live chain should reschedule")
	}
	m = next.(Model)
	if m.Loop().Scene().Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", m.Loop().Scene().Ticks())
	}
}

func TestModelKeyReconfigures(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.Center, Playing: true})
	old := m.token

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("position change should start a new chain")
	}
	if m.input.Position != vortex.OuterFlow {
		t.Errorf("position = %v, want outer_flow", m.input.Position)
	}
	if m.token == old {
		t.Error("token should change on reconfigure")
	}

	// the stale chain dies quietly
	if _, cmd := m.Update(frameMsg{token: old}); cmd != nil {
		t.Error("stale frame should not reschedule")
	}
}

func TestModelTogglePlay(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.InnerEdge, Playing: true})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if m.input.Playing {
		t.Error("space should pause")
	}

	next, _ = m.Update(frameMsg{token: m.token})
	m = next.(Model)
	if m.Loop().Scene().Ticks() != 0 {
		t.Error("paused frame should not tick")
	}
}

func TestModelNoOpKeyKeepsChain(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.Center, Playing: true})
	tok := m.token

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if cmd != nil || m.token != tok {
		t.Error("clamped move should not restart the chain")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.Center})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 150, Height: 40})
	m = next.(Model)
	w1, h1 := m.canvas.Bounds()

	next, _ = m.Update(tea.WindowSizeMsg{Width: 150, Height: 40})
	m = next.(Model)
	w2, h2 := m.canvas.Bounds()

	if w1 != w2 || h1 != h2 {
		t.Errorf("resize drifted: %dx%d -> %dx%d", w1, h1, w2, h2)
	}
	wantCols := 150 - sidebarWidth - 2*canvasPadding
	if w1 != wantCols*2 || h1 != 38*4 {
		t.Errorf("canvas %dx%d, want %dx%d", w1, h1, wantCols*2, 38*4)
	}
}

func TestModelQuitDetaches(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.Center, Playing: true})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Loop().Active() {
		t.Error("loop should be detached on quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, Input{Position: vortex.OuterFlow, Playing: false})
	m.Update(frameMsg{token: m.token})

	view := m.View()
	for _, want := range []string{"Farther Out (Outer)", "ZERO CURL", "Irrotational", "PAUSED"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNewModelRejectsUnknownPosition(t *testing.T) {
	if _, err := NewModel(Options{Input: Input{Position: vortex.Position(12)}, Logger: zerolog.Nop()}); err == nil {
		t.Error("expected error for unknown position")
	}
}
