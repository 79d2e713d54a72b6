package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"riddlegrid/internal/deck"
	"riddlegrid/internal/puzzle"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, onComplete func()) Model {
	t.Helper()
	d, err := deck.Default()
	if err != nil {
		t.Fatalf("Default deck: %v", err)
	}
	m, err := NewModel(d, onComplete)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func answerOf(t *testing.T, m Model, index int) string {
	t.Helper()
	r, err := m.Screen().Riddle(index)
	if err != nil {
		t.Fatalf("Riddle(%d): %v", index, err)
	}
	return r.Answer
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, keyRight, keyRight, keyRight)
	if m.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2 (clamped)", m.Cursor())
	}
	m, _ = send(m, keyDown, keyDown, keyDown)
	if m.Cursor() != 8 {
		t.Fatalf("cursor = %d, want 8", m.Cursor())
	}
	m, _ = send(m, runes("h"), runes("k"))
	if m.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", m.Cursor())
	}
}

func TestOpenAndCloseDialog(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(m, keyRight, keyEnter)
	if cmd == nil {
		t.Error("opening a dialog should return the focus command")
	}
	if got := m.Screen().State(); got.Phase != puzzle.PhaseDialogOpen || got.Tile != 1 {
		t.Fatalf("state = %+v, want dialog on tile 1", got)
	}

	m, _ = send(m, keyEsc)
	if got := m.Screen().State(); got.Phase != puzzle.PhaseIdle {
		t.Fatalf("state after esc = %+v", got)
	}
	if m.Screen().Progress().Solved != 0 {
		t.Error("closing the dialog must not solve the tile")
	}
}

func TestWrongAndNearAnswers(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, keyEnter, runes("xyz"), keyEnter)
	if m.notice != noticeWrong {
		t.Errorf("notice = %d, want wrong", m.notice)
	}
	d, ok := m.Screen().Dialog()
	if !ok || d.Attempts != 1 || d.Draft != "xyz" {
		t.Fatalf("dialog = %+v, %v", d, ok)
	}

	m.input.SetValue("librar")
	m, _ = send(m, keyEnter)
	if m.notice != noticeNear {
		t.Errorf("notice = %d, want near", m.notice)
	}
	if m.Screen().IsSolved(0) {
		t.Error("near miss solved the tile")
	}
}

func TestQuitKeyIsTypedInsideDialog(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, keyEnter, runes("q"))
	if m.quitting {
		t.Fatal("q inside the dialog quit the program")
	}
	if m.input.Value() != "q" {
		t.Errorf("input = %q, want q", m.input.Value())
	}
}

func TestCorrectAnswerAdvancesCursor(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(m, keyEnter, runes("Library"), keyEnter)
	if !m.Screen().IsSolved(0) {
		t.Fatal("tile 0 not solved")
	}
	if m.Screen().State().Phase != puzzle.PhaseIdle {
		t.Fatalf("phase = %s", m.Screen().State().Phase)
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	m, _ = send(m, keyLeft, keyEnter)
	if m.notice != noticeAlreadySolved {
		t.Errorf("notice = %d, want already solved", m.notice)
	}
	if m.Screen().State().Phase != puzzle.PhaseIdle {
		t.Error("solved tile reopened")
	}
}

func TestCompleteBoardHandsOffOnce(t *testing.T) {
	calls := 0
	m := newTestModel(t, func() { calls++ })

	for i := range puzzle.TileCount {
		if m.Cursor() != i {
			t.Fatalf("cursor = %d, want %d", m.Cursor(), i)
		}
		if i == puzzle.TileCount-1 {
			m, _ = send(m, keyEnter)
			if !m.Screen().Tiles()[i].Final {
				t.Error("last open tile not marked final")
			}
			if !strings.Contains(m.View(), "the last one") {
				t.Error("final dialog not highlighted")
			}
			m, _ = send(m, runes(answerOf(t, m, i)), keyEnter)
			continue
		}
		m, _ = send(m, keyEnter, runes(answerOf(t, m, i)), keyEnter)
	}

	if !m.Screen().Complete() || m.Screen().State().Phase != puzzle.PhaseComplete {
		t.Fatalf("state = %+v", m.Screen().State())
	}
	if calls != 0 {
		t.Fatal("callback ran before confirmation")
	}
	if !strings.Contains(m.View(), m.deck.CompleteTitle) {
		t.Error("completion view missing title")
	}

	m, cmd := send(m, keyEnter)
	if calls != 1 || !m.HandedOff() {
		t.Fatalf("calls = %d, handed off = %v", calls, m.HandedOff())
	}
	if cmd == nil {
		t.Fatal("confirmation did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirmation cmd is not tea.Quit")
	}

	m.quitting = false
	send(m, keyEnter)
	if calls != 1 {
		t.Errorf("callback ran %d times", calls)
	}
}

func TestWindowSizeAndView(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("size = %dx%d", m.width, m.height)
	}
	view := m.View()
	if !strings.Contains(view, m.deck.Title) || !strings.Contains(view, "0 / 9") {
		t.Errorf("view missing title or progress:\n%s", view)
	}

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c did not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
