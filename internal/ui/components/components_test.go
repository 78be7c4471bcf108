package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestOptionGrid_DigitChoosesOption(t *testing.T) {
	g := NewOptionGrid([]int{12, 7, 30, 4}, 30)

	g, cmd := g.Update(key("3"))
	if cmd == nil {
		t.Fatal("expected a command for an enabled option")
	}
	msg, ok := cmd().(OptionChosenMsg)
	if !ok || msg.Value != 30 {
		t.Errorf("expected OptionChosenMsg{30}, got %#v", cmd())
	}
	if g.Cursor != 2 {
		t.Errorf("expected cursor to follow the digit, got %d", g.Cursor)
	}
}

func TestOptionGrid_ArrowsMoveInTwoColumns(t *testing.T) {
	g := NewOptionGrid([]int{1, 2, 3, 4}, 1)

	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if g.Cursor != 3 {
		t.Fatalf("expected cursor 3, got %d", g.Cursor)
	}
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if g.Cursor != 3 {
		t.Errorf("right edge should not wrap, got %d", g.Cursor)
	}

	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil || cmd().(OptionChosenMsg).Value != 4 {
		t.Error("enter should choose the option under the cursor")
	}
}

func TestOptionGrid_WrongAndSolvedAreDisabled(t *testing.T) {
	g := NewOptionGrid([]int{12, 7, 30, 4}, 30)
	g.Wrong = []int{7}

	if _, cmd := g.Update(key("2")); cmd != nil {
		t.Error("a wrong-tried option must not be selectable")
	}
	if !g.Disabled(1) || g.Disabled(0) {
		t.Error("only the wrong option should be disabled")
	}

	g.Solved = true
	for i := range g.Values {
		if !g.Disabled(i) {
			t.Errorf("option %d should be disabled once solved", i)
		}
	}
	if _, cmd := g.Update(key("1")); cmd != nil {
		t.Error("no option is selectable once solved")
	}
}

func TestOptionGrid_ViewMarksStates(t *testing.T) {
	g := NewOptionGrid([]int{12, 7, 30, 4}, 30)
	g.Wrong = []int{7}
	g.Solved = true

	out := g.View(60)
	if !strings.Contains(out, "30  ✓") {
		t.Errorf("expected the answer marked correct:\n%s", out)
	}
	if !strings.Contains(out, "7  ✗") {
		t.Errorf("expected the wrong try marked:\n%s", out)
	}
}

func TestNumberGrid_TogglesUnderCursor(t *testing.T) {
	g := NewNumberGrid(1, 15, 5, []int{1, 2})
	g.Focused = true

	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if g.CursorNumber() != 7 {
		t.Fatalf("expected cursor on 7, got %d", g.CursorNumber())
	}

	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	if msg := cmd().(NumberToggledMsg); msg.N != 7 {
		t.Errorf("expected toggle of 7, got %d", msg.N)
	}
}

func TestNumberGrid_StaysInBounds(t *testing.T) {
	g := NewNumberGrid(1, 15, 5, nil)
	g.Focused = true

	for i := 0; i < 5; i++ {
		g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if g.CursorNumber() != 15 {
		t.Errorf("expected cursor clamped to 15, got %d", g.CursorNumber())
	}
}

func TestNumberGrid_IgnoresKeysWhenUnfocused(t *testing.T) {
	g := NewNumberGrid(1, 15, 5, nil)
	g, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if g.Cursor != 0 || cmd != nil {
		t.Error("unfocused grid must ignore keys")
	}
}

func TestTextInput_ClampedInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 1},
		{"0", 1},
		{"42", 42},
		{"250", 100},
	}
	for _, tt := range tests {
		ti := NewTextInput("50", true, 3)
		ti.SetValue(tt.value)
		if got := ti.ClampedInt(1, 100); got != tt.want {
			t.Errorf("ClampedInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTextInput_NumericOnlyDropsLetters(t *testing.T) {
	ti := NewTextInput("", true, 3)
	ti.Focus()

	ti, _ = ti.Update(key("a"))
	ti, _ = ti.Update(key("7"))
	if ti.Value() != "7" {
		t.Errorf("expected only the digit to be accepted, got %q", ti.Value())
	}
}

func TestMenu_ShortcutActivatesItem(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "Start New Session", Shortcut: "n", Action: func() tea.Cmd { called = "new"; return nil }},
		{Label: "Quit", Shortcut: "q", Action: func() tea.Cmd { called = "quit"; return nil }},
	})

	m, _ = m.Update(key("q"))
	if called != "quit" || m.Selected != 1 {
		t.Errorf("expected quit via shortcut, got %q (selected %d)", called, m.Selected)
	}
}

func TestSessionProgress(t *testing.T) {
	out := NewSessionProgress(3, 12, 40).View()
	if !strings.Contains(out, "3/12") || !strings.Contains(out, "25%") {
		t.Errorf("unexpected progress view: %s", out)
	}
}
