package cli

import (
	stderrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func fakeModel() interactiveModel {
	preview := func(text string) (string, bool) {
		if strings.HasPrefix(text, "display: flex") {
			return "flex", true
		}
		return "", false
	}
	commit := func(text string) (string, bool, error) {
		if text == "boom" {
			return "", false, stderrors.New("cache unavailable")
		}
		classes, ok := preview(text)
		return classes, ok, nil
	}
	return newInteractiveModel(preview, commit)
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestInteractivePreview(t *testing.T) {
	var m tea.Model = fakeModel()
	m = typeText(m, "display: flex")

	im := m.(interactiveModel)
	if string(im.input) != "display: flex" {
		t.Fatalf("input = %q", string(im.input))
	}
	if !im.matched || im.classes != "flex" {
		t.Errorf("preview = %q (matched %v)", im.classes, im.matched)
	}
	if !strings.Contains(m.View(), "flex") {
		t.Error("view does not show the preview")
	}

	m, _ = press(m, tea.KeyBackspace)
	if m.(interactiveModel).matched {
		t.Error("preview still matches after backspace")
	}
	if !strings.Contains(m.View(), "no match") {
		t.Error("view does not report the miss")
	}

	m, _ = press(m, tea.KeyCtrlU)
	if len(m.(interactiveModel).input) != 0 {
		t.Error("ctrl+u did not clear the input")
	}
}

func TestInteractiveRecord(t *testing.T) {
	var m tea.Model = fakeModel()

	m, _ = press(m, tea.KeyEnter)
	if len(m.(interactiveModel).history) != 0 {
		t.Fatal("empty input was recorded")
	}

	m = typeText(m, "display: flex")
	m, _ = press(m, tea.KeyEnter)
	m = typeText(m, "color: red")
	m, _ = press(m, tea.KeyEnter)

	im := m.(interactiveModel)
	if len(im.history) != 2 {
		t.Fatalf("history = %+v", im.history)
	}
	if im.history[0].declarations != "color: red" || im.history[0].classes != "" {
		t.Errorf("latest entry = %+v", im.history[0])
	}
	if im.history[1].classes != "flex" {
		t.Errorf("first entry = %+v", im.history[1])
	}
	if len(im.input) != 0 {
		t.Error("input not cleared after recording")
	}
	if !strings.Contains(m.View(), "2 recorded") {
		t.Error("view does not show the history count")
	}
}

func TestInteractiveHistoryLimit(t *testing.T) {
	var m tea.Model = fakeModel()
	for i := 0; i < maxHistory+3; i++ {
		m = typeText(m, "display: flex")
		m, _ = press(m, tea.KeyEnter)
	}
	if n := len(m.(interactiveModel).history); n != maxHistory {
		t.Errorf("history length = %d, want %d", n, maxHistory)
	}
}

func TestInteractiveCommitError(t *testing.T) {
	var m tea.Model = fakeModel()
	m = typeText(m, "boom")
	m, _ = press(m, tea.KeyEnter)

	im := m.(interactiveModel)
	if im.err == nil || len(im.history) != 0 {
		t.Fatalf("err = %v, history = %+v", im.err, im.history)
	}
	if string(im.input) != "boom" {
		t.Error("input dropped after a failed commit")
	}
	if !strings.Contains(m.View(), "cache unavailable") {
		t.Error("view does not show the error")
	}
}

func TestInteractiveQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(fakeModel(), k)
		if cmd == nil {
			t.Fatalf("%v returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", k)
		}
	}
}
