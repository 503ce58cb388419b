package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
)

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []registry.GameInfo{
		{ID: "one", Title: "One"},
		{ID: "two", Title: "Two"},
	}

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("select should quit the menu")
	}
	sel := model.(MenuModel).Selected()
	if sel == nil || sel.ID != "two" {
		t.Errorf("Selected() = %+v, expected two", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	var model tea.Model = NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	model, _ = model.Update(runeKey('q'))

	if model.(MenuModel).Selected() != nil {
		t.Error("quit should not select anything")
	}
	if model.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("wide text should be returned as is, got %q", got)
	}
}
