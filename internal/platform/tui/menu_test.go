package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuStartsOnCurrentVariant(t *testing.T) {
	m := NewMenuModel(snake.IDReset, 80, 24)
	if m.items[m.cursor].ID != snake.IDReset {
		t.Errorf("Cursor on %q, expected %q", m.items[m.cursor].ID, snake.IDReset)
	}

	m = NewMenuModel("unknown", 80, 24)
	if m.cursor != 0 {
		t.Errorf("Unknown variant should leave the cursor at 0, got %d", m.cursor)
	}
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(snake.IDRemap, 80, 24)
	start := m.cursor

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if start == 0 && m.cursor != 0 {
		t.Error("Cursor should not move above the first item")
	}

	for range len(m.items) + 2 {
		m, _ = updateMenu(t, m, runeKey('j'))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("Cursor = %d, expected last item %d", m.cursor, len(m.items)-1)
	}

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Select should quit the menu program")
	}
	if m.Selected() != m.items[len(m.items)-1].ID {
		t.Errorf("Selected() = %q", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel("", 80, 24)

	m, cmd := updateMenu(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != "" {
		t.Error("Quitting should not select a variant")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestMenuViewListsVariants(t *testing.T) {
	m := NewMenuModel("", 80, 24)
	view := m.View()

	for _, item := range m.items {
		if !strings.Contains(view, item.Title) {
			t.Errorf("Menu view is missing %q", item.Title)
		}
	}
}
