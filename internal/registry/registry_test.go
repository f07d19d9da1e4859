package registry_test

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func TestSnakeVariantsRegistered(t *testing.T) {
	for _, id := range []string{snake.IDRemap, snake.IDReset} {
		if !registry.Exists(id) {
			t.Errorf("%q should be registered", id)
		}

		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestListSorted(t *testing.T) {
	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("Expected at least 2 games, got %d", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
	for _, g := range games {
		if g.Title == "" {
			t.Errorf("Game %q has empty title", g.ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("tetris"); err == nil {
		t.Error("Create of an unknown ID should fail")
	}
	if registry.Exists("tetris") {
		t.Error("Exists should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate ID should panic")
		}
	}()
	registry.Register(snake.IDRemap, func() registry.Game { return snake.New() })
}
