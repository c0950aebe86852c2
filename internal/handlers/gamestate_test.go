package handlers

import (
	"testing"
	"time"

	"mindbloom/internal/game"
)

func TestGameStoreLifecycle(t *testing.T) {
	store := NewGameStore()
	now := time.Now()

	if ok := store.WithMemory(1, func(*game.Memory) {}); ok {
		t.Error("WithMemory should report no game before Put")
	}

	store.PutMemory(1, game.NewMemory(now))

	var moves int
	if ok := store.WithMemory(1, func(g *game.Memory) { moves = g.Moves }); !ok {
		t.Fatal("WithMemory should find the stored game")
	}
	if moves != 0 {
		t.Errorf("moves = %d, want 0", moves)
	}

	// Games are per user
	if ok := store.WithMemory(2, func(*game.Memory) {}); ok {
		t.Error("user 2 should have no game")
	}

	store.DropMemory(1)
	if ok := store.WithMemory(1, func(*game.Memory) {}); ok {
		t.Error("WithMemory should report no game after Drop")
	}
}

func TestGameStoreStartReplaces(t *testing.T) {
	store := NewGameStore()
	now := time.Now()

	first := game.NewQuiz(now)
	first.Correct = 5
	store.PutQuiz(7, first)
	store.PutQuiz(7, game.NewQuiz(now))

	var correct int
	if ok := store.WithQuiz(7, func(g *game.Quiz) { correct = g.Correct }); !ok {
		t.Fatal("WithQuiz should find the stored game")
	}
	if correct != 0 {
		t.Errorf("correct = %d, want 0 after replacement", correct)
	}
}

func TestGameStoreIndependentSlots(t *testing.T) {
	store := NewGameStore()
	now := time.Now()

	store.PutMemory(1, game.NewMemory(now))
	store.PutQuiz(1, game.NewQuiz(now))
	store.PutFocus(1, game.NewFocus(now))

	store.DropQuiz(1)

	if ok := store.WithMemory(1, func(*game.Memory) {}); !ok {
		t.Error("memory game should survive dropping the quiz")
	}
	if ok := store.WithFocus(1, func(*game.Focus) {}); !ok {
		t.Error("focus game should survive dropping the quiz")
	}
	if ok := store.WithQuiz(1, func(*game.Quiz) {}); ok {
		t.Error("quiz should be gone")
	}
}
