package game

import (
	"testing"
	"time"
)

// findPair returns the indices of two face-down cards sharing a symbol
func findPair(t *testing.T, m *Memory) (int, int) {
	t.Helper()
	for i := range m.Cards {
		if m.Cards[i].Matched || m.Cards[i].FaceUp {
			continue
		}
		for j := i + 1; j < len(m.Cards); j++ {
			if m.Cards[j].Matched || m.Cards[j].FaceUp {
				continue
			}
			if m.Cards[i].Symbol == m.Cards[j].Symbol {
				return i, j
			}
		}
	}
	t.Fatal("no unmatched pair left on the board")
	return -1, -1
}

// findMismatch returns the indices of two face-down cards with different symbols
func findMismatch(t *testing.T, m *Memory) (int, int) {
	t.Helper()
	for i := range m.Cards {
		if m.Cards[i].Matched || m.Cards[i].FaceUp {
			continue
		}
		for j := i + 1; j < len(m.Cards); j++ {
			if m.Cards[j].Matched || m.Cards[j].FaceUp {
				continue
			}
			if m.Cards[i].Symbol != m.Cards[j].Symbol {
				return i, j
			}
		}
	}
	t.Fatal("no mismatching pair left on the board")
	return -1, -1
}

func TestNewMemoryBoard(t *testing.T) {
	m := NewMemory(time.Now())

	if len(m.Cards) != MemoryPairs*2 {
		t.Fatalf("board has %d cards, want %d", len(m.Cards), MemoryPairs*2)
	}

	// Every symbol must appear exactly twice
	counts := make(map[string]int)
	for _, card := range m.Cards {
		counts[card.Symbol]++
		if card.FaceUp || card.Matched {
			t.Error("new board should have all cards face down and unmatched")
		}
	}
	for symbol, count := range counts {
		if count != 2 {
			t.Errorf("symbol %s appears %d times, want 2", symbol, count)
		}
	}
}

func TestMemorySelectRules(t *testing.T) {
	m := NewMemory(time.Now())

	if m.Select(-1) || m.Select(99) {
		t.Error("out-of-range selections should be ignored")
	}

	if !m.Select(0) {
		t.Fatal("selecting a face-down card should flip it")
	}
	if m.Select(0) {
		t.Error("selecting an already face-up card should be ignored")
	}
	if m.Moves != 0 {
		t.Errorf("moves = %d before second flip, want 0", m.Moves)
	}

	if !m.Select(1) {
		t.Fatal("selecting the second card should flip it")
	}
	if m.Moves != 1 {
		t.Errorf("moves = %d after second flip, want 1", m.Moves)
	}
	if !m.Locked {
		t.Error("board should lock once two cards are face up")
	}

	// Third selection while two cards are pending must be a no-op
	if m.Select(2) {
		t.Error("selection while locked should be ignored")
	}
	if m.Cards[2].FaceUp {
		t.Error("ignored selection must not flip the card")
	}
}

func TestMemoryMismatchFlipsBack(t *testing.T) {
	m := NewMemory(time.Now())
	i, j := findMismatch(t, m)

	m.Select(i)
	m.Select(j)
	if record := m.Resolve(time.Now()); record != nil {
		t.Fatal("mismatch resolution must not emit a record")
	}

	if m.Cards[i].FaceUp || m.Cards[j].FaceUp {
		t.Error("mismatched cards should flip back face down")
	}
	if m.Locked {
		t.Error("board should unlock after resolution")
	}
	if m.Matches != 0 {
		t.Errorf("matches = %d, want 0", m.Matches)
	}
}

func TestMemoryMatchSticks(t *testing.T) {
	m := NewMemory(time.Now())
	i, j := findPair(t, m)

	m.Select(i)
	m.Select(j)
	if record := m.Resolve(time.Now()); record != nil {
		t.Fatal("first match must not emit a record")
	}

	if !m.Cards[i].Matched || !m.Cards[j].Matched {
		t.Error("matching cards should become permanently matched")
	}
	if m.Matches != 1 {
		t.Errorf("matches = %d, want 1", m.Matches)
	}
	if m.Select(i) {
		t.Error("selecting a matched card should be ignored")
	}
}

func TestMemoryCompletionEmitsOnce(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory(start)

	// Clear the board with perfect recall: 8 moves
	for m.Matches < MemoryPairs {
		i, j := findPair(t, m)
		m.Select(i)
		m.Select(j)
		if m.Matches < MemoryPairs-1 {
			if record := m.Resolve(start); record != nil {
				t.Fatal("record emitted before terminal condition")
			}
		} else {
			record := m.Resolve(start.Add(95 * time.Second))
			if record == nil {
				t.Fatal("final match must emit a record")
			}
			if record.Type != "memory" || !record.Completed {
				t.Errorf("record = %+v, want completed memory activity", record)
			}
			if record.Score != 84 {
				t.Errorf("perfect 8-move clear score = %d, want 84", record.Score)
			}
			if record.TimeSpent != 95 {
				t.Errorf("timeSpent = %d, want 95", record.TimeSpent)
			}
			if record.ID == "" {
				t.Error("record must carry an id")
			}
		}
	}

	if !m.Finished {
		t.Error("game should be finished")
	}
	if m.Select(0) {
		t.Error("input after completion should be ignored")
	}
	if record := m.Resolve(start); record != nil {
		t.Error("resolve after completion must not emit a second record")
	}
}

func TestMemoryScoreFormula(t *testing.T) {
	tests := []struct {
		moves int
		want  int
	}{
		{8, 84},
		{10, 80},
		{12, 76},
		{50, 0},
		{60, 0}, // clamped
	}

	for _, tt := range tests {
		m := &Memory{Moves: tt.moves}
		if got := m.Score(); got != tt.want {
			t.Errorf("score with %d moves = %d, want %d", tt.moves, got, tt.want)
		}
	}
}
