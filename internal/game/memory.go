package game

import (
	"math/rand"
	"time"

	"mindbloom/internal/models"
)

// memorySymbols are the 8 card pair symbols
var memorySymbols = []string{"🎨", "🎭", "🎪", "🎯", "🎲", "🎸", "🎹", "🎺"}

// MemoryPairs is the number of symbol pairs on the board
const MemoryPairs = 8

// MemoryCard is one card on the memory board
type MemoryCard struct {
	ID      int    `json:"id"`
	Symbol  string `json:"symbol"`
	FaceUp  bool   `json:"faceUp"`
	Matched bool   `json:"matched"`
}

// Memory is the memory matching game state machine. A round holds 16
// shuffled cards (8 pairs); at most two cards are face up at any instant.
// Once the second card of an attempt is face up the board locks until the
// Resolve event fires after the presentation delay.
type Memory struct {
	Cards     []MemoryCard
	FaceUp    []int // indices of unmatched face-up cards, length 0..2
	Moves     int
	Matches   int
	Locked    bool // two cards face up, awaiting Resolve
	Finished  bool
	StartedAt time.Time
}

// NewMemory creates a shuffled memory board
func NewMemory(now time.Time) *Memory {
	symbols := make([]string, 0, MemoryPairs*2)
	symbols = append(symbols, memorySymbols...)
	symbols = append(symbols, memorySymbols...)
	rand.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	cards := make([]MemoryCard, len(symbols))
	for i, symbol := range symbols {
		cards[i] = MemoryCard{ID: i, Symbol: symbol}
	}

	return &Memory{
		Cards:     cards,
		StartedAt: now,
	}
}

// Select flips a face-down, unmatched card. Selections while the board is
// locked, on an out-of-range index, or on a card that is already face up or
// matched are ignored. Flipping the second card of an attempt increments
// the move counter and locks the board. Returns true if a card was flipped.
func (m *Memory) Select(index int) bool {
	if m.Finished || m.Locked {
		return false
	}
	if index < 0 || index >= len(m.Cards) {
		return false
	}
	card := &m.Cards[index]
	if card.FaceUp || card.Matched {
		return false
	}

	card.FaceUp = true
	m.FaceUp = append(m.FaceUp, index)

	if len(m.FaceUp) == 2 {
		m.Moves++
		m.Locked = true
	}
	return true
}

// PendingMatch reports whether the two face-up cards awaiting resolution
// carry the same symbol. Only meaningful while the board is locked.
func (m *Memory) PendingMatch() bool {
	if len(m.FaceUp) != 2 {
		return false
	}
	return m.Cards[m.FaceUp[0]].Symbol == m.Cards[m.FaceUp[1]].Symbol
}

// Resolve fires after the presentation delay for a two-card attempt:
// a matching pair becomes permanently matched, a mismatch flips both cards
// back face down. On the transition that matches the final pair the round
// finishes and the activity record is emitted, exactly once.
func (m *Memory) Resolve(now time.Time) *models.ActivityRecord {
	if !m.Locked || m.Finished {
		return nil
	}

	first, second := &m.Cards[m.FaceUp[0]], &m.Cards[m.FaceUp[1]]
	if first.Symbol == second.Symbol {
		first.Matched = true
		second.Matched = true
		m.Matches++
	} else {
		first.FaceUp = false
		second.FaceUp = false
	}
	m.FaceUp = m.FaceUp[:0]
	m.Locked = false

	if m.Matches < MemoryPairs {
		return nil
	}

	m.Finished = true
	return newRecord(models.ActivityMemory, m.Score(), m.StartedAt, now)
}

// Score computes the round score: fewer moves means a higher score,
// floored at zero. A perfect 8-move clear yields 84.
func (m *Memory) Score() int {
	score := 100 - m.Moves*2
	if score < 0 {
		return 0
	}
	return score
}
