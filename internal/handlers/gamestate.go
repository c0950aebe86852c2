package handlers

import (
	"sync"

	"mindbloom/internal/game"
)

// GameStore keeps in-flight game rounds in memory, one per user per game.
// Starting a new round replaces any previous one; exiting discards it.
type GameStore struct {
	mu     sync.Mutex
	memory map[int64]*game.Memory
	quiz   map[int64]*game.Quiz
	focus  map[int64]*game.Focus
}

// NewGameStore creates an empty game store
func NewGameStore() *GameStore {
	return &GameStore{
		memory: make(map[int64]*game.Memory),
		quiz:   make(map[int64]*game.Quiz),
		focus:  make(map[int64]*game.Focus),
	}
}

// WithMemory runs fn with the user's memory game under the store lock.
// Returns false when the user has no game in flight.
func (s *GameStore) WithMemory(userID int64, fn func(*game.Memory)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.memory[userID]
	if !ok {
		return false
	}
	fn(g)
	return true
}

// PutMemory replaces the user's memory game
func (s *GameStore) PutMemory(userID int64, g *game.Memory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory[userID] = g
}

// DropMemory discards the user's memory game without emitting a record
func (s *GameStore) DropMemory(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.memory, userID)
}

// WithQuiz runs fn with the user's quiz under the store lock
func (s *GameStore) WithQuiz(userID int64, fn func(*game.Quiz)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.quiz[userID]
	if !ok {
		return false
	}
	fn(g)
	return true
}

// PutQuiz replaces the user's quiz
func (s *GameStore) PutQuiz(userID int64, g *game.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz[userID] = g
}

// DropQuiz discards the user's quiz without emitting a record
func (s *GameStore) DropQuiz(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quiz, userID)
}

// WithFocus runs fn with the user's focus game under the store lock
func (s *GameStore) WithFocus(userID int64, fn func(*game.Focus)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.focus[userID]
	if !ok {
		return false
	}
	fn(g)
	return true
}

// PutFocus replaces the user's focus game
func (s *GameStore) PutFocus(userID int64, g *game.Focus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus[userID] = g
}

// DropFocus discards the user's focus game without emitting a record
func (s *GameStore) DropFocus(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.focus, userID)
}
