package handlers

import (
	"net/http"
	"time"

	"mindbloom/internal/game"
	"mindbloom/internal/models"
	"mindbloom/internal/service"
)

// MemoryHandler drives the card matching game over HTTP
type MemoryHandler struct {
	store       *GameStore
	progression *service.ProgressionService
}

// NewMemoryHandler creates a new memory game handler
func NewMemoryHandler(store *GameStore, progression *service.ProgressionService) *MemoryHandler {
	return &MemoryHandler{store: store, progression: progression}
}

// Start begins a new round, replacing any round in flight
func (h *MemoryHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	g := game.NewMemory(time.Now())
	h.store.PutMemory(user.ID, g)
	respondWithJSON(w, http.StatusCreated, newMemoryView(g))
}

// Get returns the current round state
func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	var view memoryView
	ok := h.store.WithMemory(user.ID, func(g *game.Memory) {
		view = newMemoryView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

type selectRequest struct {
	Index int `json:"index"`
}

// Select flips a card face up
func (h *MemoryHandler) Select(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req selectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	var accepted bool
	var view memoryView
	ok := h.store.WithMemory(user.ID, func(g *game.Memory) {
		accepted = g.Select(req.Index)
		view = newMemoryView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"accepted": accepted,
		"game":     view,
	})
}

// Resolve settles the pair on the table after the client's flip delay.
// When the final pair matches it completes the activity.
func (h *MemoryHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var rec *models.ActivityRecord
	var view memoryView
	ok := h.store.WithMemory(user.ID, func(g *game.Memory) {
		rec = g.Resolve(time.Now())
		view = newMemoryView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}

	if rec == nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"game": view})
		return
	}

	updated, unlocked, err := h.progression.ApplyCompletedActivity(user.ID, rec)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to record activity", err)
		return
	}
	h.store.DropMemory(user.ID)

	if unlocked == nil {
		unlocked = []string{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"game": view,
		"result": progressUpdateView{
			Record:               rec,
			User:                 newUserView(updated),
			UnlockedAchievements: unlocked,
		},
	})
}

// Exit discards the round without recording anything
func (h *MemoryHandler) Exit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	h.store.DropMemory(user.ID)
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
