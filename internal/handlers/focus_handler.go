package handlers

import (
	"net/http"
	"time"

	"mindbloom/internal/game"
	"mindbloom/internal/models"
	"mindbloom/internal/service"
)

// FocusHandler drives the attention game over HTTP
type FocusHandler struct {
	store       *GameStore
	progression *service.ProgressionService
}

// NewFocusHandler creates a new focus game handler
func NewFocusHandler(store *GameStore, progression *service.ProgressionService) *FocusHandler {
	return &FocusHandler{store: store, progression: progression}
}

// Start begins a new game, replacing any game in flight
func (h *FocusHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	g := game.NewFocus(time.Now())
	h.store.PutFocus(user.ID, g)
	respondWithJSON(w, http.StatusCreated, newFocusView(g))
}

// Get returns the current game state
func (h *FocusHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	var view focusView
	ok := h.store.WithFocus(user.ID, func(g *game.Focus) {
		view = newFocusView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

type clickRequest struct {
	ID int `json:"id"`
}

// Click registers a click on an object in the current round
func (h *FocusHandler) Click(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req clickRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	var result game.ClickResult
	var view focusView
	ok := h.store.WithFocus(user.ID, func(g *game.Focus) {
		result = g.Click(req.ID, time.Now())
		view = newFocusView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"click": result,
		"game":  view,
	})
}

// Next advances past a completed round after the client's transition
// delay. Advancing past the final round completes the activity.
func (h *FocusHandler) Next(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var rec *models.ActivityRecord
	var view focusView
	ok := h.store.WithFocus(user.ID, func(g *game.Focus) {
		rec = g.Advance(time.Now())
		view = newFocusView(g)
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
	h.store.DropFocus(user.ID)

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

// Exit discards the game without recording anything
func (h *FocusHandler) Exit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	h.store.DropFocus(user.ID)
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
