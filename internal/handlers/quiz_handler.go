package handlers

import (
	"net/http"
	"time"

	"mindbloom/internal/game"
	"mindbloom/internal/models"
	"mindbloom/internal/service"
)

// QuizHandler drives the quiz game over HTTP
type QuizHandler struct {
	store       *GameStore
	progression *service.ProgressionService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(store *GameStore, progression *service.ProgressionService) *QuizHandler {
	return &QuizHandler{store: store, progression: progression}
}

// Start begins a new quiz, replacing any quiz in flight
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	g := game.NewQuiz(time.Now())
	h.store.PutQuiz(user.ID, g)
	respondWithJSON(w, http.StatusCreated, newQuizView(g))
}

// Get returns the current quiz state
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	var view quizView
	ok := h.store.WithQuiz(user.ID, func(g *game.Quiz) {
		view = newQuizView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

type answerRequest struct {
	Option int `json:"option"`
}

// Answer locks in an option for the current question
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	var result answerView
	var view quizView
	ok := h.store.WithQuiz(user.ID, func(g *game.Quiz) {
		accepted, correct := g.Answer(req.Option)
		result = answerView{Accepted: accepted, Correct: correct, CorrectAnswer: -1}
		if accepted {
			result.CorrectAnswer = g.Question().CorrectAnswer
		}
		view = newQuizView(g)
	})
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNoActiveGame, "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"answer": result,
		"game":   view,
	})
}

// Next advances past an answered question after the client's feedback
// delay. Advancing past the last question completes the activity.
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var rec *models.ActivityRecord
	var view quizView
	ok := h.store.WithQuiz(user.ID, func(g *game.Quiz) {
		rec = g.Advance(time.Now())
		view = newQuizView(g)
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
	h.store.DropQuiz(user.ID)

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

// Exit discards the quiz without recording anything
func (h *QuizHandler) Exit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	h.store.DropQuiz(user.ID)
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
