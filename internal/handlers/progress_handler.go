package handlers

import (
	"net/http"
	"time"

	"mindbloom/internal/models"
	"mindbloom/internal/repository"
	"mindbloom/internal/service"
)

// historyLimit caps the score history endpoint
const historyLimit = 10

// ProgressHandler serves the dashboard read models
type ProgressHandler struct {
	activityRepo *repository.ActivityRepository
	stats        *service.StatsService
	achievements *service.AchievementService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(activityRepo *repository.ActivityRepository, stats *service.StatsService, achievements *service.AchievementService) *ProgressHandler {
	return &ProgressHandler{
		activityRepo: activityRepo,
		stats:        stats,
		achievements: achievements,
	}
}

// Summary returns the aggregate statistics for the dashboard
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	log, err := h.activityRepo.ListByUser(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load activities", err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.stats.Summarize(user, log))
}

// Weekly returns the last seven days of activity, oldest first
func (h *ProgressHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	since := time.Now().UTC().AddDate(0, 0, -6).Truncate(24 * time.Hour)
	log, err := h.activityRepo.ListSince(user.ID, since)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load activities", err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.stats.WeeklyBuckets(log, time.Now()))
}

// History returns the most recent activities, newest first
func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	log, err := h.activityRepo.ListByUser(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load activities", err)
		return
	}

	history := h.stats.RecentHistory(log, historyLimit)
	if history == nil {
		history = []models.ActivityRecord{}
	}
	respondWithJSON(w, http.StatusOK, history)
}

// Achievements returns the catalog with each entry's unlocked state
func (h *ProgressHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	log, err := h.activityRepo.ListByUser(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load activities", err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.achievements.Evaluate(log, user))
}
