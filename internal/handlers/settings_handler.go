package handlers

import (
	"errors"
	"net/http"

	"mindbloom/internal/models"
	"mindbloom/internal/repository"
)

// SettingsHandler serves the accessibility configuration
type SettingsHandler struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsRepo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// Get returns the user's accessibility configuration, defaults included
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	cfg, err := h.settingsRepo.GetAccessibilityConfig(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load settings", err)
		return
	}
	respondWithJSON(w, http.StatusOK, cfg)
}

// Put replaces the user's accessibility configuration
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var cfg models.AccessibilityConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := validateAccessibilityConfig(&cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	if err := h.settingsRepo.SaveAccessibilityConfig(user.ID, &cfg); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to save settings", err)
		return
	}
	respondWithJSON(w, http.StatusOK, cfg)
}

func validateAccessibilityConfig(cfg *models.AccessibilityConfig) error {
	if cfg.Volume < 0 || cfg.Volume > 100 {
		return errors.New("volume must be between 0 and 100")
	}
	if cfg.Brightness < 0 || cfg.Brightness > 100 {
		return errors.New("brightness must be between 0 and 100")
	}
	switch cfg.Theme {
	case "light", "dark", "high-contrast":
	default:
		return errors.New("theme must be light, dark or high-contrast")
	}
	switch cfg.FontSize {
	case "small", "medium", "large":
	default:
		return errors.New("fontSize must be small, medium or large")
	}
	return nil
}
