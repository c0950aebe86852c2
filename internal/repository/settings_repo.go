package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"mindbloom/internal/database"
	"mindbloom/internal/models"
)

type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by key
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	// "key" is a reserved word on some backends
	query := fmt.Sprintf("SELECT value FROM settings WHERE %s = ?", r.db.Dialect.QuoteIdent("key"))
	err := r.db.QueryRow(query, key).Scan(&value)
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(key, value string) error {
	query := r.db.Dialect.UpsertSetting()
	_, err := r.db.Exec(query, key, value)
	return err
}

// accessibilityKey scopes the accessibility configuration per user
func accessibilityKey(userID int64) string {
	return fmt.Sprintf("accessibility:%d", userID)
}

// GetAccessibilityConfig retrieves a user's accessibility configuration,
// falling back to defaults when none has been saved
func (r *SettingsRepository) GetAccessibilityConfig(userID int64) (*models.AccessibilityConfig, error) {
	value, err := r.GetSetting(accessibilityKey(userID))
	if err == sql.ErrNoRows {
		cfg := models.DefaultAccessibilityConfig()
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accessibility config: %w", err)
	}

	var cfg models.AccessibilityConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		// A corrupt stored record behaves like an absent one
		log.Printf("Malformed accessibility config for user %d, using defaults: %v", userID, err)
		cfg = models.DefaultAccessibilityConfig()
	}
	return &cfg, nil
}

// SaveAccessibilityConfig stores a user's accessibility configuration
func (r *SettingsRepository) SaveAccessibilityConfig(userID int64, cfg *models.AccessibilityConfig) error {
	encoded, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode accessibility config: %w", err)
	}
	if err := r.SetSetting(accessibilityKey(userID), string(encoded)); err != nil {
		return fmt.Errorf("failed to save accessibility config: %w", err)
	}
	return nil
}
