package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"mindbloom/internal/database"
	"mindbloom/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	Users      []UserBackup     `json:"users"`
	Activities []ActivityBackup `json:"activities"`
	Settings   []SettingBackup  `json:"settings"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	Points       int       `json:"points"`
	Achievements string    `json:"achievements"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ActivityBackup represents an activity record for backup
type ActivityBackup struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Completed    bool      `json:"completed"`
	Score        int       `json:"score"`
	TimeSpent    int       `json:"time_spent"`
	Date         time.Time `json:"date"`
}

// SettingBackup represents a settings row for backup
type SettingBackup struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db    *database.DB
	users *repository.UserRepository
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, users *repository.UserRepository) *BackupService {
	return &BackupService{db: db, users: users}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportActivities(backup); err != nil {
		return fmt.Errorf("failed to export activities: %w", err)
	}
	if err := s.exportSettings(backup); err != nil {
		return fmt.Errorf("failed to export settings: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d activities, %d settings",
		len(backup.Users), len(backup.Activities), len(backup.Settings))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importActivities(backup.Activities); err != nil {
		return fmt.Errorf("failed to import activities: %w", err)
	}
	if err := s.importSettings(backup.Settings); err != nil {
		return fmt.Errorf("failed to import settings: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

// ClearAll removes every record. Used by the import tool's -clear flag.
func (s *BackupService) ClearAll() error {
	// Delete children of users first
	for _, table := range []string{"activities", "settings", "users"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	users, err := s.users.ListUsers()
	if err != nil {
		return err
	}

	for _, u := range users {
		encoded, err := json.Marshal(u.Achievements)
		if err != nil {
			return err
		}
		backup.Users = append(backup.Users, UserBackup{
			ID:           u.ID,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Points:       u.Points,
			Achievements: string(encoded),
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		})
	}
	return nil
}

func (s *BackupService) exportActivities(backup *BackupData) error {
	rows, err := s.db.Query(`
		SELECT id, user_id, activity_type, completed, score, time_spent, date
		FROM activities ORDER BY date
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a ActivityBackup
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.Completed, &a.Score, &a.TimeSpent, &a.Date); err != nil {
			return err
		}
		backup.Activities = append(backup.Activities, a)
	}
	return rows.Err()
}

func (s *BackupService) exportSettings(backup *BackupData) error {
	key := s.db.Dialect.QuoteIdent("key")
	rows, err := s.db.Query(fmt.Sprintf("SELECT %s, value FROM settings ORDER BY %s", key, key))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var st SettingBackup
		if err := rows.Scan(&st.Key, &st.Value); err != nil {
			return err
		}
		backup.Settings = append(backup.Settings, st)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []UserBackup) error {
	for _, u := range users {
		// Explicit ids so activity references stay intact
		_, err := s.db.Exec(`
			INSERT INTO users (id, email, password_hash, name, points, achievements, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, u.ID, u.Email, u.PasswordHash, u.Name, u.Points, u.Achievements, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}
	}
	return nil
}

func (s *BackupService) importActivities(activities []ActivityBackup) error {
	for _, a := range activities {
		_, err := s.db.Exec(`
			INSERT INTO activities (id, user_id, activity_type, completed, score, time_spent, date)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.UserID, a.ActivityType, a.Completed, a.Score, a.TimeSpent, a.Date)
		if err != nil {
			return fmt.Errorf("activity %s: %w", a.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importSettings(settings []SettingBackup) error {
	query := s.db.Dialect.UpsertSetting()
	for _, st := range settings {
		if _, err := s.db.Exec(query, st.Key, st.Value); err != nil {
			return fmt.Errorf("setting %s: %w", st.Key, err)
		}
	}
	return nil
}
