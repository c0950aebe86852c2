package service

import (
	"path/filepath"
	"testing"

	"mindbloom/internal/database"
	"mindbloom/internal/models"
	"mindbloom/internal/repository"
)

func setupBackup(t *testing.T) (*BackupService, *ProgressionService, *repository.UserRepository, *repository.SettingsRepository) {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations/sqlite"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	progression := NewProgressionService(db, userRepo, activityRepo)
	return NewBackupService(db, userRepo), progression, userRepo, settingsRepo
}

func TestBackupRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	backup, progression, userRepo, settingsRepo := setupBackup(t)

	user, err := userRepo.CreateUser("kid@example.com", "hash", "Kid")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, _, err := progression.ApplyCompletedActivity(user.ID, record(models.ActivityMemory, 92, 110)); err != nil {
		t.Fatalf("ApplyCompletedActivity() error = %v", err)
	}
	if err := settingsRepo.SetSetting("accessibility:1", `{"volume":30}`); err != nil {
		t.Fatalf("SetSetting() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := backup.Export(path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if err := backup.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	cleared, err := userRepo.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(cleared) != 0 {
		t.Fatalf("len(users) after clear = %d, want 0", len(cleared))
	}

	if err := backup.Import(path); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	restored, err := userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if restored == nil {
		t.Fatal("user not restored")
	}
	if restored.Points != 92 {
		t.Errorf("Points = %d, want 92", restored.Points)
	}
	if !restored.HasAchievement(models.AchievementFirstActivity) {
		t.Error("achievements not restored")
	}
	if !restored.HasAchievement(models.AchievementPerfectScore) {
		t.Error("perfect-score not restored")
	}

	value, err := settingsRepo.GetSetting("accessibility:1")
	if err != nil {
		t.Fatalf("GetSetting() error = %v", err)
	}
	if value != `{"volume":30}` {
		t.Errorf("setting = %q, want original value", value)
	}
}
