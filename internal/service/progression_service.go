package service

import (
	"fmt"

	"mindbloom/internal/database"
	"mindbloom/internal/models"
	"mindbloom/internal/repository"
)

// ProgressionService converts completed activities into points and
// achievement unlocks
type ProgressionService struct {
	db           *database.DB
	userRepo     *repository.UserRepository
	activityRepo *repository.ActivityRepository
}

// NewProgressionService creates a new progression service
func NewProgressionService(db *database.DB, userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *ProgressionService {
	return &ProgressionService{
		db:           db,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// ApplyCompletedActivity appends a completed activity to the log, adds its
// score to the user's points and unlocks any achievements whose condition
// became true with this activity. The log append and profile update commit
// in a single transaction. Returns the updated profile and the ids of
// achievements unlocked by this activity.
func (s *ProgressionService) ApplyCompletedActivity(userID int64, rec *models.ActivityRecord) (*models.UserProfile, []string, error) {
	if !rec.Type.IsValid() {
		return nil, nil, fmt.Errorf("invalid activity type: %s", rec.Type)
	}
	rec.UserID = userID

	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	user, err := s.userRepo.GetUserByIDTx(tx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if err := s.activityRepo.InsertTx(tx, rec); err != nil {
		return nil, nil, err
	}

	count, err := s.activityRepo.CountForUserTx(tx, userID)
	if err != nil {
		return nil, nil, err
	}

	user.Points += rec.Score

	// Unlock conditions are edge-triggered: they fire on the activity that
	// makes them true, in this order
	var unlocked []string
	unlock := func(id string) {
		if !user.HasAchievement(id) {
			user.Achievements = append(user.Achievements, id)
			unlocked = append(unlocked, id)
		}
	}
	if count == 1 {
		unlock(models.AchievementFirstActivity)
	}
	if count == 10 {
		unlock(models.AchievementTenActivities)
	}
	if rec.Score >= 90 {
		unlock(models.AchievementPerfectScore)
	}

	if err := s.userRepo.UpdateProgressTx(tx, userID, user.Points, user.Achievements); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, unlocked, nil
}
