package repository

import (
	"database/sql"
	"fmt"
	"time"

	"mindbloom/internal/database"
	"mindbloom/internal/models"
)

// ActivityRepository handles database operations for the activity log
type ActivityRepository struct {
	db *database.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// InsertTx appends a completed activity to the log using the given query
// runner, which may be a transaction
func (r *ActivityRepository) InsertTx(q database.DBTX, rec *models.ActivityRecord) error {
	query := `
		INSERT INTO activities (id, user_id, activity_type, completed, score, time_spent, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := q.Exec(query,
		rec.ID,
		rec.UserID,
		string(rec.Type),
		rec.Completed,
		rec.Score,
		rec.TimeSpent,
		rec.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// CountForUserTx returns the number of logged activities for a user using
// the given query runner, which may be a transaction
func (r *ActivityRepository) CountForUserTx(q database.DBTX, userID int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM activities WHERE user_id = ?"
	if err := q.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// ListByUser retrieves all activities for a user, newest first
func (r *ActivityRepository) ListByUser(userID int64) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, user_id, activity_type, completed, score, time_spent, date
		FROM activities
		WHERE user_id = ?
		ORDER BY date DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ListSince retrieves activities for a user on or after the given time,
// oldest first
func (r *ActivityRepository) ListSince(userID int64, since time.Time) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, user_id, activity_type, completed, score, time_spent, date
		FROM activities
		WHERE user_id = ? AND date >= ?
		ORDER BY date
	`
	rows, err := r.db.Query(query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows *sql.Rows) ([]models.ActivityRecord, error) {
	var records []models.ActivityRecord
	for rows.Next() {
		var rec models.ActivityRecord
		var activityType string
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&activityType,
			&rec.Completed,
			&rec.Score,
			&rec.TimeSpent,
			&rec.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		rec.Type = models.ActivityType(activityType)
		records = append(records, rec)
	}
	return records, rows.Err()
}
