// Package game contains the round state machines for the three mini-games.
// Each engine advances only through discrete events (a selection, a click,
// or the firing of a scheduled presentation delay) and produces exactly one
// ActivityRecord at its terminal transition. Engines know nothing about
// HTTP or persistence; input locking during feedback is part of their
// formal state rather than a side effect of timer callbacks.
package game

import (
	"time"

	"github.com/google/uuid"

	"mindbloom/internal/models"
)

// newActivityID returns a time-ordered unique id for an activity record
func newActivityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the entropy source does; fall back to v4
		return uuid.New().String()
	}
	return id.String()
}

// elapsedSeconds computes whole seconds between start and now. Scoring
// always uses this real elapsed time, never a display ticker.
func elapsedSeconds(start, now time.Time) int {
	return int(now.Sub(start).Seconds())
}

func newRecord(activityType models.ActivityType, score int, start, now time.Time) *models.ActivityRecord {
	return &models.ActivityRecord{
		ID:        newActivityID(),
		Type:      activityType,
		Completed: true,
		Score:     score,
		TimeSpent: elapsedSeconds(start, now),
		Date:      now.UTC(),
	}
}
