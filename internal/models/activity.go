package models

import "time"

// ActivityType identifies which mini-game produced an activity record
type ActivityType string

const (
	ActivityMemory ActivityType = "memory"
	ActivityQuiz   ActivityType = "quiz"
	ActivityFocus  ActivityType = "focus"
)

// IsValid reports whether the activity type is one of the known games
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityMemory, ActivityQuiz, ActivityFocus:
		return true
	}
	return false
}

// ActivityRecord is the immutable result of one completed game round.
// Records are created exactly once by a game engine at its terminal
// transition and appended to the activity log; they are never mutated.
type ActivityRecord struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"userId"`
	Type      ActivityType `json:"type"`
	Completed bool         `json:"completed"`
	Score     int          `json:"score"`
	TimeSpent int          `json:"timeSpent"` // elapsed whole seconds from round start to completion
	Date      time.Time    `json:"date"`
}
