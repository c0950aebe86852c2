package models

// Achievement ids. The first three are edge-triggered: they are granted by
// the progression engine at the exact moment their threshold is crossed and
// persisted on the profile. The rest are derived at display time.
const (
	AchievementFirstActivity = "first-activity"
	AchievementTenActivities = "ten-activities"
	AchievementPerfectScore  = "perfect-score"
	AchievementLevelFive     = "level-5"
	AchievementWeekStreak    = "week-streak"
	AchievementSpeedMaster   = "speed-master"
)

// AchievementDefinition is a static catalog entry
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// AchievementStatus pairs a catalog entry with its unlocked state for display
type AchievementStatus struct {
	AchievementDefinition
	Unlocked bool `json:"unlocked"`
}
