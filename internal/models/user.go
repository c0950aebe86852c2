package models

import "time"

// PointsPerLevel is the number of points between player levels.
const PointsPerLevel = 1000

// UserProfile represents a player account in the system
type UserProfile struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Points       int
	Achievements []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Level derives the player's level from their points.
// Levels are never stored; they are always computed from points.
func (u *UserProfile) Level() int {
	return LevelForPoints(u.Points)
}

// LevelForPoints returns the level for a given point total
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

// HasAchievement checks whether an achievement has been unlocked
func (u *UserProfile) HasAchievement(id string) bool {
	for _, a := range u.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// PointsIntoLevel returns how many points the player has earned within the current level
func (u *UserProfile) PointsIntoLevel() int {
	return u.Points % PointsPerLevel
}

// PointsToNextLevel returns how many points remain until the next level
func (u *UserProfile) PointsToNextLevel() int {
	return PointsPerLevel - u.PointsIntoLevel()
}
