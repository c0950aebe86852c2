package service

import (
	"math"
	"time"

	"mindbloom/internal/models"
)

// Summary aggregates a user's activity log for the dashboard
type Summary struct {
	TotalActivities   int                         `json:"totalActivities"`
	AverageScore      int                         `json:"averageScore"`
	TotalTimeSpent    int                         `json:"totalTimeSpent"`
	AverageTimeSpent  int                         `json:"averageTimeSpent"`
	Distribution      map[models.ActivityType]int `json:"distribution"`
	Points            int                         `json:"points"`
	Level             int                         `json:"level"`
	PointsIntoLevel   int                         `json:"pointsIntoLevel"`
	PointsToNextLevel int                         `json:"pointsToNextLevel"`
}

// DayBucket holds one day of the weekly activity chart
type DayBucket struct {
	Date       string `json:"date"`
	Activities int    `json:"activities"`
	Points     int    `json:"points"`
}

// StatsService derives read-only statistics from the activity log.
// All methods are pure functions of their arguments.
type StatsService struct{}

// NewStatsService creates a new stats service
func NewStatsService() *StatsService {
	return &StatsService{}
}

// Summarize computes dashboard totals from a user's profile and full log
func (s *StatsService) Summarize(user *models.UserProfile, log []models.ActivityRecord) *Summary {
	summary := &Summary{
		TotalActivities:   len(log),
		Distribution:      make(map[models.ActivityType]int),
		Points:            user.Points,
		Level:             user.Level(),
		PointsIntoLevel:   user.PointsIntoLevel(),
		PointsToNextLevel: user.PointsToNextLevel(),
	}

	if len(log) == 0 {
		return summary
	}

	totalScore := 0
	for _, rec := range log {
		totalScore += rec.Score
		summary.TotalTimeSpent += rec.TimeSpent
		summary.Distribution[rec.Type]++
	}

	n := float64(len(log))
	summary.AverageScore = int(math.Round(float64(totalScore) / n))
	summary.AverageTimeSpent = int(math.Round(float64(summary.TotalTimeSpent) / n))

	return summary
}

// WeeklyBuckets groups the log into the last seven calendar days, oldest
// first, ending with today. Days with no activity produce empty buckets.
func (s *StatsService) WeeklyBuckets(log []models.ActivityRecord, now time.Time) []DayBucket {
	now = now.UTC()
	buckets := make([]DayBucket, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6).Format("2006-01-02")
		buckets[i] = DayBucket{Date: day}
		index[day] = i
	}

	for _, rec := range log {
		day := rec.Date.UTC().Format("2006-01-02")
		if i, ok := index[day]; ok {
			buckets[i].Activities++
			buckets[i].Points += rec.Score
		}
	}

	return buckets
}

// RecentHistory returns the most recent records from a newest-first log,
// capped at limit
func (s *StatsService) RecentHistory(log []models.ActivityRecord, limit int) []models.ActivityRecord {
	if len(log) <= limit {
		return log
	}
	return log[:limit]
}
