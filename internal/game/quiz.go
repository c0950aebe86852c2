package game

import (
	"math"
	"time"

	"mindbloom/internal/models"
)

// Quiz is the quiz game state machine. Every question must be answered to
// finalize the round; there is no skip or timeout path. Submitting an
// answer locks the question until the Advance event fires after the
// feedback delay.
type Quiz struct {
	Questions  []QuizQuestion
	Current    int
	Correct    int
	Answered   bool // answer locked in, awaiting Advance
	LastAnswer int
	StartedAt  time.Time
	Finished   bool
}

// NewQuiz starts a new quiz round over the fixed question catalog
func NewQuiz(now time.Time) *Quiz {
	return &Quiz{
		Questions:  quizQuestions,
		LastAnswer: -1,
		StartedAt:  now,
	}
}

// Question returns the current question
func (q *Quiz) Question() QuizQuestion {
	return q.Questions[q.Current]
}

// Answer records a selection for the current question. Input is ignored
// while the question is locked or after the round finished. Returns whether
// the selection was accepted and whether it was correct.
func (q *Quiz) Answer(option int) (accepted, correct bool) {
	if q.Finished || q.Answered {
		return false, false
	}
	if option < 0 || option >= len(q.Question().Options) {
		return false, false
	}

	q.Answered = true
	q.LastAnswer = option
	if option == q.Question().CorrectAnswer {
		q.Correct++
		return true, true
	}
	return true, false
}

// Advance fires after the feedback delay: it moves to the next question
// or, when the last question was just answered, finalizes the round and
// emits the activity record exactly once.
func (q *Quiz) Advance(now time.Time) *models.ActivityRecord {
	if q.Finished || !q.Answered {
		return nil
	}

	if q.Current < len(q.Questions)-1 {
		q.Current++
		q.Answered = false
		q.LastAnswer = -1
		return nil
	}

	q.Finished = true
	return newRecord(models.ActivityQuiz, q.Score(), q.StartedAt, now)
}

// Score computes the percentage of correct answers, rounded
func (q *Quiz) Score() int {
	return int(math.Round(float64(q.Correct) / float64(len(q.Questions)) * 100))
}
