package handlers

import (
	"time"

	"mindbloom/internal/game"
	"mindbloom/internal/models"
)

// UserView is the profile shape returned to clients, without credentials
type UserView struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	Achievements []string  `json:"achievements"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newUserView(user *models.UserProfile) UserView {
	achievements := user.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	return UserView{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Points:       user.Points,
		Level:        user.Level(),
		Achievements: achievements,
		CreatedAt:    user.CreatedAt,
	}
}

// progressUpdateView reports the outcome of a completed activity
type progressUpdateView struct {
	Record               *models.ActivityRecord `json:"record"`
	User                 UserView               `json:"user"`
	UnlockedAchievements []string               `json:"unlockedAchievements"`
}

// memoryCardView hides the symbol of cards that are still face down
type memoryCardView struct {
	ID      int    `json:"id"`
	Symbol  string `json:"symbol,omitempty"`
	FaceUp  bool   `json:"faceUp"`
	Matched bool   `json:"matched"`
}

type memoryView struct {
	Cards    []memoryCardView `json:"cards"`
	Moves    int              `json:"moves"`
	Matches  int              `json:"matches"`
	Pairs    int              `json:"pairs"`
	Locked   bool             `json:"locked"`
	Finished bool             `json:"finished"`
}

func newMemoryView(g *game.Memory) memoryView {
	cards := make([]memoryCardView, len(g.Cards))
	for i, c := range g.Cards {
		cards[i] = memoryCardView{ID: c.ID, FaceUp: c.FaceUp, Matched: c.Matched}
		if c.FaceUp || c.Matched {
			cards[i].Symbol = c.Symbol
		}
	}
	return memoryView{
		Cards:    cards,
		Moves:    g.Moves,
		Matches:  g.Matches,
		Pairs:    game.MemoryPairs,
		Locked:   g.Locked,
		Finished: g.Finished,
	}
}

type quizView struct {
	QuestionIndex  int      `json:"questionIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options"`
	Answered       bool     `json:"answered"`
	CorrectCount   int      `json:"correctCount"`
	Finished       bool     `json:"finished"`
}

func newQuizView(g *game.Quiz) quizView {
	view := quizView{
		QuestionIndex:  g.Current,
		TotalQuestions: len(g.Questions),
		Answered:       g.Answered,
		CorrectCount:   g.Correct,
		Finished:       g.Finished,
	}
	if !g.Finished {
		q := g.Question()
		view.Prompt = q.Prompt
		view.Options = q.Options
	}
	return view
}

// answerView reveals the correct option only after the answer locked in
type answerView struct {
	Accepted      bool `json:"accepted"`
	Correct       bool `json:"correct"`
	CorrectAnswer int  `json:"correctAnswer"`
}

type focusView struct {
	Round            int                `json:"round"`
	TotalRounds      int                `json:"totalRounds"`
	Objects          []game.FocusObject `json:"objects"`
	Score            int                `json:"score"`
	Clicks           int                `json:"clicks"`
	LastBonus        int                `json:"lastBonus"`
	TargetsRemaining int                `json:"targetsRemaining"`
	RoundComplete    bool               `json:"roundComplete"`
	Finished         bool               `json:"finished"`
}

func newFocusView(g *game.Focus) focusView {
	return focusView{
		Round:            g.Round,
		TotalRounds:      game.FocusRounds,
		Objects:          g.Objects,
		Score:            g.Score,
		Clicks:           g.Clicks,
		LastBonus:        g.LastBonus,
		TargetsRemaining: g.TargetsRemaining(),
		RoundComplete:    g.RoundComplete,
		Finished:         g.Finished,
	}
}
