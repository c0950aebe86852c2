package game

import (
	"math"
	"math/rand"
	"time"

	"mindbloom/internal/models"
)

var (
	focusTargetSymbols     = []string{"⭐", "🌟", "✨"}
	focusDistractorSymbols = []string{"💫", "🔹", "🔸", "◆", "◇", "○", "●"}
)

const (
	// FocusRounds is the fixed number of rounds per game
	FocusRounds = 5

	focusTargetPoints     = 10
	focusDistractorPoints = 5
)

// FocusObject is one clickable object in the play field
type FocusObject struct {
	ID       int     `json:"id"`
	Symbol   string  `json:"symbol"`
	X        float64 `json:"x"` // percentage position within the display area
	Y        float64 `json:"y"`
	IsTarget bool    `json:"isTarget"`
	Clicked  bool    `json:"clicked"`
}

// Focus is the focus/attention game state machine. Each of the 5 rounds
// scatters targets and distractors at random positions; clicking a target
// scores +10, a distractor -5 with the running total floored at zero. When
// every target of a round is clicked a speed bonus is added and the round
// locks until Advance fires after the presentation delay.
type Focus struct {
	Round            int // 1-based
	Objects          []FocusObject
	Score            int
	Clicks           int
	LastBonus        int  // speed bonus awarded for the most recent completed round
	RoundComplete    bool // all targets clicked, awaiting Advance
	ScoreBeforeBonus int  // running score when the final round completed, before its bonus
	Finished         bool
	StartedAt        time.Time
	RoundStartedAt   time.Time
}

// NewFocus starts a new focus game at round 1
func NewFocus(now time.Time) *Focus {
	f := &Focus{
		Round:          1,
		StartedAt:      now,
		RoundStartedAt: now,
	}
	f.generateRound()
	return f
}

// generateRound scatters the current round's objects. Target count grows
// with the round index, distractor count grows faster.
func (f *Focus) generateRound() {
	numTargets := min(3+f.Round, 6)
	numDistractors := min(5+f.Round*2, 15)

	objects := make([]FocusObject, 0, numTargets+numDistractors)
	for i := 0; i < numTargets; i++ {
		objects = append(objects, FocusObject{
			ID:       i,
			Symbol:   focusTargetSymbols[rand.Intn(len(focusTargetSymbols))],
			X:        rand.Float64()*80 + 10,
			Y:        rand.Float64()*70 + 10,
			IsTarget: true,
		})
	}
	for i := 0; i < numDistractors; i++ {
		objects = append(objects, FocusObject{
			ID:     numTargets + i,
			Symbol: focusDistractorSymbols[rand.Intn(len(focusDistractorSymbols))],
			X:      rand.Float64()*80 + 10,
			Y:      rand.Float64()*70 + 10,
		})
	}
	f.Objects = objects
}

// ClickResult describes the outcome of a click event for the caller
type ClickResult struct {
	Accepted      bool `json:"accepted"`
	TargetHit     bool `json:"targetHit"`
	Points        int  `json:"points"` // signed delta applied to the running score
	Bonus         int  `json:"bonus"`  // speed bonus, set when the click completed the round
	RoundComplete bool `json:"roundComplete"`
}

// Click marks an object clicked and applies its score delta. Clicks are
// ignored while the round is locked awaiting Advance, after the game
// finished, and on already-clicked or unknown objects.
func (f *Focus) Click(id int, now time.Time) ClickResult {
	if f.Finished || f.RoundComplete {
		return ClickResult{}
	}

	var obj *FocusObject
	for i := range f.Objects {
		if f.Objects[i].ID == id {
			obj = &f.Objects[i]
			break
		}
	}
	if obj == nil || obj.Clicked {
		return ClickResult{}
	}

	obj.Clicked = true
	f.Clicks++

	if !obj.IsTarget {
		// Floor applies to the running total, not per click
		before := f.Score
		f.Score -= focusDistractorPoints
		if f.Score < 0 {
			f.Score = 0
		}
		return ClickResult{Accepted: true, Points: f.Score - before}
	}

	f.Score += focusTargetPoints
	result := ClickResult{Accepted: true, TargetHit: true, Points: focusTargetPoints}

	if f.TargetsRemaining() == 0 {
		// Snapshot before the bonus: finalization reads the pre-bonus score
		f.ScoreBeforeBonus = f.Score
		roundSeconds := elapsedSeconds(f.RoundStartedAt, now)
		f.LastBonus = speedBonus(roundSeconds)
		f.Score += f.LastBonus
		f.RoundComplete = true
		result.Bonus = f.LastBonus
		result.RoundComplete = true
	}
	return result
}

// speedBonus rewards clearing a round quickly
func speedBonus(roundSeconds int) int {
	bonus := 30 - roundSeconds*2
	if bonus < 0 {
		return 0
	}
	return bonus
}

// TargetsRemaining counts the unclicked targets in the current round
func (f *Focus) TargetsRemaining() int {
	remaining := 0
	for _, obj := range f.Objects {
		if obj.IsTarget && !obj.Clicked {
			remaining++
		}
	}
	return remaining
}

// Advance fires after the round-transition delay: it regenerates the next
// round or, after the final round, finalizes the game and emits the
// activity record exactly once. The final score uses the running score as
// it stood when the last round completed, before that round's speed bonus
// took effect.
func (f *Focus) Advance(now time.Time) *models.ActivityRecord {
	if f.Finished || !f.RoundComplete {
		return nil
	}

	if f.Round < FocusRounds {
		f.Round++
		f.RoundComplete = false
		f.RoundStartedAt = now
		f.generateRound()
		return nil
	}

	f.Finished = true
	return newRecord(models.ActivityFocus, f.FinalScore(), f.StartedAt, now)
}

// FinalScore normalizes the pre-bonus running total to a 0-100 scale
func (f *Focus) FinalScore() int {
	score := int(math.Round(float64(f.ScoreBeforeBonus) / FocusRounds * 2))
	if score > 100 {
		return 100
	}
	return score
}
