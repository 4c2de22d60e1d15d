package app

import (
	"math"
	"strings"
	"time"

	"brainbolt-service/internal/domain"
)

const (
	baseScore           = 10
	penaltyScale        = 20
	maxStreakMultiplier = 2.5
	streakDecayAfter    = 24 * time.Hour

	minDifficulty = 1.0
	maxDifficulty = 10.0
)

// decayStreak halves the streak (integer division) when the last update is at
// least 24 hours old. Returns true when decay was applied.
func decayStreak(state *domain.UserState, now time.Time) bool {
	if state.UpdatedAt.IsZero() {
		return false
	}
	if now.Sub(state.UpdatedAt) < streakDecayAfter {
		return false
	}
	state.Streak /= 2
	return true
}

// resetDailyWindow zeroes the daily counters when the UTC calendar day has
// advanced since the last activity.
func resetDailyWindow(state *domain.UserState, now time.Time) {
	if state.LastActivityAt.IsZero() {
		return
	}
	ly, lm, ld := state.LastActivityAt.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	last := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	if last.Before(today) {
		state.DailyAttempts = 0
		state.DailyCorrect = 0
	}
}

// answerMatches compares answers ignoring case and surrounding whitespace.
func answerMatches(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// accuracyMultiplier maps the daily accuracy ratio onto a score multiplier.
func accuracyMultiplier(accuracy float64) float64 {
	switch {
	case accuracy <= 0.2:
		return 0.5
	case accuracy <= 0.5:
		return 0.75
	case accuracy <= 0.75:
		return 0.9
	default:
		return 1.0
	}
}

// applyAnswer grades one attempt against the question and applies the score,
// streak and difficulty updates to state. The attempt is counted toward the
// daily window before the accuracy ratio is computed. Returns the verdict and
// the signed score delta. Score arithmetic truncates toward zero; difficulty
// stays clamped to [1.0, 10.0].
func applyAnswer(state *domain.UserState, question domain.Question, answer string) (bool, int64) {
	state.DailyAttempts++
	correct := answerMatches(answer, question.Answer)

	// Tier is the floor of the continuous difficulty; it is >= 1 by invariant
	// but guard anyway so a corrupt record cannot divide by zero.
	tier := int(state.Difficulty)
	if tier < 1 {
		tier = 1
	}
	step := 1.0 / float64(tier)

	if correct {
		state.DailyCorrect++
		accuracy := float64(state.DailyCorrect) / float64(state.DailyAttempts)
		streakMult := 1 + 0.1*float64(state.Streak)
		if streakMult > maxStreakMultiplier {
			streakMult = maxStreakMultiplier
		}
		delta := int64(float64(baseScore) * float64(question.Difficulty) * streakMult * accuracyMultiplier(accuracy))

		state.TotalScore += delta
		state.Streak++
		if state.Streak > state.MaxStreak {
			state.MaxStreak = state.Streak
		}
		state.Difficulty = math.Min(state.Difficulty+step, maxDifficulty)
		return true, delta
	}

	accuracy := float64(state.DailyCorrect) / float64(state.DailyAttempts)
	penalty := int64((1 - accuracy) * penaltyScale)

	state.TotalScore -= penalty
	if state.TotalScore < 0 {
		state.TotalScore = 0
	}
	state.Streak = 0
	state.Difficulty = math.Max(state.Difficulty-step, minDifficulty)
	return false, -penalty
}
