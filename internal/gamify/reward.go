// Package gamify holds the pure arithmetic of the reward engine: streak-scaled
// XP/coin grants, the level curve, milestone detection and the static
// achievement catalog. Nothing here touches storage.
package gamify

import (
	"math"

	"github.com/lumixed/habitflow/pkg/entity"
)

const (
	BaseXP    = 50
	BaseCoins = 10
)

// StreakMultiplier scales the base reward by streak length: +1% per day up to
// 100 days, plus a flat +0.25 from 30 days (or +0.10 from 7 days).
func StreakMultiplier(streakCount int) float64 {
	capped := streakCount
	if capped > 100 {
		capped = 100
	}
	m := 1.0 + float64(capped)*0.01
	switch {
	case streakCount >= 30:
		m += 0.25
	case streakCount >= 7:
		m += 0.10
	}
	return m
}

func DifficultyMultiplier(d entity.Difficulty) float64 {
	switch d {
	case entity.DifficultyEasy:
		return 0.8
	case entity.DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// CalculateReward computes the XP and coin grant for one completion.
// BonusXP is measured against the unscaled base, so it can be negative for
// easy habits.
func CalculateReward(streakCount int, d entity.Difficulty) entity.Reward {
	mult := StreakMultiplier(streakCount) * DifficultyMultiplier(d)
	totalXP := int(math.Floor(BaseXP * mult))
	coins := int(math.Floor(BaseCoins * mult))
	return entity.Reward{
		BaseXP:  BaseXP,
		BonusXP: totalXP - BaseXP,
		TotalXP: totalXP,
		Coins:   coins,
	}
}

// Milestones are the streak lengths that trigger a one-time signal.
var Milestones = []int{7, 30, 100, 365}

// CrossedMilestone reports the smallest milestone the streak crossed when it
// moved from oldCount to newCount, at most one per transition.
func CrossedMilestone(oldCount, newCount int) (int, bool) {
	for _, m := range Milestones {
		if oldCount < m && newCount >= m {
			return m, true
		}
	}
	return 0, false
}
