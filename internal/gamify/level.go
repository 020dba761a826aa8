package gamify

import (
	"math"

	"github.com/lumixed/habitflow/pkg/entity"
)

// XPForLevel returns the XP needed to advance from level n to n+1.
func XPForLevel(n int) int {
	return int(math.Floor(100 * math.Pow(float64(n), 1.5)))
}

// LevelFromXP walks the curve upward until the cumulative threshold exceeds
// the total. LevelFromXP(0) == 1.
func LevelFromXP(totalXP int) int {
	level := 1
	threshold := XPForLevel(level)
	for totalXP >= threshold {
		level++
		threshold += XPForLevel(level)
	}
	return level
}

// Progress describes where totalXP sits inside the current level.
func Progress(totalXP int) entity.LevelProgress {
	level := LevelFromXP(totalXP)
	spent := 0
	for n := 1; n < level; n++ {
		spent += XPForLevel(n)
	}
	into := totalXP - spent
	needed := XPForLevel(level)
	percent := 0
	if needed > 0 {
		percent = into * 100 / needed
	}
	if percent > 100 {
		percent = 100
	}
	return entity.LevelProgress{
		Level:    level,
		XPInto:   into,
		XPNeeded: needed,
		Percent:  percent,
	}
}

// CheckLevelUp compares levels at two XP totals.
func CheckLevelUp(oldXP, newXP int) (leveledUp bool, oldLevel, newLevel int) {
	oldLevel = LevelFromXP(oldXP)
	newLevel = LevelFromXP(newXP)
	return newLevel > oldLevel, oldLevel, newLevel
}
