package entity

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

type Cadence string

const (
	CadenceDaily    Cadence = "DAILY"
	CadenceWeekdays Cadence = "WEEKDAYS"
	CadenceWeekly   Cadence = "WEEKLY"
)

type User struct {
	ID            uuid.UUID
	Name          string
	PasswordHash  string
	XP            int
	Level         int
	Coins         int
	StreakFreezes int
}

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	Difficulty  Difficulty `json:"difficulty"`
	Cadence     Cadence    `json:"cadence"`
	Archived    bool       `json:"archived"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Completion records that a habit was performed on one calendar day.
// At most one row per (habit, day); the unique index enforces it.
type Completion struct {
	ID          int
	HabitID     uuid.UUID
	UserID      uuid.UUID
	CompletedOn time.Time
	CreatedAt   time.Time
}

type Streak struct {
	HabitID       uuid.UUID  `json:"habit_id"`
	UserID        uuid.UUID  `json:"uid"`
	CurrentCount  int        `json:"current_count"`
	LongestCount  int        `json:"longest_count"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
}

// Reward is the outcome of the pure reward calculation for one completion.
type Reward struct {
	BaseXP  int `json:"base_xp"`
	BonusXP int `json:"bonus_xp"`
	TotalXP int `json:"total_xp"`
	Coins   int `json:"coins"`
}

type LevelUp struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}

type AchievementSummary struct {
	Key        string    `json:"key"`
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	XPReward   int       `json:"xp_reward"`
	CoinReward int       `json:"coin_reward"`
	UnlockedAt time.Time `json:"unlocked_at,omitempty"`
}

// CompletionReward aggregates everything one completion earned.
type CompletionReward struct {
	XP              int                  `json:"xp"`
	Coins           int                  `json:"coins"`
	LevelUp         *LevelUp             `json:"level_up,omitempty"`
	NewAchievements []AchievementSummary `json:"new_achievements"`
	StreakMilestone *int                 `json:"streak_milestone,omitempty"`
	StreakCount     int                  `json:"streak_count"`
}

type LevelProgress struct {
	Level    int `json:"level"`
	XPInto   int `json:"xp_into_level"`
	XPNeeded int `json:"xp_for_next_level"`
	Percent  int `json:"percent"`
}

type GamificationStats struct {
	UserID        uuid.UUID            `json:"uid"`
	XP            int                  `json:"xp"`
	Coins         int                  `json:"coins"`
	StreakFreezes int                  `json:"streak_freezes"`
	Progress      LevelProgress        `json:"progress"`
	Achievements  []AchievementSummary `json:"achievements"`
	Streaks       []Streak             `json:"streaks"`
}

type LeaderboardEntry struct {
	Rank   int       `json:"rank"`
	UserID uuid.UUID `json:"uid"`
	Name   string    `json:"name"`
	XP     int       `json:"xp"`
	Level  int       `json:"level"`
}

// StatsSnapshot is the aggregate view achievement predicates run against.
type StatsSnapshot struct {
	StreakCount      int
	TotalCompletions int
	Level            int
	FriendCount      int
	ConsecutiveDays  int
}
