package gamify

import (
	"time"

	"github.com/lumixed/habitflow/pkg/entity"
)

// EvalContext carries everything an achievement predicate may inspect: the
// aggregate stats snapshot plus the timestamp of the completion that triggered
// the evaluation (zero when the evaluation was not triggered by a completion).
type EvalContext struct {
	Stats       entity.StatsSnapshot
	CompletedAt time.Time
}

type AchievementDef struct {
	Key        string
	Category   string
	Title      string
	XPReward   int
	CoinReward int
	Predicate  func(EvalContext) bool
}

func (d AchievementDef) Summary() entity.AchievementSummary {
	return entity.AchievementSummary{
		Key:        d.Key,
		Category:   d.Category,
		Title:      d.Title,
		XPReward:   d.XPReward,
		CoinReward: d.CoinReward,
	}
}

const (
	CategoryProgress = "progress"
	CategoryStreak   = "streak"
	CategoryLevel    = "level"
	CategorySocial   = "social"
	CategoryTime     = "time"
)

// Catalog returns the full achievement rule set, in definition order. The
// slice is rebuilt per call so callers cannot mutate the shared set.
func Catalog() []AchievementDef {
	return []AchievementDef{
		{
			Key: "first_step", Category: CategoryProgress, Title: "First Step",
			XPReward: 25, CoinReward: 10,
			Predicate: func(c EvalContext) bool { return c.Stats.TotalCompletions >= 1 },
		},
		{
			Key: "committed", Category: CategoryProgress, Title: "Committed",
			XPReward: 50, CoinReward: 20,
			Predicate: func(c EvalContext) bool { return c.Stats.TotalCompletions >= 10 },
		},
		{
			Key: "dedicated", Category: CategoryProgress, Title: "Dedicated",
			XPReward: 100, CoinReward: 40,
			Predicate: func(c EvalContext) bool { return c.Stats.TotalCompletions >= 50 },
		},
		{
			Key: "centurion", Category: CategoryProgress, Title: "Centurion",
			XPReward: 200, CoinReward: 75,
			Predicate: func(c EvalContext) bool { return c.Stats.TotalCompletions >= 100 },
		},
		{
			Key: "habit_legend", Category: CategoryProgress, Title: "Habit Legend",
			XPReward: 500, CoinReward: 200,
			Predicate: func(c EvalContext) bool { return c.Stats.TotalCompletions >= 500 },
		},
		{
			Key: "week_streak", Category: CategoryStreak, Title: "One Week Strong",
			XPReward: 70, CoinReward: 25,
			Predicate: func(c EvalContext) bool { return c.Stats.StreakCount >= 7 },
		},
		{
			Key: "month_streak", Category: CategoryStreak, Title: "Monthly Master",
			XPReward: 150, CoinReward: 60,
			Predicate: func(c EvalContext) bool { return c.Stats.StreakCount >= 30 },
		},
		{
			Key: "century_streak", Category: CategoryStreak, Title: "Century Club",
			XPReward: 400, CoinReward: 150,
			Predicate: func(c EvalContext) bool { return c.Stats.StreakCount >= 100 },
		},
		{
			Key: "year_streak", Category: CategoryStreak, Title: "Around the Sun",
			XPReward: 1000, CoinReward: 500,
			Predicate: func(c EvalContext) bool { return c.Stats.StreakCount >= 365 },
		},
		{
			Key: "steady_week", Category: CategoryStreak, Title: "Steady Week",
			XPReward: 60, CoinReward: 20,
			Predicate: func(c EvalContext) bool { return c.Stats.ConsecutiveDays >= 7 },
		},
		{
			Key: "level_5", Category: CategoryLevel, Title: "Getting Serious",
			XPReward: 50, CoinReward: 25,
			Predicate: func(c EvalContext) bool { return c.Stats.Level >= 5 },
		},
		{
			Key: "level_10", Category: CategoryLevel, Title: "Double Digits",
			XPReward: 100, CoinReward: 50,
			Predicate: func(c EvalContext) bool { return c.Stats.Level >= 10 },
		},
		{
			Key: "level_25", Category: CategoryLevel, Title: "Quarter Century",
			XPReward: 250, CoinReward: 100,
			Predicate: func(c EvalContext) bool { return c.Stats.Level >= 25 },
		},
		{
			Key: "level_50", Category: CategoryLevel, Title: "Halfway to Glory",
			XPReward: 500, CoinReward: 250,
			Predicate: func(c EvalContext) bool { return c.Stats.Level >= 50 },
		},
		{
			Key: "social_circle", Category: CategorySocial, Title: "Social Circle",
			XPReward: 75, CoinReward: 30,
			Predicate: func(c EvalContext) bool { return c.Stats.FriendCount >= 5 },
		},
		{
			Key: "early_bird", Category: CategoryTime, Title: "Early Bird",
			XPReward: 40, CoinReward: 15,
			Predicate: func(c EvalContext) bool {
				return !c.CompletedAt.IsZero() && c.CompletedAt.Hour() < 6
			},
		},
		{
			Key: "night_owl", Category: CategoryTime, Title: "Night Owl",
			XPReward: 40, CoinReward: 15,
			Predicate: func(c EvalContext) bool {
				return !c.CompletedAt.IsZero() && c.CompletedAt.Hour() >= 22
			},
		},
	}
}
