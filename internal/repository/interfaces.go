package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lumixed/habitflow/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. In habit only Title, UserID, Description,
	// Difficulty and Cadence are necessary. Returns id of the created row
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Records completion of habit with habitID on a calendar day
	Create(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
	// Removes completion of habit with habitID on a calendar day (un-complete)
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Inspects if completion exists
	Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Provides completions of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Completion, error)
	// Returns the latest completion day strictly before the given day, nil if none
	GetLastBefore(ctx context.Context, habitID uuid.UUID, before time.Time) (*time.Time, error)
	// Returns count of completions for habitID
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
}

// GamificationRepositoryI is the reward engine's storage port. All writes go
// through a GamificationTxI so streak update, reward apply and achievement
// unlock commit as one unit.
type GamificationRepositoryI interface {
	// Opens a transaction scoped to one reward operation
	Begin(ctx context.Context) (GamificationTxI, error)
	// Reads streak of habitID without locking
	GetStreak(ctx context.Context, habitID uuid.UUID) (*entity.Streak, error)
	// Lists all streaks of a user
	ListStreaks(ctx context.Context, uid uuid.UUID) ([]entity.Streak, error)
	// Lists keys and unlock times of user's achievements
	ListAchievements(ctx context.Context, uid uuid.UUID) ([]entity.AchievementSummary, error)
	// Lists streaks whose last completion is before the given day and count > 0
	ListStaleStreaks(ctx context.Context, before time.Time) ([]entity.Streak, error)
	// Top N users by xp
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// GamificationTxI is one open reward transaction. Row locks taken by the
// ForUpdate reads are held until Commit or Rollback.
type GamificationTxI interface {
	// Reads streak of habitID with a row lock, nil if no row yet
	GetStreakForUpdate(ctx context.Context, habitID uuid.UUID) (*entity.Streak, error)
	// Inserts or updates the streak row
	SaveStreak(ctx context.Context, streak *entity.Streak) error
	// Zeroes current_count of a streak unless a completion arrived since the given day
	ResetStreak(ctx context.Context, habitID uuid.UUID, staleBefore time.Time) error
	// Reads user's totals with a row lock
	GetUserForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Persists new totals
	UpdateUserTotals(ctx context.Context, uid uuid.UUID, xp, level, coins int) error
	// Decrements user's freeze balance, ErrNoFreezesLeft on zero balance
	SpendStreakFreeze(ctx context.Context, uid uuid.UUID) error
	// Inspects if achievement key is already unlocked for user
	IsAchievementUnlocked(ctx context.Context, uid uuid.UUID, key string) (bool, error)
	// Records a one-time unlock
	UnlockAchievement(ctx context.Context, uid uuid.UUID, key string, at time.Time) error
	// Counts all completions of a user (stats snapshot input)
	CountUserCompletions(ctx context.Context, uid uuid.UUID) (int, error)
	// Longest running current streak across user's habits (stats snapshot input)
	MaxCurrentStreak(ctx context.Context, uid uuid.UUID) (int, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
