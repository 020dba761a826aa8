package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lumixed/habitflow/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"max=2000"`
	Difficulty  string `validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Cadence     string `validate:"omitempty,oneof=DAILY WEEKDAYS WEEKLY"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	// Validates and creates a habit owned by uid
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	// Lists user's active habits with pagination
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

// RewardServiceI is the completion orchestrator: the single entry point that
// turns a completion or its removal into streak, XP, coin, level and
// achievement changes.
type RewardServiceI interface {
	// Records completion of a habit on a calendar day and grants its reward
	CompleteHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.CompletionReward, error)
	// Removes completion of a habit on a calendar day and takes back an
	// approximation of the granted reward
	UncompleteHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
	// Spends one streak freeze to protect the habit's streak from the sweep
	FreezeStreak(ctx context.Context, habitID, userID uuid.UUID) error
	// Zeroes every streak whose last completion is older than yesterday
	ResetBrokenStreaks(ctx context.Context) error
	// Lists completions of a habit for a period
	GetCompletions(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.Completion, error)
	GetStreak(ctx context.Context, habitID, userID uuid.UUID) (*entity.Streak, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.GamificationStats, error)
	GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// FriendCountProviderI is the read surface of the social collaborator. The
// engine only needs the number for achievement predicates.
type FriendCountProviderI interface {
	FriendCount(ctx context.Context, uid uuid.UUID) (int, error)
}

// NoFriends is the default provider when the social module is not wired.
type NoFriends struct{}

func (NoFriends) FriendCount(ctx context.Context, uid uuid.UUID) (int, error) {
	return 0, nil
}
