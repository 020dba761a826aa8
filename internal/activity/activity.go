// Package activity is the fire-and-forget sink for social feed events. The
// reward engine publishes through the Logger port; failures are logged by the
// caller and never abort the completion path.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Logger interface {
	HabitCompleted(ctx context.Context, userID, habitID uuid.UUID, streakCount int) error
	LevelUp(ctx context.Context, userID uuid.UUID, oldLevel, newLevel int) error
	AchievementUnlocked(ctx context.Context, userID uuid.UUID, key string) error
}

// SlogLogger writes feed events to the process logger. It stands in for the
// real social-feed collaborator.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) HabitCompleted(ctx context.Context, userID, habitID uuid.UUID, streakCount int) error {
	l.logger.InfoContext(ctx, "activity: habit completed",
		slog.String("uid", userID.String()),
		slog.String("habit_id", habitID.String()),
		slog.Int("streak", streakCount),
	)
	return nil
}

func (l *SlogLogger) LevelUp(ctx context.Context, userID uuid.UUID, oldLevel, newLevel int) error {
	l.logger.InfoContext(ctx, "activity: level up",
		slog.String("uid", userID.String()),
		slog.Int("old_level", oldLevel),
		slog.Int("new_level", newLevel),
	)
	return nil
}

func (l *SlogLogger) AchievementUnlocked(ctx context.Context, userID uuid.UUID, key string) error {
	l.logger.InfoContext(ctx, "activity: achievement unlocked",
		slog.String("uid", userID.String()),
		slog.String("achievement", key),
	)
	return nil
}
