package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lumixed/habitflow/internal/activity"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/internal/gamify"
	"github.com/lumixed/habitflow/internal/repository"
	"github.com/lumixed/habitflow/pkg/entity"
)

// timeNow is a seam for tests.
var timeNow = time.Now

// RewardService sequences the reward engine for one completion event: streak
// transition, reward calculation, level-up detection and achievement unlocks,
// committed as one transaction. All operations for a given (user, habit) key
// are serialized through a keyed mutex, the daily sweep included.
type RewardService struct {
	usersRepo        repository.UsersRepositoryI
	habitsRepo       repository.HabitsRepositoryI
	completionsRepo  repository.CompletionsRepositoryI
	gamificationRepo repository.GamificationRepositoryI
	activityLog      activity.Logger
	friends          FriendCountProviderI
	catalog          []gamify.AchievementDef
	locks            keyedMutex
}

func NewRewardService(
	usersRepo repository.UsersRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	gamificationRepo repository.GamificationRepositoryI,
	activityLog activity.Logger,
	friends FriendCountProviderI,
) *RewardService {
	if usersRepo == nil || habitsRepo == nil || completionsRepo == nil || gamificationRepo == nil {
		log.Fatal("on reward service provided nil repos")
	}
	if activityLog == nil {
		activityLog = activity.NewSlogLogger(nil)
	}
	if friends == nil {
		friends = NoFriends{}
	}
	return &RewardService{
		usersRepo:        usersRepo,
		habitsRepo:       habitsRepo,
		completionsRepo:  completionsRepo,
		gamificationRepo: gamificationRepo,
		activityLog:      activityLog,
		friends:          friends,
		catalog:          gamify.Catalog(),
	}
}

// dayOf strips a timestamp down to its calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CompleteHabit records a completion and grants its reward. The completion
// row is persisted first so a duplicate day surfaces as a conflict before any
// reward logic; the reward itself (streak, totals, achievements) commits as
// one transaction, and the completion row is removed again if that
// transaction fails.
func (rs *RewardService) CompleteHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.CompletionReward, error) {
	habit, err := rs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	day := dayOf(date)
	if day.After(dayOf(timeNow())) {
		return nil, errorvalues.ErrCompletionDateFuture
	}

	unlock := rs.locks.lock(userID, habitID)
	defer unlock()

	err = rs.completionsRepo.Create(ctx, habitID, userID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionExists) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}

	result, err := rs.applyReward(ctx, habit, userID, day)
	if err != nil {
		// the reward transaction rolled back; take the completion row with it
		if delErr := rs.completionsRepo.Delete(ctx, habitID, day); delErr != nil {
			slog.Error("compensating completion delete failed",
				slog.String("habit_id", habitID.String()), slog.String("error", delErr.Error()))
		}
		return nil, err
	}

	rs.publishActivity(ctx, userID, habitID, result)
	return result, nil
}

func (rs *RewardService) applyReward(ctx context.Context, habit *entity.Habit, userID uuid.UUID, day time.Time) (*entity.CompletionReward, error) {
	tx, err := rs.gamificationRepo.Begin(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	streak, err := tx.GetStreakForUpdate(ctx, habit.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if streak == nil {
		streak = &entity.Streak{HabitID: habit.ID, UserID: userID}
	}
	oldCount := streak.CurrentCount
	if streak.LastCompleted != nil && dayOf(*streak.LastCompleted).AddDate(0, 0, 1).Equal(day) {
		streak.CurrentCount++
	} else {
		streak.CurrentCount = 1
	}
	if streak.CurrentCount > streak.LongestCount {
		streak.LongestCount = streak.CurrentCount
	}
	streak.LastCompleted = &day
	if err = tx.SaveStreak(ctx, streak); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	reward := gamify.CalculateReward(streak.CurrentCount, habit.Difficulty)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	leveledUp, oldLevel, newLevel := gamify.CheckLevelUp(user.XP, user.XP+reward.TotalXP)

	snapshot, err := rs.buildSnapshot(ctx, tx, userID, streak.CurrentCount, newLevel)
	if err != nil {
		return nil, err
	}
	unlockedNow := timeNow()
	evalCtx := gamify.EvalContext{Stats: snapshot, CompletedAt: unlockedNow}
	newAchievements := make([]entity.AchievementSummary, 0)
	achXP, achCoins := 0, 0
	for _, def := range rs.catalog {
		unlocked, err := tx.IsAchievementUnlocked(ctx, userID, def.Key)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if unlocked || !def.Predicate(evalCtx) {
			continue
		}
		if err = tx.UnlockAchievement(ctx, userID, def.Key, unlockedNow); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		summary := def.Summary()
		summary.UnlockedAt = unlockedNow
		newAchievements = append(newAchievements, summary)
		achXP += def.XPReward
		achCoins += def.CoinReward
	}

	newXP := user.XP + reward.TotalXP + achXP
	newCoins := user.Coins + reward.Coins + achCoins
	if err = tx.UpdateUserTotals(ctx, userID, newXP, gamify.LevelFromXP(newXP), newCoins); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	result := &entity.CompletionReward{
		XP:              reward.TotalXP + achXP,
		Coins:           reward.Coins + achCoins,
		NewAchievements: newAchievements,
		StreakCount:     streak.CurrentCount,
	}
	if leveledUp {
		result.LevelUp = &entity.LevelUp{OldLevel: oldLevel, NewLevel: newLevel}
	}
	if milestone, crossed := gamify.CrossedMilestone(oldCount, streak.CurrentCount); crossed {
		result.StreakMilestone = &milestone
	}
	return result, nil
}

func (rs *RewardService) buildSnapshot(ctx context.Context, tx repository.GamificationTxI, userID uuid.UUID, streakCount, level int) (entity.StatsSnapshot, error) {
	totalCompletions, err := tx.CountUserCompletions(ctx, userID)
	if err != nil {
		return entity.StatsSnapshot{}, errors.New("repository error: " + err.Error())
	}
	consecutive, err := tx.MaxCurrentStreak(ctx, userID)
	if err != nil {
		return entity.StatsSnapshot{}, errors.New("repository error: " + err.Error())
	}
	if streakCount > consecutive {
		consecutive = streakCount
	}
	// the social module is best-effort; a failed lookup must not block the reward
	friendCount, err := rs.friends.FriendCount(ctx, userID)
	if err != nil {
		slog.Warn("friend count lookup failed", slog.String("error", err.Error()))
		friendCount = 0
	}
	return entity.StatsSnapshot{
		StreakCount:      streakCount,
		TotalCompletions: totalCompletions,
		Level:            level,
		FriendCount:      friendCount,
		ConsecutiveDays:  consecutive,
	}, nil
}

func (rs *RewardService) publishActivity(ctx context.Context, userID, habitID uuid.UUID, result *entity.CompletionReward) {
	if err := rs.activityLog.HabitCompleted(ctx, userID, habitID, result.StreakCount); err != nil {
		slog.Warn("activity publish failed", slog.String("event", "habit_completed"), slog.String("error", err.Error()))
	}
	if result.LevelUp != nil {
		if err := rs.activityLog.LevelUp(ctx, userID, result.LevelUp.OldLevel, result.LevelUp.NewLevel); err != nil {
			slog.Warn("activity publish failed", slog.String("event", "level_up"), slog.String("error", err.Error()))
		}
	}
	for _, ach := range result.NewAchievements {
		if err := rs.activityLog.AchievementUnlocked(ctx, userID, ach.Key); err != nil {
			slog.Warn("activity publish failed", slog.String("event", "achievement_unlocked"), slog.String("error", err.Error()))
		}
	}
}

// UncompleteHabit removes a completion and subtracts the reward the current
// streak count would have earned, floored at zero. This is a documented
// approximation: achievement rewards are never taken back, and if later
// completions changed the streak the subtracted amount differs from the
// original grant. The completion row goes first and is re-inserted if the
// reward transaction fails, mirroring the create path.
func (rs *RewardService) UncompleteHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	habit, err := rs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	day := dayOf(date)

	unlock := rs.locks.lock(userID, habitID)
	defer unlock()

	err = rs.completionsRepo.Delete(ctx, habitID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}

	if err := rs.revertReward(ctx, habit, userID, day); err != nil {
		// the reward transaction rolled back; put the completion row back
		if insErr := rs.completionsRepo.Create(ctx, habitID, userID, day); insErr != nil {
			slog.Error("compensating completion insert failed",
				slog.String("habit_id", habitID.String()), slog.String("error", insErr.Error()))
		}
		return err
	}
	return nil
}

func (rs *RewardService) revertReward(ctx context.Context, habit *entity.Habit, userID uuid.UUID, day time.Time) error {
	habitID := habit.ID
	tx, err := rs.gamificationRepo.Begin(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	streak, err := tx.GetStreakForUpdate(ctx, habitID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	currentCount := 0
	if streak != nil {
		currentCount = streak.CurrentCount
	}
	reward := gamify.CalculateReward(currentCount, habit.Difficulty)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	newXP := user.XP - reward.TotalXP
	if newXP < 0 {
		newXP = 0
	}
	newCoins := user.Coins - reward.Coins
	if newCoins < 0 {
		newCoins = 0
	}
	if err = tx.UpdateUserTotals(ctx, userID, newXP, gamify.LevelFromXP(newXP), newCoins); err != nil {
		return errors.New("repository error: " + err.Error())
	}

	if streak != nil {
		if streak.CurrentCount > 0 {
			streak.CurrentCount--
		}
		prev, err := rs.completionsRepo.GetLastBefore(ctx, habitID, day)
		if err != nil {
			return errors.New("repository error: " + err.Error())
		}
		streak.LastCompleted = prev
		if err = tx.SaveStreak(ctx, streak); err != nil {
			return errors.New("repository error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// FreezeStreak spends one freeze unit and back-dates the streak's last
// completed day to today, so the next sweep leaves the count alone.
func (rs *RewardService) FreezeStreak(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := rs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}

	unlock := rs.locks.lock(userID, habitID)
	defer unlock()

	tx, err := rs.gamificationRepo.Begin(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	streak, err := tx.GetStreakForUpdate(ctx, habitID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if streak == nil || streak.CurrentCount == 0 {
		return errorvalues.ErrStreakNotFound
	}
	if err = tx.SpendStreakFreeze(ctx, userID); err != nil {
		if errors.Is(err, errorvalues.ErrNoFreezesLeft) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	today := dayOf(timeNow())
	streak.LastCompleted = &today
	if err = tx.SaveStreak(ctx, streak); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// ResetBrokenStreaks zeroes every streak whose last completed day is before
// yesterday. Each reset takes the same per-key lock as live completions and
// re-checks staleness under a row lock, so it cannot race an in-flight
// advance.
func (rs *RewardService) ResetBrokenStreaks(ctx context.Context) error {
	yesterday := dayOf(timeNow()).AddDate(0, 0, -1)
	stale, err := rs.gamificationRepo.ListStaleStreaks(ctx, yesterday)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	for _, s := range stale {
		if err = rs.resetOne(ctx, s, yesterday); err != nil {
			return err
		}
	}
	return nil
}

func (rs *RewardService) resetOne(ctx context.Context, s entity.Streak, staleBefore time.Time) error {
	unlock := rs.locks.lock(s.UserID, s.HabitID)
	defer unlock()

	tx, err := rs.gamificationRepo.Begin(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if err = tx.ResetStreak(ctx, s.HabitID, staleBefore); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (rs *RewardService) GetCompletions(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.Completion, error) {
	_, err := rs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	completions, err := rs.completionsRepo.GetByHabitAndDateRange(ctx, habitID, dayOf(from), dayOf(to))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return completions, nil
}

// GetStreak returns the habit's streak, or a zero streak if none was created
// yet (streak rows appear lazily on first completion).
func (rs *RewardService) GetStreak(ctx context.Context, habitID, userID uuid.UUID) (*entity.Streak, error) {
	_, err := rs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	streak, err := rs.gamificationRepo.GetStreak(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return &entity.Streak{HabitID: habitID, UserID: userID}, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return streak, nil
}

func (rs *RewardService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.GamificationStats, error) {
	user, err := rs.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	unlocked, err := rs.gamificationRepo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	// merge catalog details into the stored (key, unlocked_at) pairs
	defs := make(map[string]gamify.AchievementDef, len(rs.catalog))
	for _, def := range rs.catalog {
		defs[def.Key] = def
	}
	achievements := make([]entity.AchievementSummary, 0, len(unlocked))
	for _, a := range unlocked {
		if def, ok := defs[a.Key]; ok {
			summary := def.Summary()
			summary.UnlockedAt = a.UnlockedAt
			achievements = append(achievements, summary)
		}
	}
	streaks, err := rs.gamificationRepo.ListStreaks(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.GamificationStats{
		UserID:        userID,
		XP:            user.XP,
		Coins:         user.Coins,
		StreakFreezes: user.StreakFreezes,
		Progress:      gamify.Progress(user.XP),
		Achievements:  achievements,
		Streaks:       streaks,
	}, nil
}

func (rs *RewardService) GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	entries, err := rs.gamificationRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

func (rs *RewardService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := rs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}
