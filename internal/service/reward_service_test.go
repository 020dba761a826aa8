package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/internal/repository/mocks"
	"github.com/lumixed/habitflow/internal/service"
	"github.com/lumixed/habitflow/pkg/entity"
	"github.com/stretchr/testify/assert"
)

// Fixed clock for reward tests: noon keeps the time-of-day achievements quiet.
var (
	testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	testDay = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

type rewardMocks struct {
	users       *mocks.MockUsersRepositoryI
	habits      *mocks.MockHabitsRepositoryI
	completions *mocks.MockCompletionsRepositoryI
	gam         *mocks.MockGamificationRepositoryI
	tx          *mocks.MockGamificationTxI
}

func newRewardFixture(t *testing.T) (*service.RewardService, *rewardMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := &rewardMocks{
		users:       mocks.NewMockUsersRepositoryI(ctrl),
		habits:      mocks.NewMockHabitsRepositoryI(ctrl),
		completions: mocks.NewMockCompletionsRepositoryI(ctrl),
		gam:         mocks.NewMockGamificationRepositoryI(ctrl),
		tx:          mocks.NewMockGamificationTxI(ctrl),
	}
	restore := service.SetTimeNow(func() time.Time { return testNow })
	t.Cleanup(restore)
	rs := service.NewRewardService(m.users, m.habits, m.completions, m.gam, nil, nil)
	return rs, m
}

// expectOwnedHabit wires the ownership check to succeed.
func (m *rewardMocks) expectOwnedHabit(ctx context.Context) {
	m.habits.EXPECT().GetByID(ctx, habitID).Return(&testHabit, nil)
}

// expectNoNewAchievements reports every catalog entry as already unlocked, so
// no predicate fires. Specific keys can be overridden before calling this.
func (m *rewardMocks) expectNoNewAchievements(ctx context.Context) {
	m.tx.EXPECT().IsAchievementUnlocked(ctx, userID, gomock.Any()).Return(true, nil).AnyTimes()
}

func TestCompleteHabitFirstTime(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(nil, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 1, s.CurrentCount)
			assert.Equal(t, 1, s.LongestCount)
			if assert.NotNil(t, s.LastCompleted) {
				assert.Equal(t, testDay, *s.LastCompleted)
			}
			return nil
		})
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 0, Level: 1, Coins: 0}, nil)
	m.tx.EXPECT().CountUserCompletions(ctx, userID).Return(1, nil)
	m.tx.EXPECT().MaxCurrentStreak(ctx, userID).Return(1, nil)
	m.tx.EXPECT().IsAchievementUnlocked(ctx, userID, "first_step").Return(false, nil)
	m.expectNoNewAchievements(ctx)
	m.tx.EXPECT().UnlockAchievement(ctx, userID, "first_step", testNow).Return(nil)
	// base 50 XP / 10 coins plus the first_step bonus (25 XP / 10 coins)
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 75, 1, 20).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	result, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 75, result.XP)
	assert.Equal(t, 20, result.Coins)
	assert.Equal(t, 1, result.StreakCount)
	assert.Nil(t, result.LevelUp)
	assert.Nil(t, result.StreakMilestone)
	if assert.Equal(t, 1, len(result.NewAchievements)) {
		assert.Equal(t, "first_step", result.NewAchievements[0].Key)
		assert.Equal(t, testNow, result.NewAchievements[0].UnlockedAt)
	}
}

func TestCompleteHabitConsecutiveDayHitsMilestone(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	yesterday := testDay.AddDate(0, 0, -1)
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  6,
		LongestCount:  6,
		LastCompleted: &yesterday,
	}, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 7, s.CurrentCount)
			assert.Equal(t, 7, s.LongestCount)
			return nil
		})
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 100, Level: 2, Coins: 0}, nil)
	m.tx.EXPECT().CountUserCompletions(ctx, userID).Return(7, nil)
	m.tx.EXPECT().MaxCurrentStreak(ctx, userID).Return(7, nil)
	m.expectNoNewAchievements(ctx)
	// streak 7: multiplier 1.17 gives 58 XP and 11 coins
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 158, 2, 11).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	result, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 58, result.XP)
	assert.Equal(t, 11, result.Coins)
	assert.Equal(t, 7, result.StreakCount)
	if assert.NotNil(t, result.StreakMilestone) {
		assert.Equal(t, 7, *result.StreakMilestone)
	}
}

func TestCompleteHabitAfterGapRestartsStreak(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	staleDay := testDay.AddDate(0, 0, -3)
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  5,
		LongestCount:  9,
		LastCompleted: &staleDay,
	}, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 1, s.CurrentCount)
			assert.Equal(t, 9, s.LongestCount)
			return nil
		})
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 500, Level: 3, Coins: 120}, nil)
	m.tx.EXPECT().CountUserCompletions(ctx, userID).Return(20, nil)
	m.tx.EXPECT().MaxCurrentStreak(ctx, userID).Return(1, nil)
	m.expectNoNewAchievements(ctx)
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 550, 3, 130).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	result, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.StreakCount)
	assert.Equal(t, 50, result.XP)
	assert.Nil(t, result.StreakMilestone)
}

func TestCompleteHabitLevelUp(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(nil, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).Return(nil)
	// 95 XP is one short of nothing: +50 pushes past the 100 XP threshold
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 95, Level: 1, Coins: 0}, nil)
	m.tx.EXPECT().CountUserCompletions(ctx, userID).Return(3, nil)
	m.tx.EXPECT().MaxCurrentStreak(ctx, userID).Return(1, nil)
	m.expectNoNewAchievements(ctx)
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 145, 2, 10).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	result, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
	if assert.NotNil(t, result.LevelUp) {
		assert.Equal(t, 1, result.LevelUp.OldLevel)
		assert.Equal(t, 2, result.LevelUp.NewLevel)
	}
}

func TestCompleteHabitDuplicateDay(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(errorvalues.ErrCompletionExists)

	_, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.ErrorIs(t, err, errorvalues.ErrCompletionExists)
}

func TestCompleteHabitFutureDate(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)

	_, err := rs.CompleteHabit(ctx, habitID, userID, testNow.AddDate(0, 0, 2))
	assert.ErrorIs(t, err, errorvalues.ErrCompletionDateFuture)
}

func TestCompleteHabitWrongOwner(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.habits.EXPECT().GetByID(ctx, habitID).Return(&entity.Habit{
		ID:     habitID,
		UserID: uuid.New(),
	}, nil)

	_, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
}

func TestCompleteHabitRewardFailureRemovesCompletion(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(nil, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).Return(errors.New("db error"))
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()
	// the compensating delete keeps the completion log consistent with totals
	m.completions.EXPECT().Delete(ctx, habitID, testDay).Return(nil)

	_, err := rs.CompleteHabit(ctx, habitID, userID, testNow)
	assert.Error(t, err)
}

func TestUncompleteHabit(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	yesterday := testDay.AddDate(0, 0, -1)
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Delete(ctx, habitID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  3,
		LongestCount:  5,
		LastCompleted: &testDay,
	}, nil)
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 200, Level: 2, Coins: 50}, nil)
	// streak 3: multiplier 1.03 gives back 51 XP and 10 coins
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 149, 2, 40).Return(nil)
	m.completions.EXPECT().GetLastBefore(ctx, habitID, testDay).Return(&yesterday, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 2, s.CurrentCount)
			if assert.NotNil(t, s.LastCompleted) {
				assert.Equal(t, yesterday, *s.LastCompleted)
			}
			return nil
		})
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.UncompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
}

func TestUncompleteHabitFloorsTotalsAtZero(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Delete(ctx, habitID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  1,
		LongestCount:  1,
		LastCompleted: &testDay,
	}, nil)
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 20, Level: 1, Coins: 5}, nil)
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 0, 1, 0).Return(nil)
	m.completions.EXPECT().GetLastBefore(ctx, habitID, testDay).Return(nil, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 0, s.CurrentCount)
			assert.Nil(t, s.LastCompleted)
			return nil
		})
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.UncompleteHabit(ctx, habitID, userID, testNow)
	assert.NoError(t, err)
}

// Removing a day that is not the latest completion: the count still drops by
// one and last_completed becomes the latest day before the removed one, even
// though a later completion survives. Known approximation of the delete path.
func TestUncompleteHabitNotLatestDay(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	day1 := testDay.AddDate(0, 0, -1)
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Delete(ctx, habitID, day1).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  2,
		LongestCount:  2,
		LastCompleted: &testDay,
	}, nil)
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 100, Level: 2, Coins: 30}, nil)
	// streak 2: multiplier 1.02 gives back 51 XP and 10 coins, dropping below level 2
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 49, 1, 20).Return(nil)
	m.completions.EXPECT().GetLastBefore(ctx, habitID, day1).Return(nil, nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 1, s.CurrentCount)
			assert.Nil(t, s.LastCompleted)
			return nil
		})
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.UncompleteHabit(ctx, habitID, userID, day1)
	assert.NoError(t, err)
}

func TestUncompleteHabitNotRecorded(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Delete(ctx, habitID, testDay).Return(errorvalues.ErrCompletionNotFound)

	err := rs.UncompleteHabit(ctx, habitID, userID, testNow)
	assert.ErrorIs(t, err, errorvalues.ErrCompletionNotFound)
}

func TestUncompleteHabitRevertFailureRestoresCompletion(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.completions.EXPECT().Delete(ctx, habitID, testDay).Return(nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  3,
		LongestCount:  5,
		LastCompleted: &testDay,
	}, nil)
	m.tx.EXPECT().GetUserForUpdate(ctx, userID).Return(&entity.User{ID: userID, XP: 200, Level: 2, Coins: 50}, nil)
	m.tx.EXPECT().UpdateUserTotals(ctx, userID, 149, 2, 40).Return(errors.New("db down"))
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()
	m.completions.EXPECT().Create(ctx, habitID, userID, testDay).Return(nil)

	err := rs.UncompleteHabit(ctx, habitID, userID, testNow)
	assert.Error(t, err)
}

func TestFreezeStreak(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	stale := testDay.AddDate(0, 0, -2)
	m.expectOwnedHabit(ctx)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  4,
		LongestCount:  8,
		LastCompleted: &stale,
	}, nil)
	m.tx.EXPECT().SpendStreakFreeze(ctx, userID).Return(nil)
	m.tx.EXPECT().SaveStreak(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entity.Streak) error {
			assert.Equal(t, 4, s.CurrentCount)
			if assert.NotNil(t, s.LastCompleted) {
				assert.Equal(t, testDay, *s.LastCompleted)
			}
			return nil
		})
	m.tx.EXPECT().Commit(ctx).Return(nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.FreezeStreak(ctx, habitID, userID)
	assert.NoError(t, err)
}

func TestFreezeStreakWithoutStreak(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(nil, nil)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.FreezeStreak(ctx, habitID, userID)
	assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
}

func TestFreezeStreakWithEmptyBalance(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	stale := testDay.AddDate(0, 0, -2)
	m.expectOwnedHabit(ctx)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil)
	m.tx.EXPECT().GetStreakForUpdate(ctx, habitID).Return(&entity.Streak{
		HabitID:       habitID,
		UserID:        userID,
		CurrentCount:  4,
		LastCompleted: &stale,
	}, nil)
	m.tx.EXPECT().SpendStreakFreeze(ctx, userID).Return(errorvalues.ErrNoFreezesLeft)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.FreezeStreak(ctx, habitID, userID)
	assert.ErrorIs(t, err, errorvalues.ErrNoFreezesLeft)
}

func TestResetBrokenStreaks(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	yesterday := testDay.AddDate(0, 0, -1)
	stale := testDay.AddDate(0, 0, -4)
	first := uuid.New()
	second := uuid.New()
	m.gam.EXPECT().ListStaleStreaks(ctx, yesterday).Return([]entity.Streak{
		{HabitID: first, UserID: userID, CurrentCount: 3, LastCompleted: &stale},
		{HabitID: second, UserID: uuid.New(), CurrentCount: 12, LastCompleted: &stale},
	}, nil)
	m.gam.EXPECT().Begin(ctx).Return(m.tx, nil).Times(2)
	m.tx.EXPECT().ResetStreak(ctx, first, yesterday).Return(nil)
	m.tx.EXPECT().ResetStreak(ctx, second, yesterday).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil).Times(2)
	m.tx.EXPECT().Rollback(ctx).Return(nil).AnyTimes()

	err := rs.ResetBrokenStreaks(ctx)
	assert.NoError(t, err)
}

func TestGetStreakWithoutRow(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.expectOwnedHabit(ctx)
	m.gam.EXPECT().GetStreak(ctx, habitID).Return(nil, errorvalues.ErrStreakNotFound)

	streak, err := rs.GetStreak(ctx, habitID, userID)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentCount)
	assert.Equal(t, habitID, streak.HabitID)
}

func TestGetStats(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	unlockedAt := testNow.AddDate(0, 0, -5)
	m.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:            userID,
		Name:          "test_user",
		XP:            150,
		Level:         2,
		Coins:         30,
		StreakFreezes: 1,
	}, nil)
	m.gam.EXPECT().ListAchievements(ctx, userID).Return([]entity.AchievementSummary{
		{Key: "first_step", UnlockedAt: unlockedAt},
	}, nil)
	m.gam.EXPECT().ListStreaks(ctx, userID).Return([]entity.Streak{
		{HabitID: habitID, UserID: userID, CurrentCount: 3, LongestCount: 5},
	}, nil)

	stats, err := rs.GetStats(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 150, stats.XP)
	assert.Equal(t, 2, stats.Progress.Level)
	if assert.Equal(t, 1, len(stats.Achievements)) {
		assert.Equal(t, "First Step", stats.Achievements[0].Title)
		assert.Equal(t, 25, stats.Achievements[0].XPReward)
		assert.Equal(t, unlockedAt, stats.Achievements[0].UnlockedAt)
	}
	assert.Equal(t, 1, len(stats.Streaks))
}

func TestGetStatsUnknownUser(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	m.users.EXPECT().FindByID(ctx, userID).Return(nil, errorvalues.ErrUserNotFound)

	_, err := rs.GetStats(ctx, userID)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestGetLeaderboard(t *testing.T) {
	rs, m := newRewardFixture(t)
	ctx := context.Background()
	entries := []entity.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), Name: "alice", XP: 900, Level: 5},
	}
	m.gam.EXPECT().Leaderboard(ctx, 10).Return(entries, nil)

	result, err := rs.GetLeaderboard(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, entries, result)
}
