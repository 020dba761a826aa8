package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lumixed/habitflow/internal/api"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/internal/service/mocks"
	"github.com/lumixed/habitflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRewardServer(t *testing.T) (*api.Server, *mocks.MockRewardServiceI) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRewardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RewardService: rService,
	})
	return serv, rService
}

func authorizedRequest(method, target string, habitID uuid.UUID, body []byte) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
	if habitID != uuid.Nil {
		r.SetPathValue("id", habitID.String())
	}
	return r
}

func TestCompleteHabit(t *testing.T) {
	serv, rService := newRewardServer(t)
	habitID := uuid.New()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	body, err := sonic.ConfigDefault.Marshal(api.CompletionRequest{Date: "2025-06-10"})
	require.NoError(t, err)

	t.Run("completed", func(t *testing.T) {
		milestone := 7
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(&entity.CompletionReward{
			XP:              58,
			Coins:           11,
			StreakCount:     7,
			StreakMilestone: &milestone,
			NewAchievements: []entity.AchievementSummary{},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		var reward entity.CompletionReward
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&reward)
		require.NoError(t, err)
		assert.Equal(t, 58, reward.XP)
		assert.Equal(t, 7, reward.StreakCount)
		require.NotNil(t, reward.StreakMilestone)
		assert.Equal(t, 7, *reward.StreakMilestone)
	})
	t.Run("empty date defaults to today", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, gomock.Any()).Return(&entity.CompletionReward{
			XP:          50,
			Coins:       10,
			StreakCount: 1,
		}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, []byte("{}"))
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("habit not found", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(nil, errorvalues.ErrHabitNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("foreign habit looks missing", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("already completed", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(nil, errorvalues.ErrCompletionExists)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("future date", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(nil, errorvalues.ErrCompletionDateFuture)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("malformed date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, []byte(`{"date":"10-06-2025"}`))
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid habit id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/not-a-uuid/complete", uuid.Nil, body)
		r.SetPathValue("id", "not-a-uuid")
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("corrupted body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, []byte("corrupted"))
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rService.EXPECT().CompleteHabit(gomock.Any(), habitID, userID, day).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.CompleteHabit(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestUncompleteHabit(t *testing.T) {
	serv, rService := newRewardServer(t)
	habitID := uuid.New()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	body, err := sonic.ConfigDefault.Marshal(api.CompletionRequest{Date: "2025-06-10"})
	require.NoError(t, err)

	t.Run("removed", func(t *testing.T) {
		rService.EXPECT().UncompleteHabit(gomock.Any(), habitID, userID, day).Return(nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodDelete, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.UncompleteHabit(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("no completion for day", func(t *testing.T) {
		rService.EXPECT().UncompleteHabit(gomock.Any(), habitID, userID, day).Return(errorvalues.ErrCompletionNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodDelete, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.UncompleteHabit(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("habit not found", func(t *testing.T) {
		rService.EXPECT().UncompleteHabit(gomock.Any(), habitID, userID, day).Return(errorvalues.ErrHabitNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodDelete, "/api/v1/habits/"+habitID.String()+"/complete", habitID, body)
		serv.UncompleteHabit(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestFreezeStreak(t *testing.T) {
	serv, rService := newRewardServer(t)
	habitID := uuid.New()

	t.Run("frozen", func(t *testing.T) {
		rService.EXPECT().FreezeStreak(gomock.Any(), habitID, userID).Return(nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/freeze", habitID, nil)
		serv.FreezeStreak(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("no active streak", func(t *testing.T) {
		rService.EXPECT().FreezeStreak(gomock.Any(), habitID, userID).Return(errorvalues.ErrStreakNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/freeze", habitID, nil)
		serv.FreezeStreak(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("no freezes left", func(t *testing.T) {
		rService.EXPECT().FreezeStreak(gomock.Any(), habitID, userID).Return(errorvalues.ErrNoFreezesLeft)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/freeze", habitID, nil)
		serv.FreezeStreak(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("habit not found", func(t *testing.T) {
		rService.EXPECT().FreezeStreak(gomock.Any(), habitID, userID).Return(errorvalues.ErrHabitNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/freeze", habitID, nil)
		serv.FreezeStreak(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetStreak(t *testing.T) {
	serv, rService := newRewardServer(t)
	habitID := uuid.New()

	t.Run("streak provided", func(t *testing.T) {
		last := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		rService.EXPECT().GetStreak(gomock.Any(), habitID, userID).Return(&entity.Streak{
			HabitID:       habitID,
			UserID:        userID,
			CurrentCount:  5,
			LongestCount:  9,
			LastCompleted: &last,
		}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/streak", habitID, nil)
		serv.GetStreak(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var streak entity.Streak
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&streak)
		require.NoError(t, err)
		assert.Equal(t, 5, streak.CurrentCount)
		assert.Equal(t, 9, streak.LongestCount)
	})
	t.Run("habit not found", func(t *testing.T) {
		rService.EXPECT().GetStreak(gomock.Any(), habitID, userID).Return(nil, errorvalues.ErrHabitNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/streak", habitID, nil)
		serv.GetStreak(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetCompletions(t *testing.T) {
	serv, rService := newRewardServer(t)
	habitID := uuid.New()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("explicit range", func(t *testing.T) {
		rService.EXPECT().GetCompletions(gomock.Any(), habitID, userID, from, to).Return([]entity.Completion{
			{HabitID: habitID, UserID: userID, CompletedOn: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
			{HabitID: habitID, UserID: userID, CompletedOn: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/completions?from=2025-06-01&to=2025-06-10", habitID, nil)
		serv.GetCompletions(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetCompletionsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, habitID.String(), resp.HabitID)
		assert.Equal(t, []string{"2025-06-03", "2025-06-04"}, resp.Completions)
	})
	t.Run("default range is last month", func(t *testing.T) {
		rService.EXPECT().GetCompletions(gomock.Any(), habitID, userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, from, to time.Time) ([]entity.Completion, error) {
				assert.WithinDuration(t, time.Now().AddDate(0, -1, 0), from, time.Minute)
				assert.WithinDuration(t, time.Now(), to, time.Minute)
				return []entity.Completion{}, nil
			})
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/completions", habitID, nil)
		serv.GetCompletions(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("habit not found", func(t *testing.T) {
		rService.EXPECT().GetCompletions(gomock.Any(), habitID, userID, from, to).Return(nil, errorvalues.ErrHabitNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/completions?from=2025-06-01&to=2025-06-10", habitID, nil)
		serv.GetCompletions(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetStats(t *testing.T) {
	serv, rService := newRewardServer(t)

	t.Run("stats provided", func(t *testing.T) {
		rService.EXPECT().GetStats(gomock.Any(), userID).Return(&entity.GamificationStats{
			UserID: userID,
			XP:     150,
			Coins:  40,
			Progress: entity.LevelProgress{
				Level:    2,
				XPInto:   50,
				XPNeeded: 155,
				Percent:  32,
			},
		}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/me/stats", uuid.Nil, nil)
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.GamificationStats
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats)
		require.NoError(t, err)
		assert.Equal(t, 150, stats.XP)
		assert.Equal(t, 2, stats.Progress.Level)
	})
	t.Run("user not found", func(t *testing.T) {
		rService.EXPECT().GetStats(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/me/stats", uuid.Nil, nil)
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("no authorization", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/me/stats", nil)
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetLeaderboard(t *testing.T) {
	serv, rService := newRewardServer(t)
	entries := []entity.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), Name: "first", XP: 500, Level: 4},
		{Rank: 2, UserID: uuid.New(), Name: "second", XP: 300, Level: 3},
	}

	t.Run("explicit limit", func(t *testing.T) {
		rService.EXPECT().GetLeaderboard(gomock.Any(), 5).Return(entries, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=5", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.LeaderboardResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Limit)
		assert.Len(t, resp.Entries, 2)
		assert.Equal(t, "first", resp.Entries[0].Name)
	})
	t.Run("missing limit falls back to default", func(t *testing.T) {
		rService.EXPECT().GetLeaderboard(gomock.Any(), 10).Return(entries, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("oversized limit falls back to default", func(t *testing.T) {
		rService.EXPECT().GetLeaderboard(gomock.Any(), 10).Return(entries, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=500", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rService.EXPECT().GetLeaderboard(gomock.Any(), 10).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		serv.GetLeaderboard(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
