package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/pkg/entity"
	"github.com/lumixed/habitflow/pkg/httputil"
)

type CompletionRequest struct {
	Date string `json:"date"`
}

type GetCompletionsResponse struct {
	HabitID     string   `json:"habit_id"`
	Completions []string `json:"completions"`
}

type LeaderboardResponse struct {
	Limit   int                       `json:"limit"`
	Entries []entity.LeaderboardEntry `json:"entries"`
}

const dateLayout = "2006-01-02"

// completionDate parses the optional date field, defaulting to today.
func completionDate(req *CompletionRequest) (time.Time, error) {
	if req.Date == "" {
		return time.Now(), nil
	}
	return time.Parse(dateLayout, req.Date)
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req CompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("complete habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := completionDate(&req)
	if err != nil {
		logger.Error("complete habit error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reward, err := s.rewardService.CompleteHabit(ctx, habitID, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("complete habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionExists):
			logger.Error("complete habit error: already completed this day")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit already completed for this day", nil)
		case errors.Is(err, errorvalues.ErrCompletionDateFuture):
			logger.Error("complete habit error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "completion date is in the future", nil)
		default:
			logger.Error("complete habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, reward)
	logger.Info("habit completed", slog.Int("xp", reward.XP), slog.Int("streak", reward.StreakCount))
}

func (s *Server) UncompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("uncomplete habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("uncomplete habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req CompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("uncomplete habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := completionDate(&req)
	if err != nil {
		logger.Error("uncomplete habit error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.rewardService.UncompleteHabit(ctx, habitID, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("uncomplete habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCompletionNotFound):
			logger.Error("uncomplete habit error: no completion for day")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no completion recorded for this day", nil)
		default:
			logger.Error("uncomplete habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while removing completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.MessageResponse{Message: "completion removed"})
	logger.Info("habit uncompleted")
}

func (s *Server) FreezeStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("freeze streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("freeze streak error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.rewardService.FreezeStreak(ctx, habitID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("freeze streak error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStreakNotFound):
			logger.Error("freeze streak error: no active streak")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active streak to protect", nil)
		case errors.Is(err, errorvalues.ErrNoFreezesLeft):
			logger.Error("freeze streak error: no freezes left")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no streak freezes left", nil)
		default:
			logger.Error("freeze streak error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while freezing streak", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, httputil.MessageResponse{Message: "streak frozen"})
	logger.Info("streak frozen")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get streak error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.rewardService.GetStreak(ctx, habitID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get streak error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get streak error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
	logger.Info("streak provided")
}

func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get completions error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	from, err := time.Parse(dateLayout, r.URL.Query().Get("from"))
	if err != nil {
		from = time.Now().AddDate(0, -1, 0)
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if err != nil {
		to = time.Now()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completions, err := s.rewardService.GetCompletions(ctx, habitID, uid, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get completions error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get completions error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting completions", nil)
		}
		return
	}
	days := make([]string, 0, len(completions))
	for _, c := range completions {
		days = append(days, c.CompletedOn.Format(dateLayout))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		HabitID:     habitID.String(),
		Completions: days,
	})
	logger.Info("completions provided")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.rewardService.GetStats(ctx, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("get stats error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("get stats error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.rewardService.GetLeaderboard(ctx, limit)
	if err != nil {
		logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LeaderboardResponse{
		Limit:   limit,
		Entries: entries,
	})
	logger.Info("leaderboard provided")
}
