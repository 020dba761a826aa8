package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/pkg/cleanup"
	"github.com/lumixed/habitflow/pkg/entity"
)

// GamificationRepository owns streaks, user totals and achievement unlocks.
// Reward-path writes go through Begin so they commit as one unit.
type GamificationRepository struct {
	conn PgConnection
}

func NewGamificationRepo(cfg DBConfig) *GamificationRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for gamificationRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for gamificationRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GamificationRepository{
		conn: pool,
	}
}

func NewGamificationRepoWithConn(conn PgConnection) *GamificationRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for gamificationRepo: " + err.Error())
	}
	return &GamificationRepository{
		conn: conn,
	}
}

func (gr *GamificationRepository) Begin(ctx context.Context) (GamificationTxI, error) {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("opening reward transaction error: " + err.Error())
	}
	return &gamificationTx{tx: tx}, nil
}

func (gr *GamificationRepository) GetStreak(ctx context.Context, habitID uuid.UUID) (*entity.Streak, error) {
	streak, err := scanStreak(gr.conn.QueryRow(ctx,
		`SELECT habit_id, user_id, current_count, longest_count, last_completed FROM streaks WHERE habit_id = $1;`,
		habitID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return streak, nil
}

func (gr *GamificationRepository) ListStreaks(ctx context.Context, uid uuid.UUID) ([]entity.Streak, error) {
	rows, err := gr.conn.Query(ctx,
		`SELECT habit_id, user_id, current_count, longest_count, last_completed FROM streaks WHERE user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing streaks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Streak, 0)
	for rows.Next() {
		var s entity.Streak
		if err = rows.Scan(&s.HabitID, &s.UserID, &s.CurrentCount, &s.LongestCount, &s.LastCompleted); err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (gr *GamificationRepository) ListAchievements(ctx context.Context, uid uuid.UUID) ([]entity.AchievementSummary, error) {
	rows, err := gr.conn.Query(ctx,
		`SELECT achievement_key, unlocked_at FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.AchievementSummary, 0)
	for rows.Next() {
		var a entity.AchievementSummary
		if err = rows.Scan(&a.Key, &a.UnlockedAt); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (gr *GamificationRepository) ListStaleStreaks(ctx context.Context, before time.Time) ([]entity.Streak, error) {
	rows, err := gr.conn.Query(ctx,
		`SELECT habit_id, user_id, current_count, longest_count, last_completed FROM streaks
		WHERE current_count > 0 AND last_completed < $1;`,
		before,
	)
	if err != nil {
		return nil, errors.New("listing stale streaks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Streak, 0)
	for rows.Next() {
		var s entity.Streak
		if err = rows.Scan(&s.HabitID, &s.UserID, &s.CurrentCount, &s.LongestCount, &s.LastCompleted); err != nil {
			return nil, errors.New("stale streak row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected stale streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (gr *GamificationRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := gr.conn.Query(ctx,
		`SELECT id, name, xp, level FROM users ORDER BY xp DESC, name LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		if err = rows.Scan(&e.UserID, &e.Name, &e.XP, &e.Level); err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		e.Rank = len(result) + 1
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}

type gamificationTx struct {
	tx pgx.Tx
}

func (gt *gamificationTx) GetStreakForUpdate(ctx context.Context, habitID uuid.UUID) (*entity.Streak, error) {
	streak, err := scanStreak(gt.tx.QueryRow(ctx,
		`SELECT habit_id, user_id, current_count, longest_count, last_completed FROM streaks WHERE habit_id = $1 FOR UPDATE;`,
		habitID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak for update error: " + err.Error())
	}
	return streak, nil
}

func (gt *gamificationTx) SaveStreak(ctx context.Context, streak *entity.Streak) error {
	_, err := gt.tx.Exec(ctx,
		`INSERT INTO streaks (habit_id, user_id, current_count, longest_count, last_completed) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (habit_id) DO UPDATE SET current_count = $3, longest_count = $4, last_completed = $5, updated_at = NOW();`,
		streak.HabitID,
		streak.UserID,
		streak.CurrentCount,
		streak.LongestCount,
		streak.LastCompleted,
	)
	if err != nil {
		return errors.New("saving streak error: " + err.Error())
	}
	return nil
}

func (gt *gamificationTx) ResetStreak(ctx context.Context, habitID uuid.UUID, staleBefore time.Time) error {
	_, err := gt.tx.Exec(ctx,
		`UPDATE streaks SET current_count = 0, updated_at = NOW() WHERE habit_id = $1 AND current_count > 0 AND last_completed < $2;`,
		habitID,
		staleBefore,
	)
	if err != nil {
		return errors.New("resetting streak error: " + err.Error())
	}
	return nil
}

func (gt *gamificationTx) GetUserForUpdate(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := gt.tx.QueryRow(ctx,
		`SELECT id, name, xp, level, coins, streak_freezes FROM users WHERE id = $1 FOR UPDATE;`,
		uid,
	)
	if err := row.Scan(&user.ID, &user.Name, &user.XP, &user.Level, &user.Coins, &user.StreakFreezes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("getting user totals error: " + err.Error())
	}
	return &user, nil
}

func (gt *gamificationTx) UpdateUserTotals(ctx context.Context, uid uuid.UUID, xp, level, coins int) error {
	ct, err := gt.tx.Exec(ctx,
		`UPDATE users SET xp = $1, level = $2, coins = $3 WHERE id = $4;`,
		xp, level, coins, uid,
	)
	if err != nil {
		return errors.New("updating user totals error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (gt *gamificationTx) SpendStreakFreeze(ctx context.Context, uid uuid.UUID) error {
	ct, err := gt.tx.Exec(ctx,
		`UPDATE users SET streak_freezes = streak_freezes - 1 WHERE id = $1 AND streak_freezes > 0;`,
		uid,
	)
	if err != nil {
		return errors.New("spending streak freeze error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoFreezesLeft
	}
	return nil
}

func (gt *gamificationTx) IsAchievementUnlocked(ctx context.Context, uid uuid.UUID, key string) (bool, error) {
	var unlocked bool
	row := gt.tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_achievements WHERE user_id = $1 AND achievement_key = $2);`,
		uid,
		key,
	)
	if err := row.Scan(&unlocked); err != nil {
		return false, errors.New("inspecting achievement error: " + err.Error())
	}
	return unlocked, nil
}

func (gt *gamificationTx) UnlockAchievement(ctx context.Context, uid uuid.UUID, key string, at time.Time) error {
	_, err := gt.tx.Exec(ctx,
		`INSERT INTO user_achievements (user_id, achievement_key, unlocked_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`,
		uid,
		key,
		at,
	)
	if err != nil {
		return errors.New("unlocking achievement error: " + err.Error())
	}
	return nil
}

func (gt *gamificationTx) CountUserCompletions(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := gt.tx.QueryRow(ctx, `SELECT COUNT(*) FROM completions WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting user completions error: " + err.Error())
	}
	return count, nil
}

func (gt *gamificationTx) MaxCurrentStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	var max int
	row := gt.tx.QueryRow(ctx, `SELECT COALESCE(MAX(current_count), 0) FROM streaks WHERE user_id = $1;`, uid)
	if err := row.Scan(&max); err != nil {
		return 0, errors.New("getting max current streak error: " + err.Error())
	}
	return max, nil
}

func (gt *gamificationTx) Commit(ctx context.Context) error {
	return gt.tx.Commit(ctx)
}

func (gt *gamificationTx) Rollback(ctx context.Context) error {
	return gt.tx.Rollback(ctx)
}

func scanStreak(row pgx.Row) (*entity.Streak, error) {
	var s entity.Streak
	if err := row.Scan(&s.HabitID, &s.UserID, &s.CurrentCount, &s.LongestCount, &s.LastCompleted); err != nil {
		return nil, err
	}
	return &s, nil
}
