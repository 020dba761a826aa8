package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/lumixed/habitflow/internal/error_values"
	"github.com/lumixed/habitflow/pkg/cleanup"
	"github.com/lumixed/habitflow/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(cfg DBConfig) *CompletionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for completionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CompletionsRepository{
		conn: pool,
	}
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO completions (habit_id, user_id, completed_on) VALUES ($1, $2, $3);`,
		habitID,
		userID,
		date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrCompletionExists
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := cr.conn.Exec(
		ctx,
		`DELETE FROM completions WHERE habit_id = $1 AND completed_on = $2;`,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (cr *CompletionsRepository) Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM completions WHERE habit_id = $1 AND completed_on = $2);`,
		habitID,
		date,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if completion exists error: " + err.Error())
	}
	return exists, nil
}

func (cr *CompletionsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.Completion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, habit_id, user_id, completed_on, created_at FROM completions
		WHERE habit_id = $1 AND completed_on >= $2 AND completed_on <= $3 ORDER BY completed_on;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Completion, 0, 2)
	for rows.Next() {
		completion := entity.Completion{}
		err = rows.Scan(&completion.ID, &completion.HabitID, &completion.UserID, &completion.CompletedOn, &completion.CreatedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, completion)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) GetLastBefore(ctx context.Context, habitID uuid.UUID, before time.Time) (*time.Time, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT completed_on FROM completions WHERE habit_id = $1 AND completed_on < $2 ORDER BY completed_on DESC LIMIT 1;`,
		habitID,
		before,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last completion before date error: " + err.Error())
	}
	return &date, nil
}

func (cr *CompletionsRepository) CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM completions WHERE habit_id = $1;`,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completions: " + err.Error())
	}
	return count, nil
}
