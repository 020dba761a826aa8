package repository

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lumixed/habitflow/internal/repository/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations. The pgx stdlib driver
// registers itself under "pgx", so callers open the *sql.DB with that name.
func RunMigrations(ctx context.Context, cfg DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
