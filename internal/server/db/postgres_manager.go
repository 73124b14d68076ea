package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/craftops/atelier/internal/server/dashboard"
	"github.com/craftops/atelier/internal/server/db/migrations"
	"github.com/craftops/atelier/internal/server/users"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	users     users.Repository
	dashboard dashboard.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Dashboard() dashboard.Repository {
	return m.dashboard
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	usersRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	dashboardRepo, err := dashboard.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("dashboard repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		users:     usersRepo,
		dashboard: dashboardRepo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
