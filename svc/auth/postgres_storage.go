package auth

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// Migrations holds the goose migrations for the users table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations.
const MigrationsDir = "migrations"

// DB is the subset of *pgxpool.Pool used by PostgresStorage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage stores users in PostgreSQL. Email uniqueness comes from
// the users_email_key constraint.
type PostgresStorage struct {
	db DB
}

var _ Storage = (*PostgresStorage)(nil)

func NewPostgresStorage(db DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const (
	insertUserQuery = `INSERT INTO users (id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
	selectUserQuery = `SELECT id, email, name, password_hash, created_at FROM users`
)

func (s *PostgresStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.db.Exec(ctx, insertUserQuery,
		user.ID.String(), user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return errors.Join(ErrEmailAlreadyExists, err)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserQuery+` WHERE email = $1`, email))
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserQuery+` WHERE id = $1`, id.String()))
}

func (s *PostgresStorage) scanUser(row pgx.Row) (*User, error) {
	var (
		u  User
		id string
	)
	if err := row.Scan(&id, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("malformed user id %q: %w", id, err)
	}
	u.ID = parsed
	return &u, nil
}
