package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tempconv/internal/models"
)

var (
	ErrUserExists   = errors.New("username already taken")
	ErrUserNotFound = errors.New("user not found")
)

// UserSQLite stores API accounts. Usernames compare case-insensitively.
type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ UserRepo = (*UserSQLite)(nil)

const (
	insertUserSQL = `
		INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)
		ON CONFLICT(username) DO NOTHING
	`
	selectUserSQL = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	listUsersSQL  = `SELECT id, username, password_hash, created_at FROM users ORDER BY id`
)

// Create stores u and returns it with its id. A taken username yields
// ErrUserExists.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.CreatedAt = u.CreatedAt.UTC()

	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("create user %q: %w", u.Username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("create user %q: %w", u.Username, err)
	}
	if n == 0 {
		return models.User{}, fmt.Errorf("create user %q: %w", u.Username, ErrUserExists)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("create user %q: %w", u.Username, err)
	}
	u.ID = int(id)
	return u, nil
}

func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserSQL, username))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user %q: %w", username, err)
	}
	return u, nil
}

// List returns every account in creation order.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	if err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
