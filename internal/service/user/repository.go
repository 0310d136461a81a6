// Package user stores the birth data each chat user registers.
package user

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// User is one registered chat member.
type User struct {
	RoomID      string    `json:"room_id"`
	UserID      string    `json:"user_id"`
	BirthDate   string    `json:"birth_date"`
	BirthPlace  string    `json:"birth_place"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS alignment_users (
	room_id      TEXT        NOT NULL,
	user_id      TEXT        NOT NULL,
	birth_date   DATE        NOT NULL,
	birth_place  TEXT        NOT NULL DEFAULT '',
	display_name TEXT        NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (room_id, user_id)
)`

// Repository persists users in PostgreSQL.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(db *sql.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// EnsureSchema creates the users table when it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create alignment_users: %w", err)
	}
	return nil
}

// Upsert inserts the user or replaces its birth data.
func (r *Repository) Upsert(ctx context.Context, u User) error {
	const query = `
INSERT INTO alignment_users (room_id, user_id, birth_date, birth_place, display_name)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (room_id, user_id) DO UPDATE
SET birth_date = EXCLUDED.birth_date,
    birth_place = EXCLUDED.birth_place,
    display_name = EXCLUDED.display_name,
    updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, u.RoomID, u.UserID, u.BirthDate, u.BirthPlace, u.DisplayName); err != nil {
		r.logger.Error("Failed to upsert user",
			zap.String("room", u.RoomID),
			zap.String("user", u.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// Find returns the user, or nil when none is registered.
func (r *Repository) Find(ctx context.Context, roomID, userID string) (*User, error) {
	const query = `
SELECT room_id, user_id, to_char(birth_date, 'YYYY-MM-DD'), birth_place, display_name, created_at, updated_at
FROM alignment_users
WHERE room_id = $1 AND user_id = $2`

	var u User
	err := r.db.QueryRowContext(ctx, query, roomID, userID).Scan(
		&u.RoomID, &u.UserID, &u.BirthDate, &u.BirthPlace, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// Delete removes the user and reports whether a row existed.
func (r *Repository) Delete(ctx context.Context, roomID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alignment_users WHERE room_id = $1 AND user_id = $2`, roomID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// ListByRoom returns every user registered in a room.
func (r *Repository) ListByRoom(ctx context.Context, roomID string) ([]User, error) {
	const query = `
SELECT room_id, user_id, to_char(birth_date, 'YYYY-MM-DD'), birth_place, display_name, created_at, updated_at
FROM alignment_users
WHERE room_id = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.RoomID, &u.UserID, &u.BirthDate, &u.BirthPlace, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
