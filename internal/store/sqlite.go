package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// GetUser returns a subscriber by chat id, or ErrNotFound.
func (r *SQLiteRepo) GetUser(ctx context.Context, chatID int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT chat_id, username, first_name, last_name, address,
		       notify_time, enabled, created_at, updated_at
		FROM users
		WHERE chat_id = ?`,
		chatID,
	)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateIfAbsent inserts a subscriber row with defaults unless one already
// exists. Insert-or-ignore: a conflict on chat_id leaves the existing row
// untouched and reports false.
func (r *SQLiteRepo) CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error) {
	if u == nil {
		return false, errors.New("nil user")
	}

	notify := u.NotifyTime
	if notify == "" {
		notify = domain.DefaultNotifyTime
	}
	now := time.Now().UTC().Unix()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			chat_id, username, first_name, last_name, address,
			notify_time, enabled, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(chat_id) DO NOTHING`,
		u.ChatID, u.Username, u.FirstName, u.LastName, u.Address,
		notify, now, now,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetAddress updates the free-text address for a subscriber.
func (r *SQLiteRepo) SetAddress(ctx context.Context, chatID int64, address string) (bool, error) {
	return r.updateField(ctx, chatID, "address", address)
}

// SetNotifyTime updates the notification wall-clock time ("HH:MM").
func (r *SQLiteRepo) SetNotifyTime(ctx context.Context, chatID int64, hhmm string) (bool, error) {
	return r.updateField(ctx, chatID, "notify_time", hhmm)
}

// SetEnabled toggles the notifications flag for a subscriber.
func (r *SQLiteRepo) SetEnabled(ctx context.Context, chatID int64, enabled bool) (bool, error) {
	return r.updateField(ctx, chatID, "enabled", boolToInt(enabled))
}

// updateField performs a single-column partial update, refreshing updated_at.
// The column name is always one of our own constants, never user input.
func (r *SQLiteRepo) updateField(ctx context.Context, chatID int64, column string, value any) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+column+` = ?, updated_at = ? WHERE chat_id = ?`,
		value, time.Now().UTC().Unix(), chatID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListEnabled returns every subscriber with notifications enabled.
func (r *SQLiteRepo) ListEnabled(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, username, first_name, last_name, address,
		       notify_time, enabled, created_at, updated_at
		FROM users
		WHERE enabled = 1`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func scanUser(scan func(dest ...any) error) (*domain.User, error) {
	var (
		chatID     int64
		username   string
		firstName  string
		lastName   string
		address    string
		notifyTime string
		enabledInt int
		createdAt  int64
		updatedAt  int64
	)
	if err := scan(
		&chatID, &username, &firstName, &lastName, &address,
		&notifyTime, &enabledInt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	return &domain.User{
		ChatID:     chatID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		Address:    address,
		NotifyTime: notifyTime,
		Enabled:    enabledInt != 0,
		CreatedAt:  time.Unix(createdAt, 0).UTC(),
		UpdatedAt:  time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// boolToInt converts a boolean to 1/0 for SQLite.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
