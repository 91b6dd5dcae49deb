package store

import (
	"context"
	"errors"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
)

// ErrNotFound is returned by GetUser when no row exists for the chat id.
var ErrNotFound = errors.New("user not found")

// Repo defines storage operations for subscribers.
//
// The partial updates (SetAddress, SetNotifyTime, SetEnabled) report whether
// a row was affected; calling them for an unknown chat id is not an error,
// the bool is just false. They all refresh updated_at.
type Repo interface {
	GetUser(ctx context.Context, chatID int64) (*domain.User, error)
	// CreateIfAbsent inserts the user with defaults unless the chat id
	// already exists; the second call for the same id is a no-op and
	// reports false. Metadata of an existing row is never overwritten.
	CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error)
	SetAddress(ctx context.Context, chatID int64, address string) (bool, error)
	SetNotifyTime(ctx context.Context, chatID int64, hhmm string) (bool, error)
	SetEnabled(ctx context.Context, chatID int64, enabled bool) (bool, error)
	// ListEnabled returns every user with notifications enabled,
	// in no particular order.
	ListEnabled(ctx context.Context) ([]domain.User, error)
	Close() error
}
