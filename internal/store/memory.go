package store

import (
	"context"
	"sync"
	"time"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
)

// MemoryRepo is an in-memory Repo used by tests that don't need SQLite.
type MemoryRepo struct {
	mu    sync.Mutex
	users map[int64]domain.User
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{users: make(map[int64]domain.User)}
}

func (m *MemoryRepo) GetUser(_ context.Context, chatID int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[chatID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *MemoryRepo) CreateIfAbsent(_ context.Context, u *domain.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ChatID]; ok {
		return false, nil
	}
	cp := *u
	if cp.NotifyTime == "" {
		cp.NotifyTime = domain.DefaultNotifyTime
	}
	cp.Enabled = true
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	m.users[u.ChatID] = cp
	return true, nil
}

func (m *MemoryRepo) SetAddress(_ context.Context, chatID int64, address string) (bool, error) {
	return m.update(chatID, func(u *domain.User) { u.Address = address })
}

func (m *MemoryRepo) SetNotifyTime(_ context.Context, chatID int64, hhmm string) (bool, error) {
	return m.update(chatID, func(u *domain.User) { u.NotifyTime = hhmm })
}

func (m *MemoryRepo) SetEnabled(_ context.Context, chatID int64, enabled bool) (bool, error) {
	return m.update(chatID, func(u *domain.User) { u.Enabled = enabled })
}

func (m *MemoryRepo) update(chatID int64, fn func(*domain.User)) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[chatID]
	if !ok {
		return false, nil
	}
	fn(&u)
	u.UpdatedAt = time.Now().UTC()
	m.users[chatID] = u
	return true, nil
}

func (m *MemoryRepo) ListEnabled(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.User
	for _, u := range m.users {
		if u.Enabled {
			res = append(res, u)
		}
	}
	return res, nil
}

func (m *MemoryRepo) Close() error { return nil }
