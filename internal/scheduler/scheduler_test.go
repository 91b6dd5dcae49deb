package scheduler

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
	"github.com/Skrypnyk81/waste-bot/internal/store"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeSender) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func testScheduler(t *testing.T, repo store.Repo, send Sender, now time.Time) *Scheduler {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}
	s := New(repo, zap.NewNop(), send, loc)
	s.now = func() time.Time { return now.In(loc) }
	t.Cleanup(s.Stop)
	return s
}

func mustCreate(t *testing.T, repo store.Repo, u *domain.User) {
	t.Helper()
	if _, err := repo.CreateIfAbsent(context.Background(), u); err != nil {
		t.Fatalf("create user %d: %v", u.ChatID, err)
	}
}

func TestRearm_ArmsOneTimerPerEnabledUser(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "08:00"})
	mustCreate(t, repo, &domain.User{ChatID: 2, NotifyTime: "23:59"})

	loc, _ := time.LoadLocation("Europe/Rome")
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)
	s := testScheduler(t, repo, &fakeSender{}, now)

	s.Rearm(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) != 2 {
		t.Fatalf("got %d timers, want 2", len(s.timers))
	}
	// 08:00 already passed today, so the timer must target tomorrow.
	if at := s.timers[1].at; at.Day() != 11 || at.Hour() != 8 {
		t.Errorf("user 1 armed at %v, want March 11 08:00", at)
	}
	// 23:59 is still ahead, so the timer must target today.
	if at := s.timers[2].at; at.Day() != 10 || at.Hour() != 23 || at.Minute() != 59 {
		t.Errorf("user 2 armed at %v, want March 10 23:59", at)
	}
}

func TestRearm_CancelsPreviousTimers(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "10:00"})

	loc, _ := time.LoadLocation("Europe/Rome")
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)
	s := testScheduler(t, repo, &fakeSender{}, now)

	s.Rearm(ctx)
	if _, err := repo.SetNotifyTime(ctx, 1, "15:00"); err != nil {
		t.Fatalf("set time: %v", err)
	}
	s.Rearm(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) != 1 {
		t.Fatalf("got %d timers after second rearm, want 1", len(s.timers))
	}
	if at := s.timers[1].at; at.Hour() != 15 {
		t.Errorf("timer not re-derived: armed at %v, want 15:00", at)
	}
}

func TestRearm_SkipsDisabledUsers(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "10:00"})
	mustCreate(t, repo, &domain.User{ChatID: 2, NotifyTime: "10:00"})
	if _, err := repo.SetEnabled(ctx, 2, false); err != nil {
		t.Fatalf("disable: %v", err)
	}

	s := testScheduler(t, repo, &fakeSender{}, time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	s.Rearm(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) != 1 {
		t.Fatalf("got %d timers, want 1", len(s.timers))
	}
	if _, ok := s.timers[2]; ok {
		t.Fatal("disabled user got a timer")
	}
}

func TestFire_SendsReminderAndRearms(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "20:00"})

	loc, _ := time.LoadLocation("Europe/Rome")
	// Feb 28 evening: March 1 collects paper, organic and plastic.
	now := time.Date(2025, time.February, 28, 20, 0, 0, 0, loc)
	send := &fakeSender{}
	s := testScheduler(t, repo, send, now)

	s.fire(ctx, 1)

	msgs := send.messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0], string(domain.Plastic)) {
		t.Errorf("reminder missing PLASTICA: %q", msgs[0])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) != 1 {
		t.Fatalf("fire did not rearm: %d timers", len(s.timers))
	}
	// 20:00 is no longer strictly in the future, so the fresh timer
	// must target tomorrow.
	if at := s.timers[1].at; at.Day() != 1 || at.Month() != time.March {
		t.Errorf("rearmed at %v, want March 1", at)
	}
}

func TestFire_DisabledUserSkipsDeliveryButRearms(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "20:00"})
	mustCreate(t, repo, &domain.User{ChatID: 2, NotifyTime: "09:00"})
	if _, err := repo.SetEnabled(ctx, 1, false); err != nil {
		t.Fatalf("disable: %v", err)
	}

	send := &fakeSender{}
	s := testScheduler(t, repo, send, time.Date(2025, time.February, 28, 20, 0, 0, 0, time.UTC))

	s.fire(ctx, 1)

	if n := len(send.messages()); n != 0 {
		t.Fatalf("disabled user received %d messages", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[2]; !ok {
		t.Fatal("fire for disabled user did not trigger a global rearm")
	}
}

func TestFire_UnknownUserIsANoop(t *testing.T) {
	repo := store.NewMemory()
	send := &fakeSender{}
	s := testScheduler(t, repo, send, time.Date(2025, time.February, 28, 20, 0, 0, 0, time.UTC))

	s.fire(context.Background(), 404)

	if n := len(send.messages()); n != 0 {
		t.Fatalf("unknown user received %d messages", n)
	}
}

func TestFire_SilentDaySendsNothing(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "20:00"})

	loc, _ := time.LoadLocation("Europe/Rome")
	// Dec 31 evening: January 1 has no collection.
	now := time.Date(2024, time.December, 31, 20, 0, 0, 0, loc)
	send := &fakeSender{}
	s := testScheduler(t, repo, send, now)

	s.fire(ctx, 1)

	if n := len(send.messages()); n != 0 {
		t.Fatalf("silent day produced %d messages", n)
	}
}

func TestFire_TextileClauseDependsOnAddress(t *testing.T) {
	repo := store.NewMemory()
	ctx := context.Background()
	mustCreate(t, repo, &domain.User{ChatID: 1, NotifyTime: "20:00", Address: "Via Roma 123"})
	mustCreate(t, repo, &domain.User{ChatID: 2, NotifyTime: "20:00"})
	if _, err := repo.SetAddress(ctx, 1, "Via Roma 123"); err != nil {
		t.Fatalf("set address: %v", err)
	}

	loc, _ := time.LoadLocation("Europe/Rome")
	// Jan 29 evening: January 30 is the textile day.
	now := time.Date(2025, time.January, 29, 20, 0, 0, 0, loc)
	send := &fakeSender{}
	s := testScheduler(t, repo, send, now)

	s.fire(ctx, 1)
	s.fire(ctx, 2)

	msgs := send.messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !strings.Contains(msgs[0], "Via Roma 123") {
		t.Errorf("user with address missing textile clause: %q", msgs[0])
	}
	if strings.Contains(msgs[1], "IMPORTANTE") {
		t.Errorf("user without address got textile clause: %q", msgs[1])
	}
}
