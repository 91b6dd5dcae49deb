package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
	"github.com/Skrypnyk81/waste-bot/internal/store"
)

// Sender is a minimal interface the scheduler needs to send a text message.
// telegram.Router implements it.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Scheduler arms one one-shot timer per enabled subscriber at the next
// occurrence of their configured wall-clock time. Timers are not persisted:
// every rearm pass cancels all pending timers and re-derives them from the
// user store, so a fire never has to reconcile drift or missed timers.
type Scheduler struct {
	repo store.Repo
	log  *zap.Logger
	send Sender
	loc  *time.Location
	now  func() time.Time

	mu     sync.Mutex
	timers map[int64]armed

	// fireMu serializes fire callbacks so two timers expiring together
	// never interleave their store reads and rearm passes.
	fireMu sync.Mutex
}

type armed struct {
	timer *time.Timer
	at    time.Time
}

// New creates a Scheduler delivering through send, with all wall-clock
// computations done in loc (the reference timezone).
func New(repo store.Repo, log *zap.Logger, send Sender, loc *time.Location) *Scheduler {
	return &Scheduler{
		repo:   repo,
		log:    log,
		send:   send,
		loc:    loc,
		now:    time.Now,
		timers: make(map[int64]armed),
	}
}

// Rearm cancels every pending notification timer and arms a fresh one per
// enabled subscriber. Called at startup, after every fire, and after any
// user edit that affects scheduling. O(enabled users) per call, which is
// fine at the scale of a single-town bot.
func (s *Scheduler) Rearm(ctx context.Context) {
	users, err := s.repo.ListEnabled(ctx)
	if err != nil {
		s.log.Error("list enabled users failed", zap.Error(err))
		return
	}

	now := s.now().In(s.loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.timers {
		a.timer.Stop()
		delete(s.timers, id)
	}

	for _, u := range users {
		clock, err := domain.ParseClock(u.NotifyTime)
		if err != nil {
			// Stored times are validated on write; a bad row is skipped.
			s.log.Warn("invalid stored notify time",
				zap.Int64("chatID", u.ChatID), zap.String("time", u.NotifyTime))
			continue
		}
		target := domain.NextOccurrence(now, clock)
		chatID := u.ChatID
		s.timers[chatID] = armed{
			timer: time.AfterFunc(target.Sub(now), func() { s.fire(ctx, chatID) }),
			at:    target,
		}
	}

	s.log.Debug("rearm pass complete", zap.Int("timers", len(s.timers)))
}

// Stop cancels all pending timers. Used at shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.timers {
		a.timer.Stop()
		delete(s.timers, id)
	}
}

// fire delivers tomorrow's collection reminder to one subscriber, then
// reruns the global rearm pass so every user gets a fresh next-day timer.
func (s *Scheduler) fire(ctx context.Context, chatID int64) {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	s.notify(ctx, chatID)
	s.Rearm(ctx)
}

// notify holds the delivery logic of a fire. The user is re-fetched so that
// a subscriber who disabled notifications after the timer was armed is
// silently skipped; delivery failures are logged and dropped, the next
// rearm retries tomorrow.
func (s *Scheduler) notify(ctx context.Context, chatID int64) {
	u, err := s.repo.GetUser(ctx, chatID)
	if err != nil {
		// Absent user is a normal skip, not an error.
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Error("fetch user at fire failed", zap.Error(err), zap.Int64("chatID", chatID))
		}
		return
	}
	if !u.Enabled {
		return
	}

	tomorrow := domain.Tomorrow(s.now().In(s.loc))
	cats := domain.CollectionFor(tomorrow.Day(), int(tomorrow.Month()))
	text := domain.ReminderText(tomorrow, cats, u.Address)
	if text == "" {
		// Nothing collected tomorrow: silent day.
		return
	}

	if err := s.send.SendMessage(chatID, text); err != nil {
		s.log.Error("reminder delivery failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}
