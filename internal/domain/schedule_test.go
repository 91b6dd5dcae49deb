package domain

import (
	"testing"
	"time"
)

func TestNextOccurrence_TimeStillAheadToday(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)

	next := NextOccurrence(now, Clock{Hour: 23, Minute: 59})
	want := time.Date(2025, time.March, 10, 23, 59, 0, 0, loc)
	if !next.Equal(want) {
		t.Fatalf("got %v, want %v", next, want)
	}
}

func TestNextOccurrence_TimeAlreadyPassed(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)

	next := NextOccurrence(now, Clock{Hour: 8, Minute: 0})
	want := time.Date(2025, time.March, 11, 8, 0, 0, 0, loc)
	if !next.Equal(want) {
		t.Fatalf("got %v, want %v", next, want)
	}
}

func TestNextOccurrence_ExactlyNowRollsToTomorrow(t *testing.T) {
	now := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.UTC)
	next := NextOccurrence(now, Clock{Hour: 20, Minute: 0})
	if !next.After(now) {
		t.Fatalf("next occurrence %v is not strictly in the future of %v", next, now)
	}
	if next.Day() != 2 {
		t.Fatalf("expected tomorrow, got %v", next)
	}
}

func TestTomorrow_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 31, 21, 0, 0, 0, time.UTC)
	got := Tomorrow(now)
	if got.Day() != 1 || got.Month() != time.April {
		t.Fatalf("got %v, want April 1", got)
	}
}
