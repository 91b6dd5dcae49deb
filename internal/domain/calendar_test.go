package domain

import (
	"testing"
	"time"
)

func TestCollectionFor_KnownDates(t *testing.T) {
	cases := []struct {
		day, month int
		want       WasteCategory
	}{
		{1, 3, Plastic},
		{1, 3, Organic},
		{1, 3, PaperCardboard},
		{2, 1, Unsorted},   // holiday shift: Thursday pickup
		{16, 8, GlassCans}, // holiday shift: Saturday pickup
		{30, 1, Textiles},
	}
	for _, c := range cases {
		got := CollectionFor(c.day, c.month)
		found := false
		for _, cat := range got {
			if cat == c.want {
				found = true
			}
		}
		if !found {
			t.Errorf("CollectionFor(%d, %d) = %v, want it to include %s", c.day, c.month, got, c.want)
		}
	}
}

func TestCollectionFor_EmptyDay(t *testing.T) {
	// January 1 and every Sunday have no collection.
	if got := CollectionFor(1, 1); len(got) != 0 {
		t.Fatalf("CollectionFor(1, 1) = %v, want empty", got)
	}
	if got := CollectionFor(5, 1); len(got) != 0 { // Sunday
		t.Fatalf("CollectionFor(5, 1) = %v, want empty", got)
	}
}

func TestCollectionFor_OutOfCalendar(t *testing.T) {
	if got := CollectionFor(0, 13); len(got) != 0 {
		t.Fatalf("CollectionFor(0, 13) = %v, want empty", got)
	}
}

func TestCalendar_AllEntriesAreValidDates(t *testing.T) {
	for cat, months := range calendar2025 {
		for month, days := range months {
			for _, day := range days {
				d := time.Date(CalendarYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				if int(d.Month()) != month || d.Day() != day {
					t.Errorf("%s: %d/%d is not a valid %d date", cat, day, month, CalendarYear)
				}
			}
		}
	}
}

func TestCalendar_OneTextileDayPerMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		days := calendar2025[Textiles][month]
		if len(days) != 1 {
			t.Errorf("textiles month %d: got %d days, want exactly 1", month, len(days))
		}
	}
}
