package util

import (
	"testing"
	"time"
)

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := EndOfDay(in)

	want := time.Date(2025, 3, 14, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}

	// A record stamped at any point during the day must not sort after it.
	lastRecord := time.Date(2025, 3, 14, 23, 59, 59, int(500*time.Millisecond), time.UTC)
	if lastRecord.After(got) {
		t.Errorf("record at %v falls outside EndOfDay %v", lastRecord, got)
	}
}

func TestEndOfDayBoundary(t *testing.T) {
	day := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	bound := EndOfDay(day)

	// The last representable millisecond of the day is inside the bound;
	// one millisecond later is the next day and outside it.
	last := time.Date(2025, 3, 14, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if last.After(bound) {
		t.Errorf("record at %v falls outside EndOfDay %v", last, bound)
	}

	next := last.Add(time.Millisecond)
	if !next.After(bound) {
		t.Errorf("record at %v should fall outside EndOfDay %v", next, bound)
	}
}
