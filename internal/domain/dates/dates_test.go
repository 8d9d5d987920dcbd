package dates

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf_CurrentWeekFromWednesday(t *testing.T) {
	// Wednesday, July 24 2024 -> Monday July 22.
	w, err := WeekOf(date(2024, time.July, 24), 0)
	if err != nil {
		t.Fatalf("WeekOf failed: %v", err)
	}

	if w.Start() != "2024-07-22" {
		t.Errorf("Expected Monday 2024-07-22, got %s", w.Start())
	}
	if w.End() != "2024-07-26" {
		t.Errorf("Expected Friday 2024-07-26, got %s", w.End())
	}
}

func TestWeekOf_FromMonday(t *testing.T) {
	w, err := WeekOf(date(2024, time.July, 22), 0)
	if err != nil {
		t.Fatalf("WeekOf failed: %v", err)
	}

	if w.Start() != "2024-07-22" {
		t.Errorf("Monday reference should stay in the same week, got %s", w.Start())
	}
}

func TestWeekOf_FromSunday(t *testing.T) {
	// Sunday belongs to the week that started six days earlier.
	w, err := WeekOf(date(2024, time.July, 28), 0)
	if err != nil {
		t.Fatalf("WeekOf failed: %v", err)
	}

	if w.Start() != "2024-07-22" {
		t.Errorf("Expected Monday 2024-07-22, got %s", w.Start())
	}
}

func TestWeekOf_Offsets(t *testing.T) {
	ref := date(2024, time.July, 24)

	tests := []struct {
		offset int
		monday string
	}{
		{0, "2024-07-22"},
		{1, "2024-07-15"},
		{2, "2024-07-08"},
		{4, "2024-06-24"},
	}

	for _, tt := range tests {
		w, err := WeekOf(ref, tt.offset)
		if err != nil {
			t.Fatalf("WeekOf(%d) failed: %v", tt.offset, err)
		}
		if w.Start() != tt.monday {
			t.Errorf("offset %d: expected %s, got %s", tt.offset, tt.monday, w.Start())
		}
	}
}

func TestWeekOf_NegativeOffsetRejected(t *testing.T) {
	_, err := WeekOf(date(2024, time.July, 24), -1)
	if !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("Expected ErrNegativeOffset, got %v", err)
	}
}

func TestWeek_FetchEndIsSaturday(t *testing.T) {
	w, _ := WeekOf(date(2024, time.July, 24), 0)

	if got := w.FetchEnd().Format(Layout); got != "2024-07-27" {
		t.Errorf("Expected exclusive fetch end 2024-07-27, got %s", got)
	}
	if w.FetchEnd().Weekday() != time.Saturday {
		t.Errorf("Fetch end should be Saturday, got %s", w.FetchEnd().Weekday())
	}
}

func TestWeek_Description(t *testing.T) {
	w, _ := WeekOf(date(2024, time.July, 24), 0)

	want := "the week of 2024-07-22 to 2024-07-26"
	if w.Description() != want {
		t.Errorf("Expected %q, got %q", want, w.Description())
	}
}

func TestWeek_YearAndMonthName(t *testing.T) {
	// Offset crossing a month boundary: Monday lands in June.
	w, _ := WeekOf(date(2024, time.July, 3), 1)

	if w.Start() != "2024-06-24" {
		t.Fatalf("Expected Monday 2024-06-24, got %s", w.Start())
	}
	if w.Year() != "2024" {
		t.Errorf("Expected year 2024, got %s", w.Year())
	}
	if w.MonthName() != "June" {
		t.Errorf("Expected June, got %s", w.MonthName())
	}
}
