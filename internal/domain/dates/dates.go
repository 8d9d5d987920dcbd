package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the wire format for all dates in the report.
const Layout = "2006-01-02"

var ErrNegativeOffset = errors.New("week offset must be zero or positive")

// Week is one Monday-to-Friday analysis window.
type Week struct {
	Monday time.Time
}

// WeekOf resolves a week offset against the given reference day.
// Offset 0 is the week containing ref, 1 the week before it, and so on.
func WeekOf(ref time.Time, weekOffset int) (Week, error) {
	if weekOffset < 0 {
		return Week{}, ErrNegativeOffset
	}

	// time.Weekday counts from Sunday; shift so Monday is day zero.
	daysSinceMonday := (int(ref.Weekday()) + 6) % 7

	monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	monday = monday.AddDate(0, 0, -daysSinceMonday-7*weekOffset)

	return Week{Monday: monday}, nil
}

// Friday is the last trading day shown in the report.
func (w Week) Friday() time.Time {
	return w.Monday.AddDate(0, 0, 4)
}

// FetchEnd is the Saturday after the window. Daily price APIs treat the end
// date as exclusive, so requesting up to Saturday includes Friday's bar.
func (w Week) FetchEnd() time.Time {
	return w.Monday.AddDate(0, 0, 5)
}

func (w Week) Start() string {
	return w.Monday.Format(Layout)
}

func (w Week) End() string {
	return w.Friday().Format(Layout)
}

// Description renders the window the way news search queries expect it.
func (w Week) Description() string {
	return fmt.Sprintf("the week of %s to %s", w.Start(), w.End())
}

func (w Week) Year() string {
	return fmt.Sprintf("%d", w.Monday.Year())
}

// MonthName is the full English month name of the window's Monday.
func (w Week) MonthName() string {
	return w.Monday.Month().String()
}
