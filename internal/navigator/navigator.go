// Package navigator maintains the (year, month) calendar cursor and answers
// which days of the cursor month have stored clipboard history.
package navigator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
)

// Queries is the slice of the history repository the navigator needs.
type Queries interface {
	DaysWithData(ctx context.Context, year int, month time.Month) ([]int, error)
	EntriesForDate(ctx context.Context, date string) ([]string, error)
}

// DayState classifies one calendar cell. It is a pure function of the day,
// the days-with-data set and today's date, so calendar styling can be tested
// without any rendering surface.
type DayState int

const (
	DayNoData DayState = iota
	DayHasData
	DayTodayNoData
	DayTodayHasData
)

func (s DayState) String() string {
	switch s {
	case DayHasData:
		return "has-data"
	case DayTodayNoData:
		return "today"
	case DayTodayHasData:
		return "today-has-data"
	default:
		return "no-data"
	}
}

type Navigator struct {
	store Queries

	year  int
	month time.Month

	now func() time.Time
}

func New(store Queries) *Navigator {
	n := &Navigator{
		store: store,
		now:   time.Now,
	}
	today := n.now()
	n.year, n.month = today.Year(), today.Month()
	return n
}

// Cursor returns the current (year, month) position.
func (n *Navigator) Cursor() (int, time.Month) {
	return n.year, n.month
}

// SetCursor moves the cursor to an explicit month.
func (n *Navigator) SetCursor(year int, month time.Month) {
	n.year = year
	n.month = month
}

// Next advances the cursor one month forward, wrapping December into January
// of the following year. Pure arithmetic, no query.
func (n *Navigator) Next() {
	if n.month == time.December {
		n.month = time.January
		n.year++
		return
	}
	n.month++
}

// Prev moves the cursor one month back, wrapping January into December of the
// previous year.
func (n *Navigator) Prev() {
	if n.month == time.January {
		n.month = time.December
		n.year--
		return
	}
	n.month--
}

// Label returns the short month label for the cursor, e.g. "Aug 2026".
func (n *Navigator) Label() string {
	return fmt.Sprintf("%s %d", n.month.String()[:3], n.year)
}

// DaysIn returns the number of days in the cursor month.
func (n *Navigator) DaysIn() int {
	first := time.Date(n.year, n.month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}

// DaysWithData returns the set of day-of-month values that have at least one
// stored entry in the cursor month. A failed query degrades to an empty set.
func (n *Navigator) DaysWithData(ctx context.Context) map[int]bool {
	days := make(map[int]bool)
	if n.store == nil {
		return days
	}

	found, err := n.store.DaysWithData(ctx, n.year, n.month)
	if err != nil {
		slog.Error("failed to load days with data",
			"year", n.year,
			"month", int(n.month),
			"error", err,
		)
		return days
	}

	for _, d := range found {
		if d >= 1 {
			days[d] = true
		}
	}
	return days
}

// DateFor returns the YYYY-MM-DD date string for a day of the cursor month.
func (n *Navigator) DateFor(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", n.year, int(n.month), day)
}

// SelectDay fetches the entries for one day of the cursor month in
// chronological order. An empty slice means "no entries for this date"; a
// failed query is logged and reported the same way.
func (n *Navigator) SelectDay(ctx context.Context, day int) (string, []string) {
	date := n.DateFor(day)
	if n.store == nil {
		return date, nil
	}

	entries, err := n.store.EntriesForDate(ctx, date)
	if err != nil {
		slog.Error("failed to load history for date", "date", date, "error", err)
		return date, nil
	}
	return date, entries
}

// Classify maps one day of the cursor month onto its calendar cell state.
func (n *Navigator) Classify(day int, daysWithData map[int]bool) DayState {
	today := n.now()
	isToday := day == today.Day() &&
		n.month == today.Month() &&
		n.year == today.Year()
	hasData := daysWithData[day]

	switch {
	case isToday && hasData:
		return DayTodayHasData
	case isToday:
		return DayTodayNoData
	case hasData:
		return DayHasData
	default:
		return DayNoData
	}
}

var _ Queries = (*database.Repository)(nil)
