package database_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
)

func newTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	repo, err := database.NewRepository(filepath.Join(t.TempDir(), "clipboard_history.db"))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clipboard_history.db")

	repo, err := database.NewRepository(path)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	repo.Close()

	// Reopening against the same file must not fail on existing schema.
	repo, err = database.NewRepository(path)
	if err != nil {
		t.Fatalf("NewRepository on existing file: %v", err)
	}
	repo.Close()
}

func TestSaveEntryDedupSameDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	inserted, err := repo.SaveEntry(ctx, "hello world", now)
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if !inserted {
		t.Error("first SaveEntry inserted = false, want true")
	}

	inserted, err = repo.SaveEntry(ctx, "hello world", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("SaveEntry duplicate: %v", err)
	}
	if inserted {
		t.Error("duplicate SaveEntry inserted = true, want false")
	}

	count, err := repo.CountForDate(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("CountForDate: %v", err)
	}
	if count != 1 {
		t.Errorf("CountForDate = %d, want 1", count)
	}
}

func TestSaveEntryAcrossDays(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 29, 23, 50, 0, 0, time.Local)
	day2 := time.Date(2026, 8, 30, 0, 10, 0, 0, time.Local)

	for _, now := range []time.Time{day1, day2} {
		inserted, err := repo.SaveEntry(ctx, "same text", now)
		if err != nil {
			t.Fatalf("SaveEntry at %v: %v", now, err)
		}
		if !inserted {
			t.Errorf("SaveEntry at %v inserted = false, want true", now)
		}
	}

	for _, date := range []string{"2026-08-29", "2026-08-30"} {
		count, err := repo.CountForDate(ctx, date)
		if err != nil {
			t.Fatalf("CountForDate(%s): %v", date, err)
		}
		if count != 1 {
			t.Errorf("CountForDate(%s) = %d, want 1", date, count)
		}
	}
}

func TestExistsOn(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	if _, err := repo.SaveEntry(ctx, "needle", now); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	exists, err := repo.ExistsOn(ctx, "needle", "2026-08-30")
	if err != nil {
		t.Fatalf("ExistsOn: %v", err)
	}
	if !exists {
		t.Error("ExistsOn same day = false, want true")
	}

	exists, err = repo.ExistsOn(ctx, "needle", "2026-08-29")
	if err != nil {
		t.Fatalf("ExistsOn other day: %v", err)
	}
	if exists {
		t.Error("ExistsOn other day = true, want false")
	}
}

func TestOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	if _, err := repo.SaveEntry(ctx, "first", base); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if _, err := repo.SaveEntry(ctx, "second", base.Add(5*time.Minute)); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	recent, err := repo.RecentForDate(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("RecentForDate: %v", err)
	}
	if len(recent) != 2 || recent[0] != "second" || recent[1] != "first" {
		t.Errorf("RecentForDate = %v, want [second first]", recent)
	}

	chrono, err := repo.EntriesForDate(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("EntriesForDate: %v", err)
	}
	if len(chrono) != 2 || chrono[0] != "first" || chrono[1] != "second" {
		t.Errorf("EntriesForDate = %v, want [first second]", chrono)
	}
}

func TestEntriesForDateEmpty(t *testing.T) {
	repo := newTestRepo(t)

	entries, err := repo.EntriesForDate(context.Background(), "2026-01-01")
	if err != nil {
		t.Fatalf("EntriesForDate on empty day: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("EntriesForDate = %v, want empty", entries)
	}
}

func TestDaysWithData(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inserts := []time.Time{
		time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local),
		time.Date(2026, 8, 3, 14, 0, 0, 0, time.Local),
		time.Date(2026, 8, 15, 9, 0, 0, 0, time.Local),
		time.Date(2026, 7, 20, 9, 0, 0, 0, time.Local), // different month
	}
	for i, now := range inserts {
		if _, err := repo.SaveEntry(ctx, fmt.Sprintf("snippet-%d", i), now); err != nil {
			t.Fatalf("SaveEntry %d: %v", i, err)
		}
	}

	days, err := repo.DaysWithData(ctx, 2026, time.August)
	if err != nil {
		t.Fatalf("DaysWithData: %v", err)
	}

	sort.Ints(days)
	want := []int{3, 15}
	if len(days) != len(want) {
		t.Fatalf("DaysWithData = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("DaysWithData = %v, want %v", days, want)
			break
		}
	}
}

func TestDaysWithDataEmptyMonth(t *testing.T) {
	repo := newTestRepo(t)

	days, err := repo.DaysWithData(context.Background(), 2026, time.March)
	if err != nil {
		t.Fatalf("DaysWithData on empty month: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("DaysWithData = %v, want empty", days)
	}
}

func TestDeleteDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	for i, e := range []struct {
		content string
		now     time.Time
	}{
		{"a", today},
		{"b", today},
		{"c", yesterday},
	} {
		if _, err := repo.SaveEntry(ctx, e.content, e.now); err != nil {
			t.Fatalf("SaveEntry %d: %v", i, err)
		}
	}

	deleted, err := repo.DeleteDay(ctx, "2026-08-30")
	if err != nil {
		t.Fatalf("DeleteDay: %v", err)
	}
	if deleted != 2 {
		t.Errorf("DeleteDay = %d, want 2", deleted)
	}

	count, err := repo.CountForDate(ctx, "2026-08-29")
	if err != nil {
		t.Fatalf("CountForDate: %v", err)
	}
	if count != 1 {
		t.Errorf("CountForDate after DeleteDay = %d, want 1 (other days untouched)", count)
	}
}
