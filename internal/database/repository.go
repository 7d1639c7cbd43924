package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Repository owns the single process-wide database handle. It is constructed
// once by the application root and passed by reference to every call site.
type Repository struct {
	db *bun.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	ctx := context.Background()

	// Create tables
	models := []interface{}{
		(*ClipboardEntry)(nil),
	}

	for _, model := range models {
		if _, err := r.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	// Create indexes
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_clipboard_date ON clipboard_items(date)",
		"CREATE INDEX IF NOT EXISTS idx_clipboard_date_content ON clipboard_items(date, content)",
		"CREATE INDEX IF NOT EXISTS idx_clipboard_timestamp ON clipboard_items(timestamp DESC)",
	}

	for _, idx := range indexes {
		if _, err := r.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SaveEntry persists one captured snippet for the day of `now`. A snippet that
// already exists for that day is silently skipped; the returned bool reports
// whether a row was actually inserted.
func (r *Repository) SaveEntry(ctx context.Context, content string, now time.Time) (bool, error) {
	date := now.Format(DateLayout)

	exists, err := r.ExistsOn(ctx, content, date)
	if err != nil {
		return false, fmt.Errorf("failed to check existing entry: %w", err)
	}

	if exists {
		slog.Debug("entry already saved for today, skipping", "date", date)
		return false, nil
	}

	entry := &ClipboardEntry{
		Content:   content,
		Timestamp: now,
		Date:      date,
	}

	if _, err := r.db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to insert clipboard entry: %w", err)
	}

	return true, nil
}

// ExistsOn reports whether a snippet with identical content is already stored
// for the given calendar date.
func (r *Repository) ExistsOn(ctx context.Context, content, date string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*ClipboardEntry)(nil)).
		Where("content = ?", content).
		Where("date = ?", date).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check entry existence: %w", err)
	}

	return exists, nil
}

// RecentForDate returns the snippets captured on the given date ordered
// newest-first, the order the live view renders them in.
func (r *Repository) RecentForDate(ctx context.Context, date string) ([]string, error) {
	var contents []string

	err := r.db.NewSelect().
		Model((*ClipboardEntry)(nil)).
		Column("content").
		Where("date = ?", date).
		Order("timestamp DESC").
		Scan(ctx, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return contents, nil
}

// EntriesForDate returns the snippets captured on the given date ordered
// oldest-first, chronological reading order for a historical day.
func (r *Repository) EntriesForDate(ctx context.Context, date string) ([]string, error) {
	var contents []string

	err := r.db.NewSelect().
		Model((*ClipboardEntry)(nil)).
		Column("content").
		Where("date = ?", date).
		Order("timestamp ASC").
		Scan(ctx, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for date: %w", err)
	}

	return contents, nil
}

// DaysWithData returns the distinct day-of-month values that have at least one
// stored entry in the given month. Only day numbers are aggregated; content is
// never pulled off disk for this.
func (r *Repository) DaysWithData(ctx context.Context, year int, month time.Month) ([]int, error) {
	var days []int

	err := r.db.NewSelect().
		Model((*ClipboardEntry)(nil)).
		ColumnExpr("DISTINCT CAST(strftime('%d', date) AS INTEGER)").
		Where("strftime('%Y', date) = ?", fmt.Sprintf("%04d", year)).
		Where("strftime('%m', date) = ?", fmt.Sprintf("%02d", int(month))).
		Scan(ctx, &days)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate days with data: %w", err)
	}

	return days, nil
}

// CountForDate returns the number of stored entries for the given date.
func (r *Repository) CountForDate(ctx context.Context, date string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*ClipboardEntry)(nil)).
		Where("date = ?", date).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}

	return count, nil
}

// DeleteDay removes every entry for the given date and returns how many rows
// went away. Maintenance tooling only; nothing in the capture path calls this.
func (r *Repository) DeleteDay(ctx context.Context, date string) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*ClipboardEntry)(nil)).
		Where("date = ?", date).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
