package app

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/capture"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/config"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/database"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/navigator"
)

// Display is what the app needs from a presentation shell. The shell package
// provides the terminal implementation; anything that can render snippets and
// calendar cells will do.
type Display interface {
	ShowSnippet(text string)
	ShowToday(items []string)
	ShowDay(date string, items []string)
	ShowCalendar(label string, year int, month time.Month, states map[int]navigator.DayState)
	ShowRestoring()
	DoneRestoring()
	Clear()
}

// App is the application root: it owns the database handle, the capture
// monitor, the month navigator and the display, and runs the event loop that
// ties them together.
type App struct {
	config     *config.Config
	repository *database.Repository // nil when storage is unavailable
	monitor    *capture.Monitor
	navigator  *navigator.Navigator
	display    Display
}

func New(cfg *config.Config, display Display) (*App, error) {
	a := &App{
		config:  cfg,
		display: display,
	}

	// A storage failure degrades to "history unavailable": capture and the
	// live view keep working, nothing persists.
	repo, err := database.NewRepository(cfg.DatabasePath)
	if err != nil {
		slog.Error("history unavailable, continuing without persistence",
			"path", cfg.DatabasePath,
			"error", err,
		)
	} else {
		a.repository = repo
	}

	var store capture.Store
	var queries navigator.Queries
	if a.repository != nil {
		store = a.repository
		queries = a.repository
	}

	a.monitor = capture.NewMonitor(store, cfg)
	a.navigator = navigator.New(queries)

	return a, nil
}

// Run starts the capture monitor and processes monitor events and user
// commands until the context is cancelled or the input stream ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.monitor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start clipboard monitor: %w", err)
	}
	defer a.monitor.Stop()

	a.loadTodayHistory(ctx)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.monitor.EventChannel():
			if ev.Type == "new_item" && ev.Snippet != nil {
				a.display.ShowSnippet(ev.Snippet.Content)
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

// dispatch handles one user command. It returns true when the user asked to
// quit.
func (a *App) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "history", "back":
		a.toggleHistory(ctx)
	case "prev":
		a.navigator.Prev()
		a.showCalendar(ctx)
	case "next":
		a.navigator.Next()
		a.showCalendar(ctx)
	case "day":
		if len(fields) < 2 {
			fmt.Println("usage: day N")
			return false
		}
		day, err := strconv.Atoi(fields[1])
		if err != nil || day < 1 || day > a.navigator.DaysIn() {
			fmt.Println("not a day of this month:", fields[1])
			return false
		}
		date, entries := a.navigator.SelectDay(ctx, day)
		a.display.ShowDay(date, entries)
	case "restore":
		a.handleRestore(ctx)
	case "clear":
		a.clearAll()
	case "help":
		fmt.Println("commands: history, prev, next, day N, back, restore, clear, quit")
	default:
		fmt.Println("unknown command:", fields[0], "(try `help`)")
	}
	return false
}

// toggleHistory flips between the live view and the calendar browsing view.
// Entering browsing suspends capture until the user comes back.
func (a *App) toggleHistory(ctx context.Context) {
	mode := a.monitor.ToggleMode()
	if mode == capture.ModeBrowsing {
		a.showCalendar(ctx)
		return
	}
	a.loadTodayHistory(ctx)
}

func (a *App) showCalendar(ctx context.Context) {
	days := a.navigator.DaysWithData(ctx)

	states := make(map[int]navigator.DayState, a.navigator.DaysIn())
	for day := 1; day <= a.navigator.DaysIn(); day++ {
		states[day] = a.navigator.Classify(day, days)
	}

	year, month := a.navigator.Cursor()
	a.display.ShowCalendar(a.navigator.Label(), year, month, states)
}

func (a *App) loadTodayHistory(ctx context.Context) {
	if a.repository == nil {
		a.display.ShowToday(nil)
		return
	}

	today := time.Now().Format(database.DateLayout)
	items, err := a.repository.RecentForDate(ctx, today)
	if err != nil {
		slog.Error("failed to load today's history", "error", err)
		items = nil
	}
	a.display.ShowToday(items)
}

// handleRestore reloads today's history from the database. The restore
// indicator stays up for a fixed delay purely for feedback; the fetch itself
// completes synchronously before the timer fires.
func (a *App) handleRestore(ctx context.Context) {
	if a.monitor.Mode() != capture.ModeLive {
		fmt.Println("restore only works in the live view")
		return
	}

	a.display.ShowRestoring()
	a.clearAll()
	a.loadTodayHistory(ctx)

	time.AfterFunc(time.Duration(a.config.RestoreDelay)*time.Millisecond, a.display.DoneRestoring)
}

// clearAll empties the visible list and the session dedup set. Persisted rows
// stay where they are.
func (a *App) clearAll() {
	a.monitor.ResetSession()
	a.display.Clear()
}

func (a *App) Close() {
	if a.repository != nil {
		if err := a.repository.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}
