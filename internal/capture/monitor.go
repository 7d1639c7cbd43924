package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.design/x/clipboard"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/config"
	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/util"
)

// Store is the slice of the history repository the capture pipeline needs.
// A nil Store means history is unavailable: capture keeps working for the
// current session but nothing is persisted.
type Store interface {
	SaveEntry(ctx context.Context, content string, now time.Time) (bool, error)
}

// Monitor reacts to clipboard and primary-selection notifications: it trims,
// deduplicates against the session set, emits a render event and persists the
// snippet. It also owns the Live/Browsing mode that suspends capture.
type Monitor struct {
	store Store
	cfg   *config.Config

	mu       sync.Mutex
	mode     Mode
	seen     map[string]struct{}
	lastHash string

	eventChan chan MonitorEvent
	isRunning bool
	now       func() time.Time
}

func NewMonitor(store Store, cfg *config.Config) *Monitor {
	return &Monitor{
		store:     store,
		cfg:       cfg,
		mode:      ModeLive,
		seen:      make(map[string]struct{}),
		eventChan: make(chan MonitorEvent, 100),
		now:       time.Now,
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	if m.isRunning {
		return fmt.Errorf("monitor is already running")
	}

	// Initialize clipboard
	err := clipboard.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	m.isRunning = true
	slog.Info("clipboard monitor started")

	// Start monitoring in a separate goroutine
	go m.monitorLoop(ctx)

	return nil
}

func (m *Monitor) Stop() {
	if !m.isRunning {
		return
	}

	m.isRunning = false
	slog.Info("clipboard monitor stopped")
}

func (m *Monitor) monitorLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(m.cfg.MonitorInterval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkClipboard(ctx)
		}
	}
}

func (m *Monitor) checkClipboard(ctx context.Context) {
	textData := clipboard.Read(clipboard.FmtText)
	if len(textData) == 0 {
		return
	}
	m.HandleClipboardText(ctx, string(textData))
}

// HandleClipboardText processes a "clipboard changed" notification.
func (m *Monitor) HandleClipboardText(ctx context.Context, text string) {
	m.capture(ctx, text, "clipboard")
}

// HandleSelectionText processes a "primary selection changed" notification.
// Selections go through the same acceptance pipeline as clipboard changes.
func (m *Monitor) HandleSelectionText(ctx context.Context, text string) {
	m.capture(ctx, text, "selection")
}

func (m *Monitor) capture(ctx context.Context, text, source string) {
	m.mu.Lock()

	if m.mode == ModeBrowsing {
		m.mu.Unlock()
		slog.Debug("capture suspended while browsing history", "source", source)
		return
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		m.mu.Unlock()
		return
	}

	if len(trimmed) > m.cfg.MaxItemSize {
		m.mu.Unlock()
		slog.Warn("clipboard item too large",
			"size", len(trimmed),
			"max", m.cfg.MaxItemSize,
		)
		return
	}

	hash := util.GenerateHash(trimmed)

	// Skip if same as last item; the polling loop re-reads the clipboard on
	// every tick.
	if hash == m.lastHash {
		m.mu.Unlock()
		return
	}
	m.lastHash = hash

	if _, ok := m.seen[hash]; ok {
		m.mu.Unlock()
		slog.Debug("snippet already shown this session", "source", source)
		return
	}
	m.seen[hash] = struct{}{}

	m.mu.Unlock()

	snippet := &Snippet{
		Content:   trimmed,
		Source:    source,
		Timestamp: m.now(),
	}

	// Render request goes out before persistence so a storage failure can
	// never keep a snippet off the screen.
	m.eventChan <- MonitorEvent{Type: "new_item", Snippet: snippet}

	m.saveToDatabase(ctx, snippet)
}

func (m *Monitor) saveToDatabase(ctx context.Context, snippet *Snippet) {
	if m.store == nil {
		slog.Warn("history unavailable, snippet not persisted")
		return
	}

	inserted, err := m.store.SaveEntry(ctx, snippet.Content, snippet.Timestamp)
	if err != nil {
		slog.Error("failed to save clipboard entry", "error", err)
		m.eventChan <- MonitorEvent{Type: "error", Error: err}
		return
	}

	if !inserted {
		slog.Info("snippet already stored for today, skipping insert")
		return
	}

	slog.Debug("saved clipboard entry", "size", len(snippet.Content))
}

// Mode returns the current display mode.
func (m *Monitor) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// ToggleMode flips between Live and Browsing and returns the new mode.
func (m *Monitor) ToggleMode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = m.mode.Toggled()
	slog.Debug("display mode changed", "mode", m.mode)
	return m.mode
}

// ResetSession clears the session dedup set ("clear all"). Persisted rows are
// untouched; a re-copied snippet will show up again.
func (m *Monitor) ResetSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = make(map[string]struct{})
	m.lastHash = ""
}

// SessionSize returns how many distinct snippets the session set holds.
func (m *Monitor) SessionSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}

func (m *Monitor) EventChannel() <-chan MonitorEvent {
	return m.eventChan
}
