package capture

import (
	"time"
)

// Snippet is one accepted piece of clipboard text, already trimmed.
type Snippet struct {
	Content   string
	Source    string
	Timestamp time.Time
}

type MonitorEvent struct {
	Type    string
	Snippet *Snippet
	Error   error
}
