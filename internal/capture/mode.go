package capture

// Mode is the display mode of the application. Capture only runs in ModeLive:
// while the user browses historical days, clipboard notifications are still
// delivered but must not record anything.
type Mode int

const (
	ModeLive Mode = iota
	ModeBrowsing
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeBrowsing:
		return "browsing"
	default:
		return "unknown"
	}
}

// Toggled returns the other mode. The history toggle is the only transition
// between the two states.
func (m Mode) Toggled() Mode {
	if m == ModeLive {
		return ModeBrowsing
	}
	return ModeLive
}
