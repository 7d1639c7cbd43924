// Package shell is the terminal rendition of the presentation surface. The
// core hands it snippets, day listings and calendar cell states; everything
// visual stays in here.
package shell

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/navigator"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399")).
			Bold(true)

	snippetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4b4b4b")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#969696"))
)

const placeholderText = "Nothing Here\nYou'll see your clipboard history once you copied something.."

type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// ShowSnippet renders one freshly captured snippet.
func (t *Terminal) ShowSnippet(text string) {
	fmt.Fprintln(t.out, snippetStyle.Render(text))
}

// ShowToday renders the live view: today's snippets newest-first, or the
// placeholder when nothing has been captured yet.
func (t *Terminal) ShowToday(items []string) {
	fmt.Fprintln(t.out, headingStyle.Render("Today's Clipboard History"))
	if len(items) == 0 {
		t.ShowPlaceholder()
		return
	}
	for _, item := range items {
		fmt.Fprintln(t.out, snippetStyle.Render(item))
	}
}

// ShowDay renders a historical day in chronological order, or an explicit
// no-entries indicator for an empty day.
func (t *Terminal) ShowDay(date string, items []string) {
	fmt.Fprintln(t.out, headingStyle.Render("Clipboard History Of "+date))
	if len(items) == 0 {
		fmt.Fprintln(t.out, mutedStyle.Render("No clipboard items found for "+date))
		return
	}
	for _, item := range items {
		fmt.Fprintln(t.out, snippetStyle.Render(item))
	}
}

// ShowCalendar renders the month grid with one styled cell per day.
func (t *Terminal) ShowCalendar(label string, year int, month time.Month, states map[int]navigator.DayState) {
	fmt.Fprintln(t.out, headingStyle.Render(label))
	fmt.Fprintln(t.out, RenderCalendar(year, month, states))
	fmt.Fprintln(t.out, mutedStyle.Render("prev/next to change month, `day N` to open a day"))
}

func (t *Terminal) ShowPlaceholder() {
	fmt.Fprintln(t.out, mutedStyle.Render(placeholderText))
}

// ShowRestoring displays the cosmetic restore indicator.
func (t *Terminal) ShowRestoring() {
	fmt.Fprintln(t.out, mutedStyle.Render("Restoring..."))
}

func (t *Terminal) DoneRestoring() {
	fmt.Fprintln(t.out, mutedStyle.Render("Restored."))
}

// Clear marks the visible list as emptied. A terminal stream cannot unprint,
// so this prints a separator and the placeholder.
func (t *Terminal) Clear() {
	fmt.Fprintln(t.out, mutedStyle.Render("--- cleared ---"))
	t.ShowPlaceholder()
}
