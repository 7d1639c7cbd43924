package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rudrajiii/ClipBoard-Manager-Tool/internal/navigator"
)

var (
	calHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#969696"))
	calEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a7a7a"))
	calDataStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	calTodayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true).Underline(true)
	calTodayData   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true).Underline(true)
)

// RenderCalendar produces a multi-line month grid. Cell styling follows the
// day state: days with history are green, today is underlined.
func RenderCalendar(year int, month time.Month, states map[int]navigator.DayState) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var lines []string
	lines = append(lines, calHeaderStyle.Render("Su Mo Tu We Th Fr Sa"))

	weekdayOffset := int(first.Weekday()) // Sunday == 0
	rows := ((weekdayOffset + daysInMonth) + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIndex := row*7 + col
			day := cellIndex - weekdayOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(day, states[day]))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day int, state navigator.DayState) string {
	text := fmt.Sprintf("%2d", day)

	switch state {
	case navigator.DayHasData:
		return calDataStyle.Render(text)
	case navigator.DayTodayNoData:
		return calTodayStyle.Render(text)
	case navigator.DayTodayHasData:
		return calTodayData.Render(text)
	default:
		return calEmptyStyle.Render(text)
	}
}
