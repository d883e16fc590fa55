package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// FormatSessionList renders stored sessions grouped by date, newest date
// first, with each day's sessions sorted by start time. Each date section
// carries a session count and the day's closed total; open sessions show
// a running marker instead of an end time.
func FormatSessionList(byDate map[string][]domain.WorkSession) string {
	if len(byDate) == 0 {
		return Dim("No sessions recorded.") + "\n"
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	var b strings.Builder
	for _, key := range keys {
		sessions := append([]domain.WorkSession(nil), byDate[key]...)
		if len(sessions) == 0 {
			continue
		}
		domain.SortByStart(sessions)

		var dayTotal time.Duration
		for _, s := range sessions {
			dayTotal += s.Duration()
		}

		b.WriteString(Header(key))
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Sessions: %d, Total: %s", len(sessions), FormatDuration(dayTotal))))
		b.WriteString("\n")

		for _, s := range sessions {
			b.WriteString("  " + SessionLine(s))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// SessionLine renders one session as a single display line: id, time span,
// length, then optional description and tag.
func SessionLine(s domain.WorkSession) string {
	start := domain.FormatClockPadded(s.StartTime)

	var span, length string
	if s.IsOpen() {
		span = fmt.Sprintf("%s - %s", start, StyleYellow.Render("now"))
		length = StyleYellow.Render("running")
	} else {
		span = fmt.Sprintf("%s - %s", start, domain.FormatClockPadded(*s.EndTime))
		length = FormatDuration(s.Duration())
	}

	line := fmt.Sprintf("%s %s  %s", Dim(fmt.Sprintf("#%d", s.ID)), span, length)
	if s.Description != "" {
		line += "  " + StyleFg.Render(s.Description)
	}
	if s.Tag != "" {
		line += "  " + StyleBlue.Render(s.Tag)
	}
	return line
}
