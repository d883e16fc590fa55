package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/domain"
)

// RenderTSV renders a monthly summary as tab-separated text suitable for
// clipboard / spreadsheet paste. One line per calendar day; non-working
// days keep their row with blank Since/Till/Hours cells.
func RenderTSV(s *contract.MonthlySummary) string {
	lines := make([]string, 0, len(s.Days)+1)
	lines = append(lines, "Day\tSince\tTill\tHours")

	for _, d := range s.Days {
		var since, till, hours string
		if d.Worked() {
			since = domain.FormatClock(d.Since)
			till = domain.FormatClock(d.Till)
			hours = fmt.Sprintf("%.2f", d.Hours)
		}
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s\t%s", d.Day, since, till, hours))
	}

	return strings.Join(lines, "\n")
}
