package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/domain"
)

// FormatMonthlySummary renders the aggregated month as a terminal table:
// one row per calendar day, blanks marking non-working days, and a grand
// total line. The same aggregate feeds the TSV and HTML exports.
func FormatMonthlySummary(s *contract.MonthlySummary) string {
	headers := []string{"DAY", "SINCE", "TILL", "HOURS"}
	rows := make([][]string, 0, len(s.Days))
	for _, d := range s.Days {
		if !d.Worked() {
			rows = append(rows, []string{Dim(fmt.Sprintf("%d", d.Day)), "", "", ""})
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.Day),
			StyleGreen.Render(domain.FormatClock(d.Since)),
			StyleGreen.Render(domain.FormatClock(d.Till)),
			FormatHours(d.Hours),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Bold(fmt.Sprintf("Total Hours: %s", FormatHours(s.TotalHours))))
	b.WriteString("\n")

	return RenderBox(fmt.Sprintf("Work Summary %d/%d", s.Month, s.Year), b.String())
}
