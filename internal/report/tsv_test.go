package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/report"
)

func threeDaySummary() *contract.MonthlySummary {
	return &contract.MonthlySummary{
		Month: 3,
		Year:  2025,
		Days: []contract.DaySummary{
			{Day: 1},
			{
				Day:   2,
				Since: time.Date(2025, 3, 2, 9, 0, 0, 0, time.Local),
				Till:  time.Date(2025, 3, 2, 17, 30, 0, 0, time.Local),
				Hours: 8.5,
			},
			{Day: 3},
		},
		TotalHours: 8.5,
	}
}

func TestRenderTSV(t *testing.T) {
	got := report.RenderTSV(threeDaySummary())

	want := "Day\tSince\tTill\tHours\n" +
		"1\t\t\t\n" +
		"2\t9:00\t17:30\t8.50\n" +
		"3\t\t\t"
	assert.Equal(t, want, got)
}

func TestRenderTSVUnpaddedHour(t *testing.T) {
	s := threeDaySummary()
	s.Days[1].Since = time.Date(2025, 3, 2, 8, 5, 0, 0, time.Local)

	got := report.RenderTSV(s)
	assert.Contains(t, got, "\t8:05\t", "hours are unpadded, minutes zero-padded")
}
