package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// addMonthFlag registers the shared --month filter flag on a flag set.
func addMonthFlag(fs *pflag.FlagSet, value *string) {
	fs.StringVar(value, "month", "", "Filter by month (YYYY-MM)")
}

// parseMonthFlag splits a YYYY-MM flag value into month and year.
func parseMonthFlag(value string) (month, year int, err error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: use YYYY-MM", value)
	}
	return int(t.Month()), t.Year(), nil
}
