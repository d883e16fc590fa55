package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/report"
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var month, year int
	var copyTSV, openHTML bool
	var outDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate a monthly work summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d: use 1-12", month)
			}
			if year < 1000 || year > 9999 {
				return fmt.Errorf("invalid year %d: use a 4-digit year", year)
			}

			summary, err := app.Summary.Aggregate(context.Background(), month, year)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatMonthlySummary(summary))
			fmt.Println()

			if copyTSV {
				if err := clipboard.WriteAll(report.RenderTSV(summary)); err != nil {
					return fmt.Errorf("copying summary to clipboard: %w", err)
				}
				fmt.Println(formatter.Dim("Summary copied to clipboard"))
			}

			if openHTML || outDir != "" {
				path, err := report.WriteHTMLFile(outDir, summary)
				if err != nil {
					return err
				}
				fmt.Println(formatter.Dim(fmt.Sprintf("Summary written to %s", path)))
				if openHTML {
					if err := browser.OpenFile(path); err != nil {
						return fmt.Errorf("opening summary in browser: %w", err)
					}
				}
			}

			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year (YYYY)")
	cmd.Flags().BoolVar(&copyTSV, "copy", false, "Copy the tab-separated summary to the clipboard")
	cmd.Flags().BoolVar(&openHTML, "open", false, "Write the HTML summary and open it in the browser")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for the HTML export (default: system temp dir)")

	return cmd
}
