package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newEndCmd(app *App) *cobra.Command {
	var description, tag string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "End the most recent open work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no flags on an interactive terminal, offer the
			// optional fields as a form.
			if description == "" && tag == "" && app.interactive() {
				if err := endSessionForm(&description, &tag).Run(); err != nil {
					return err
				}
			}

			session, err := app.Sessions.End(context.Background(), description, tag)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Work session ended"),
				formatter.Dim(fmt.Sprintf("(#%d, %s - %s, %s)",
					session.ID,
					domain.FormatClockPadded(session.StartTime),
					domain.FormatClockPadded(*session.EndTime),
					formatter.FormatDuration(session.Duration()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Session description")
	cmd.Flags().StringVar(&tag, "tag", "", "Session tag")

	return cmd
}
