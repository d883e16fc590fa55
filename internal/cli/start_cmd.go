package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.Start(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Work session started"),
				formatter.Dim(fmt.Sprintf("(#%d at %s)", session.ID, domain.FormatClockPadded(session.StartTime))))
			return nil
		},
	}
}
