package cli

import (
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Summary  service.SummaryService
	Backup   service.BackupService

	// IsInteractive reports whether stdin is a terminal, gating forms
	// and confirmation prompts.
	IsInteractive func() bool
}

// interactive is a nil-safe accessor for App.IsInteractive.
func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worklog",
		Short: "Personal work session tracker and monthly summary generator",
	}

	root.AddCommand(
		newStartCmd(app),
		newEndCmd(app),
		newSessionsCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
