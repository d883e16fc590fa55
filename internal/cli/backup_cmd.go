package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions to a backup JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("worklog-backup-%s.json", time.Now().Format("2006-01-02"))
			}

			days, err := app.Backup.Export(context.Background(), out)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Backup written"),
				formatter.Dim(fmt.Sprintf("(%d days to %s)", days, out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Backup file path (default: worklog-backup-YYYY-MM-DD.json)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace, force bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a backup JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if replace && !force {
				ok, err := confirmDestructive(app, "Replace all data? Existing sessions will be removed before the import.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			days, err := app.Backup.Import(context.Background(), args[0], replace)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Backup imported"),
				formatter.Dim(fmt.Sprintf("(%d days from %s)", days, args[0])))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Remove existing data before importing")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt for --replace")

	return cmd
}
