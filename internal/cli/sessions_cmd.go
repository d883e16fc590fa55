package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List and manage recorded work sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsAddCmd(app),
		newSessionsEditCmd(app),
		newSessionsRemoveCmd(app),
		newSessionsClearCmd(app),
		newSessionsBrowseCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions grouped by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var byDate map[string][]domain.WorkSession
			var err error
			if monthFlag != "" {
				month, year, parseErr := parseMonthFlag(monthFlag)
				if parseErr != nil {
					return parseErr
				}
				byDate, err = app.Sessions.ListMonth(ctx, month, year)
			} else {
				byDate, err = app.Sessions.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSessionList(byDate))
			return nil
		},
	}

	addMonthFlag(cmd.Flags(), &monthFlag)

	return cmd
}

func newSessionsAddCmd(app *App) *cobra.Command {
	var input service.SessionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a session manually (corrections, backfill)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Date == "" && input.Start == "" && app.interactive() {
				if err := sessionForm(&input).Run(); err != nil {
					return err
				}
			}

			session, err := app.Sessions.Add(context.Background(), input)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Session added"),
				formatter.Dim(fmt.Sprintf("(%s #%d)", input.Date, session.ID)))
			return nil
		},
	}

	addSessionInputFlags(cmd, &input)

	return cmd
}

func newSessionsEditCmd(app *App) *cobra.Command {
	var input service.SessionInput

	cmd := &cobra.Command{
		Use:   "edit DATE ID",
		Short: "Edit a stored session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dateKey := args[0]
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[1])
			}

			if input.Date == "" && input.Start == "" && app.interactive() {
				prefillSessionInput(ctx, app, dateKey, id, &input)
				if err := sessionForm(&input).Run(); err != nil {
					return err
				}
			}

			session, err := app.Sessions.Edit(ctx, dateKey, id, input)
			if err != nil {
				return err
			}

			note := fmt.Sprintf("(%s #%d)", input.Date, session.ID)
			if input.Date != dateKey {
				note = fmt.Sprintf("(moved %s #%d -> %s #%d)", dateKey, id, input.Date, session.ID)
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("Session updated"), formatter.Dim(note))
			return nil
		},
	}

	addSessionInputFlags(cmd, &input)

	return cmd
}

func newSessionsRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove DATE ID",
		Short: "Remove a single session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[1])
			}

			if !force {
				ok, err := confirmDestructive(app, "Remove session?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := app.Sessions.Remove(context.Background(), args[0], id); err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Session removed"),
				formatter.Dim(fmt.Sprintf("(%s #%d)", args[0], id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func newSessionsClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirmDestructive(app, "Remove all data? This permanently removes every stored session.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := app.Sessions.RemoveAll(context.Background()); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("All data removed"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

// addSessionInputFlags registers the manual-entry field flags shared by
// add and edit.
func addSessionInputFlags(cmd *cobra.Command, input *service.SessionInput) {
	cmd.Flags().StringVar(&input.Date, "date", "", "Session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Start, "start", "", "Start time (HH:mm)")
	cmd.Flags().StringVar(&input.End, "end", "", "End time (HH:mm, omit to leave open)")
	cmd.Flags().StringVar(&input.Description, "description", "", "Session description")
	cmd.Flags().StringVar(&input.Tag, "tag", "", "Session tag")
}

// prefillSessionInput loads the addressed session's current values into the
// form input. A lookup failure just leaves the form blank; the edit itself
// will surface the real error.
func prefillSessionInput(ctx context.Context, app *App, dateKey string, id int, input *service.SessionInput) {
	sessions, err := app.Sessions.Day(ctx, dateKey)
	if err != nil {
		return
	}
	for _, s := range sessions {
		if s.ID != id {
			continue
		}
		input.Date = dateKey
		input.Start = domain.FormatClockPadded(s.StartTime)
		if s.EndTime != nil {
			input.End = domain.FormatClockPadded(*s.EndTime)
		}
		input.Description = s.Description
		input.Tag = s.Tag
		return
	}
}

// confirmDestructive gates irreversible operations. On a non-interactive
// stdin the prompt cannot run, so the caller must pass --force.
func confirmDestructive(app *App, title string) (bool, error) {
	if !app.interactive() {
		return false, fmt.Errorf("refusing to run without confirmation; pass --force")
	}
	var ok bool
	if err := confirmForm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}
