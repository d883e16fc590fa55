package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// worklogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func worklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDateKey requires a YYYY-MM-DD date string.
func validateDateKey(s string) error {
	if s == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateClockTime requires an H:mm / HH:mm clock time.
func validateClockTime(s string) error {
	if !domain.IsValidClockTime(s) {
		return fmt.Errorf("invalid time format (use HH:mm)")
	}
	return nil
}

// validateOptionalClockTime accepts empty or an H:mm / HH:mm clock time.
func validateOptionalClockTime(s string) error {
	if s == "" {
		return nil
	}
	return validateClockTime(s)
}

// sessionForm builds the manual add/edit form. The input struct carries
// any prefilled values and receives the submitted ones.
func sessionForm(input *service.SessionInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("2025-03-05").
				Value(&input.Date).
				Validate(validateDateKey),
			huh.NewInput().
				Title("Time From (HH:mm)").
				Placeholder("09:30").
				Value(&input.Start).
				Validate(validateClockTime),
			huh.NewInput().
				Title("Time Till (HH:mm, blank if still open)").
				Placeholder("17:00").
				Value(&input.End).
				Validate(validateOptionalClockTime),
			huh.NewInput().
				Title("Description (optional)").
				Placeholder("Worked on feature X").
				Value(&input.Description),
			huh.NewInput().
				Title("Tag (optional)").
				Placeholder("#development").
				Value(&input.Tag),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)
}

// endSessionForm collects the optional description and tag applied when
// closing a session.
func endSessionForm(description, tag *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description (optional)").
				Placeholder("Worked on feature X").
				Value(description),
			huh.NewInput().
				Title("Tag (optional)").
				Placeholder("#development").
				Value(tag),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)
}

// confirmForm builds a yes/no confirmation for destructive actions.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Confirm").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)
}
