package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSessionsBrowseCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse sessions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}

			m := newBrowseModel(app)
			if monthFlag != "" {
				month, year, err := parseMonthFlag(monthFlag)
				if err != nil {
					return err
				}
				m.filtered = true
				m.month, m.year = month, year
			}

			_, err := tea.NewProgram(m).Run()
			return err
		},
	}

	addMonthFlag(cmd.Flags(), &monthFlag)

	return cmd
}

// browseKeys defines the key bindings of the session browser.
type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

var browseKeys = browseKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseRow is one selectable line: a session together with its owning
// date partition key.
type browseRow struct {
	DateKey string
	Session domain.WorkSession
}

type browseRowsMsg struct {
	rows []browseRow
	err  error
}

// browseModel is the bubbletea model for the interactive session browser.
type browseModel struct {
	app *App

	filtered    bool
	month, year int

	rows       []browseRow
	cursor     int
	confirming bool
	status     string
	err        error
}

func newBrowseModel(app *App) browseModel {
	return browseModel{app: app}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadRows
}

// loadRows fetches the stored sessions and flattens them into display
// order: newest date first, each day's sessions by start time.
func (m browseModel) loadRows() tea.Msg {
	ctx := context.Background()

	var byDate map[string][]domain.WorkSession
	var err error
	if m.filtered {
		byDate, err = m.app.Sessions.ListMonth(ctx, m.month, m.year)
	} else {
		byDate, err = m.app.Sessions.List(ctx)
	}
	if err != nil {
		return browseRowsMsg{err: err}
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	var rows []browseRow
	for _, k := range keys {
		sessions := append([]domain.WorkSession(nil), byDate[k]...)
		domain.SortByStart(sessions)
		for _, s := range sessions {
			rows = append(rows, browseRow{DateKey: k, Session: s})
		}
	}
	return browseRowsMsg{rows: rows}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case browseRowsMsg:
		m.err = msg.err
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			switch {
			case key.Matches(msg, browseKeys.Confirm):
				m.confirming = false
				return m, m.deleteSelected
			case key.Matches(msg, browseKeys.Cancel), key.Matches(msg, browseKeys.Quit):
				m.confirming = false
				m.status = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, browseKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, browseKeys.Delete):
			if len(m.rows) > 0 {
				row := m.rows[m.cursor]
				m.confirming = true
				m.status = fmt.Sprintf("Remove %s #%d? (y/n)", row.DateKey, row.Session.ID)
			}
		}
	}

	return m, nil
}

// deleteSelected removes the session under the cursor and reloads.
func (m browseModel) deleteSelected() tea.Msg {
	if len(m.rows) == 0 {
		return nil
	}
	row := m.rows[m.cursor]
	if err := m.app.Sessions.Remove(context.Background(), row.DateKey, row.Session.ID); err != nil {
		return browseRowsMsg{rows: m.rows, err: err}
	}
	return m.loadRows()
}

func (m browseModel) View() string {
	var b strings.Builder

	title := "Sessions"
	if m.filtered {
		title = fmt.Sprintf("Sessions %d-%02d", m.year, m.month)
	}
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("No sessions recorded."))
		b.WriteString("\n")
	}

	prevDate := ""
	for i, row := range m.rows {
		if row.DateKey != prevDate {
			if prevDate != "" {
				b.WriteString("\n")
			}
			b.WriteString(formatter.StyleBold.Render(row.DateKey))
			b.WriteString("\n")
			prevDate = row.DateKey
		}

		line := formatter.SessionLine(row.Session)
		if i == m.cursor {
			line = formatter.StyleHeader.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status))
	} else {
		b.WriteString(formatter.Dim("↑/↓ move · d delete · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}
