package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anvln/mazeterm/internal/storage"
)

const browserMaxRecords = 100

// BrowserKeyMap defines the key bindings for the catalog browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the help bar.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Open, k.Delete, k.Quit}}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove entry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing the maze catalog.
type BrowserModel struct {
	store    *storage.Store
	records  []storage.MazeRecord
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	selected *storage.MazeRecord // Set when the user opens a maze
	quitting bool
}

// NewBrowserModel creates a catalog browser backed by the given store.
func NewBrowserModel(store *storage.Store, width int) (BrowserModel, error) {
	m := BrowserModel{
		store: store,
		keys:  DefaultBrowserKeyMap(),
		help:  help.New(),
	}

	columns := []table.Column{
		{Title: "Path", Width: max(24, width-44)},
		{Title: "Size", Width: 10},
		{Title: "Seed", Width: 14},
		{Title: "Created", Width: 16},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("10")).
		Bold(true)

	m.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithStyles(styles),
	)

	if err := m.reload(); err != nil {
		return m, err
	}
	return m, nil
}

// reload refreshes the table rows from the catalog.
func (m *BrowserModel) reload() error {
	records, err := m.store.RecentMazes(browserMaxRecords)
	if err != nil {
		return err
	}
	m.records = records

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			rec.Path,
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			fmt.Sprintf("%d", rec.Seed),
			rec.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	return nil
}

// Selected returns the record the user opened, or nil.
func (m BrowserModel) Selected() *storage.MazeRecord {
	return m.selected
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if cur := m.table.Cursor(); cur >= 0 && cur < len(m.records) {
				rec := m.records[cur]
				m.selected = &rec
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Delete):
			if cur := m.table.Cursor(); cur >= 0 && cur < len(m.records) {
				//nolint:errcheck // Best-effort removal, reload shows the result
				m.store.DeleteMaze(m.records[cur].ID)
				//nolint:errcheck // Stale rows are better than crashing the browser
				m.reload()
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetHeight(msg.Height - 4)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the catalog table.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.records) == 0 {
		return "No mazes in the catalog yet.\n\nRun 'mazeterm gen' to create one.\n\n" + m.help.View(m.keys)
	}
	return m.table.View() + "\n" + m.help.View(m.keys)
}

// RunBrowser shows the catalog browser and returns the record the user
// opened, or nil if they quit.
func RunBrowser(store *storage.Store, width int) (*storage.MazeRecord, error) {
	model, err := NewBrowserModel(store, width)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(BrowserModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
