// Package tui provides the Bubble Tea integration for mazeterm: the
// interactive viewer, the catalog browser, and SSH serving via Wish.
package tui

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anvln/mazeterm/internal/maze"
	"github.com/anvln/mazeterm/internal/render"
	"github.com/anvln/mazeterm/internal/storage"
)

// ViewerConfig configures the interactive maze viewer.
type ViewerConfig struct {
	Width   int        // Grid width in cells
	Height  int        // Grid height in cells
	Start   maze.Coord // Generation start coordinate
	MarkEnd bool       // Tag the far corner as the end cell
	Unicode bool       // Block-character walls
	Seed    int64      // RNG seed for the first generation (0 = time-based)
	MazeDir string     // Directory for saved mazes
}

// ViewerKeyMap defines the key bindings for the viewer.
type ViewerKeyMap struct {
	Regenerate key.Binding
	Save       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the help bar.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Save, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Regenerate, k.Save, k.Quit}}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "regenerate"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for the interactive maze viewer.
// The grid is owned here; generation and the codec borrow it per call.
type Model struct {
	config   ViewerConfig
	grid     *maze.Grid
	seed     int64
	glyphs   render.Glyphs
	store    *storage.Store
	keys     ViewerKeyMap
	help     help.Model
	status   string
	quitting bool
}

// NewModel creates a viewer for a freshly generated maze.
func NewModel(cfg ViewerConfig, store *storage.Store) Model {
	m := newModel(cfg, store)
	m.regenerate(cfg.Seed)
	return m
}

// NewModelForGrid creates a viewer showing an already-loaded grid, for
// example one decoded from a maze file. Pressing space discards it and
// generates a fresh maze with the same dimensions.
func NewModelForGrid(g *maze.Grid, cfg ViewerConfig, store *storage.Store) Model {
	cfg.Width = g.W
	cfg.Height = g.H
	m := newModel(cfg, store)
	m.grid = g
	m.status = "loaded maze"
	return m
}

func newModel(cfg ViewerConfig, store *storage.Store) Model {
	glyphs := render.ASCIIGlyphs()
	if cfg.Unicode {
		glyphs = render.UnicodeGlyphs()
	}

	return Model{
		config: cfg,
		glyphs: glyphs,
		store:  store,
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
	}
}

// regenerate resets the grid and carves a new maze with the given seed
// (0 means time-based).
func (m *Model) regenerate(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.seed = seed

	if m.grid == nil || m.grid.W != m.config.Width || m.grid.H != m.config.Height {
		m.grid = maze.NewGrid(m.config.Width, m.config.Height)
	} else {
		m.grid.Reset()
	}

	maze.Generate(m.config.Start, m.grid, rand.New(rand.NewSource(seed)))

	if m.config.MarkEnd {
		corner := maze.C(m.grid.H-1, m.grid.W-1)
		if cell := m.grid.At(corner); cell.Role == maze.RoleNormal {
			cell.Role = maze.RoleEnd
		}
	}

	m.status = fmt.Sprintf("seed %d", seed)
}

// save encodes the current grid to a timestamped file and records it in
// the catalog.
func (m *Model) save() {
	name := fmt.Sprintf("maze_%s.maze", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.config.MazeDir, name)

	if err := maze.WriteFile(path, m.grid); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort catalog entry, the file is saved regardless
		m.store.SaveMaze(path, m.grid.W, m.grid.H, m.seed)
	}
	m.status = "saved " + path
}

// Grid returns the grid currently shown by the viewer.
func (m Model) Grid() *maze.Grid {
	return m.grid
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Regenerate):
			m.regenerate(0)
		case key.Matches(msg, m.keys.Save):
			m.save()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the maze with a status line and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := render.Size(m.grid)
	screen := render.NewScreen(w, h)
	render.DrawMaze(screen, m.grid, 0, 0, m.glyphs)

	status := fmt.Sprintf("%dx%d  %s", m.grid.W, m.grid.H, m.status)
	return RenderScreen(screen) + "\n" +
		statusStyle.Render(status) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given viewer model.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
