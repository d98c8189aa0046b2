package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/lifesaver/internal/life"
	"github.com/san-kum/lifesaver/internal/render"
)

// DefaultInterval paces generations when Options leaves Interval unset.
const DefaultInterval = 500 * time.Millisecond

type TickMsg time.Time

// Options configures the screensaver model.
type Options struct {
	Boundary life.Boundary
	Interval time.Duration
	Fill     render.Color
	RNG      *life.RNG
	Logger   *log.Logger
	// Status reserves the bottom row for a generation/population line.
	Status bool
}

// Model renders the grid full screen and advances it once per tick.
type Model struct {
	grid          *life.Grid
	buf           *render.Buffer
	opts          Options
	width, height int
	quitting      bool
}

// NewModel starts with an empty grid; the first WindowSizeMsg seeds it at
// the terminal size.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Fill == "" {
		opts.Fill = render.DefaultFill
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return Model{
		grid: life.New(0, 0, opts.Boundary, opts.RNG),
		buf:  render.NewBuffer(0, 0),
		opts: opts,
	}
}

func (m Model) Grid() *life.Grid { return m.grid }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles quit keys, terminal resizes and generation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.opts.Logger.Info("quit", "generation", m.grid.Generation())
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.grid.Update()
		m.opts.Logger.Debug("tick", "generation", m.grid.Generation(), "population", m.grid.Population())
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	rows := h
	if m.opts.Status {
		rows = max(h-1, 0)
	}
	if rows == m.grid.Height() && w == m.grid.Width() {
		return
	}
	m.grid.Resize(rows, w)
	m.buf.Resize(w, rows)
	m.opts.Logger.Info("resize", "height", rows, "width", w)
}

// View draws the grid over the whole buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	render.Draw(m.grid, m.buf.Bounds(), m.buf, m.opts.Fill)
	frame := m.buf.String()
	if m.opts.Status {
		frame += "\n" + m.statusLine()
	}
	return frame
}

func (m Model) statusLine() string {
	var s strings.Builder
	s.WriteString(statusLabel.Render(" gen "))
	s.WriteString(statusValue.Render(fmt.Sprintf("%d", m.grid.Generation())))
	s.WriteString(statusLabel.Render("  pop "))
	s.WriteString(statusValue.Render(fmt.Sprintf("%d", m.grid.Population())))
	s.WriteString(statusLabel.Render("  " + m.grid.Boundary().String() + "  "))
	s.WriteString(keyHint.Render("q:quit"))
	line := s.String()
	if pad := m.width - lipgloss.Width(line); pad > 0 {
		line += statusBar.Render(strings.Repeat(" ", pad))
	}
	return line
}
