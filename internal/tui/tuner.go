package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/flight"
	"github.com/san-kum/trajsim/internal/viz"
)

const (
	defaultPlotWidth  = 60
	defaultPlotHeight = 14
)

// Model is a bubbletea model that re-simulates on every parameter change.
type Model struct {
	initial  flight.Config
	cfg      flight.Config
	selected int
	traj     *flight.Trajectory
	err      error
	width    int
	height   int
}

func New(cfg flight.Config) Model {
	m := Model{initial: cfg, cfg: cfg, width: defaultPlotWidth, height: defaultPlotHeight}
	m.simulate()
	return m
}

func (m *Model) simulate() {
	m.traj, m.err = flight.Simulate(m.cfg)
}

func (m Model) Config() flight.Config          { return m.cfg }
func (m Model) Trajectory() *flight.Trajectory { return m.traj }
func (m Model) Selected() config.Bound         { return config.Bounds[m.selected] }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 20)
		m.height = max(msg.Height-len(config.Bounds)-16, 6)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.selected = (m.selected + len(config.Bounds) - 1) % len(config.Bounds)
		case "down", "j", "tab":
			m.selected = (m.selected + 1) % len(config.Bounds)
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "r":
			m.cfg = m.initial
			m.simulate()
		}
	}
	return m, nil
}

// adjust moves the selected parameter by dir steps, snapped to the step
// grid. Values that start inside the bound stay inside it; values set
// outside it (from flags or a file) move one step at a time.
func (m *Model) adjust(dir float64) {
	b := config.Bounds[m.selected]
	cur := m.cfg.Params()[b.Param]
	v := math.Round((cur+dir*b.Step)/b.Step) * b.Step
	if cur >= b.Min && cur <= b.Max {
		v = b.Clamp(v)
	}

	next, err := m.cfg.WithParam(b.Param, v)
	if err != nil {
		m.err = err
		return
	}
	m.cfg = next
	m.simulate()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("trajsim · paper airplane tuner"))
	b.WriteString("\n\n")

	params := m.cfg.Params()
	for i, bound := range config.Bounds {
		line := fmt.Sprintf("%-22s %8.3f  [%g – %g]", bound.Label, params[bound.Param], bound.Min, bound.Max)
		if i == m.selected {
			b.WriteString(viz.Selected.Render("▸ " + line))
		} else {
			b.WriteString("  " + viz.Subtle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(viz.StatusError.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.traj != nil {
		xs, ys := m.traj.Points()
		b.WriteString(viz.PathStyle.Render(viz.PlotPath(xs, ys, m.width, m.height).String()))
		b.WriteString(viz.Headline(m.traj))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("↑/↓ select · ←/→ adjust · r reset · q quit"))
	return b.String()
}

// Run starts the tuner on the alternate screen and blocks until it exits.
func Run(cfg flight.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
