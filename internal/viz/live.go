package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numint/internal/ode"
)

const (
	historyCapacity = 600
	chartWidth      = 64
	chartHeight     = 14
	maxSpeed        = 256
)

type TickMsg time.Time

// Model steps an integration in real time and charts the trajectory.
type Model struct {
	sys     ode.System
	stepper ode.Stepper
	name    string

	state   ode.State
	initial ode.State
	t, dt   float64
	delta0  float64

	running  bool
	selected int
	speed    int
	failed   error

	history [][]float64
	times   []float64
	energy  []float64
}

// NewModel initializes the live view around a system, a stepper, and an
// initial state. Adaptive steppers adjust dt between frames on their own.
func NewModel(sys ode.System, st ode.Stepper, name string, x0 ode.State, dt float64) Model {
	return Model{
		sys:     sys,
		stepper: st,
		name:    name,
		state:   x0.Clone(),
		initial: x0.Clone(),
		dt:      dt,
		delta0:  dt,
		running: true,
		speed:   4,
		history: make([][]float64, 0, historyCapacity),
		times:   make([]float64, 0, historyCapacity),
		energy:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the integration.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.failed == nil {
				m.running = !m.running
			}
		case "r":
			m.reset()
		case "tab":
			m.selected = (m.selected + 1) % len(m.state)
		case "up", "k":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "down", "j":
			if m.speed > 1 {
				m.speed /= 2
			}
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.speed && m.running; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the integration by one accepted step.
func (m *Model) step() {
	if ad, ok := m.stepper.(ode.AdaptiveStepper); ok {
		next, took, err := ad.StepAdaptive(m.sys, m.state, m.t, m.dt)
		if err != nil {
			m.failed = err
			m.running = false
			return
		}
		m.state = next
		m.t += took
		m.dt = ad.Delta()
	} else {
		m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
		m.t += m.dt
	}

	if !m.state.IsValid() {
		m.failed = ode.ErrInvalidState
		m.running = false
		return
	}

	m.history = append(m.history, m.state.Clone())
	m.times = append(m.times, m.t)
	if h, ok := m.sys.(ode.Hamiltonian); ok {
		m.energy = append(m.energy, h.Energy(m.state))
	}
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
		m.times = m.times[1:]
	}
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}
}

// reset restores the initial state and step size.
func (m *Model) reset() {
	m.state = m.initial.Clone()
	m.t = 0
	m.dt = m.delta0
	m.failed = nil
	m.running = true
	m.history = m.history[:0]
	m.times = m.times[:0]
	m.energy = m.energy[:0]
	m.stepper.Reset()
}

// View renders the chart and the stats panel side by side.
func (m Model) View() string {
	status := statusRunning.Render("RUNNING")
	if m.failed != nil {
		status = statusFailed.Render("FAILED: " + m.failed.Error())
	} else if !m.running {
		status = statusPaused.Render("PAUSED")
	}

	chart := "collecting samples..."
	if len(m.history) > 1 {
		series := make([]float64, len(m.history))
		for i, row := range m.history {
			series[i] = row[m.selected]
		}
		chart = asciigraph.Plot(series,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(fmt.Sprintf("x%d", m.selected)),
		)
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Delta") + valueStyle.Render(fmt.Sprintf("%.3e", m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.stepper.Steps())) + "\n")
	if len(m.energy) > 0 {
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.energy[len(m.energy)-1])) + "\n")
	}
	s.WriteString(labelStyle.Render("Component") + activeStyle.Render(fmt.Sprintf("x%d", m.selected)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d steps/frame", m.speed)) + "\n")
	if len(m.times) > 2 {
		deltas := make([]float64, len(m.times)-1)
		for i := 1; i < len(m.times); i++ {
			deltas[i-1] = m.times[i] - m.times[i-1]
		}
		s.WriteString("\n" + labelStyle.Render("Step sizes") + "\n" + Sparkline(deltas, 24) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Component ↑↓:Speed"))

	chartView := chartStyle.Render(chart)
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, chartView, statsView)
}
