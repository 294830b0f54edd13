package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

const (
	graphWidth  = 80
	graphHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type TickMsg time.Time

// Model steps a fixed-grid integration one step per frame and charts the
// solution as it grows.
type Model struct {
	problem ode.Problem
	stepper integrators.Stepper
	name    string
	fps     int

	x, y    float64
	h       float64
	step    int
	ys      []float64
	running bool
	failed  string
}

func NewModel(p ode.Problem, s integrators.Stepper, name string, fps int) Model {
	return Model{
		problem: p,
		stepper: s,
		name:    name,
		fps:     fps,
		x:       p.X0,
		y:       p.Y0,
		h:       p.H(),
		ys:      append(make([]float64, 0, p.Steps+1), p.Y0),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.x, m.y = m.problem.X0, m.problem.Y0
			m.step = 0
			m.ys = append(m.ys[:0], m.problem.Y0)
			m.failed = ""
			m.running = true
		}
	case TickMsg:
		if m.running && m.failed == "" && m.step < m.problem.Steps {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	y := m.stepper.Step(m.problem.F, m.x, m.y, m.h)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		m.failed = fmt.Sprintf("non-finite state at step %d (x=%.6f)", m.step, m.x)
		m.running = false
		return
	}
	m.step++
	m.x = m.problem.X0 + float64(m.step)*m.h
	m.y = y
	m.ys = append(m.ys, y)
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("odelab live — %s / %s", m.name, m.stepper.Name()))

	data := m.ys
	if len(data) > graphWidth*4 {
		data = data[len(data)-graphWidth*4:]
	}
	graph := graphStyle.Render(asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	))

	stats := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("x")+valueStyle.Render(fmt.Sprintf("%.6f", m.x)),
		labelStyle.Render("y")+valueStyle.Render(fmt.Sprintf("%.6f", m.y)),
		labelStyle.Render("step")+valueStyle.Render(fmt.Sprintf("%d / %d", m.step, m.problem.Steps)),
		labelStyle.Render("h")+valueStyle.Render(fmt.Sprintf("%.6f", m.h)),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, header, graph, stats)
	if m.failed != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, errStyle.Render("integration failed: "+m.failed))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body,
		helpStyle.Render("space pause · r reset · q quit"))
}

// Run starts the live view and blocks until quit.
func Run(p ode.Problem, s integrators.Stepper, name string, fps int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if fps <= 0 {
		fps = 30
	}
	prog := tea.NewProgram(NewModel(p, s, name, fps))
	_, err := prog.Run()
	return err
}
