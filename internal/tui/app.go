// Package tui is a terminal front-end for the engine: system and
// parameter-set menus, a live braille preview, and a sparkline of the
// Lyapunov estimate as it converges.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/engine"
	"github.com/supermattydomain/AttractorCanvas/internal/viz"
)

const (
	previewCols = 72
	previewRows = 18
	frameTime   = 33 * time.Millisecond
)

type uiState int

const (
	stateMenu uiState = iota
	stateSets
	stateRun
)

type model struct {
	eng *engine.Engine

	state     uiState
	cursor    int
	setCursor int
	colourIdx int

	canvas  *viz.Canvas
	outcome attractor.Outcome
	width   int
	height  int
}

// Run blocks until the user quits.
func Run(eng *engine.Engine) error {
	_, err := tea.NewProgram(newModel(eng), tea.WithAltScreen()).Run()
	return err
}

func newModel(eng *engine.Engine) model {
	return model{
		eng:    eng,
		canvas: viz.NewCanvas(previewCols, previewRows),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameTime, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state == stateRun && m.eng.Running() {
			m.eng.Advance()
			m.canvas.Blit(m.eng.Buffer())
			if !m.eng.Running() {
				m.outcome = m.eng.Outcome()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || (key == "q" && m.state == stateMenu) {
		return m, tea.Quit
	}

	switch m.state {
	case stateMenu:
		return m.handleMenuKey(key)
	case stateSets:
		return m.handleSetsKey(key)
	case stateRun:
		return m.handleRunKey(key)
	}
	return m, nil
}

func (m model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	n := m.eng.Catalog().Len()
	switch key {
	case "up", "k":
		m.cursor = (m.cursor + n - 1) % n
	case "down", "j":
		m.cursor = (m.cursor + 1) % n
	case "enter":
		if err := m.eng.SelectSystem(m.cursor); err == nil {
			m.setCursor = 0
			m.state = stateSets
		}
	}
	return m, nil
}

func (m model) handleSetsKey(key string) (tea.Model, tea.Cmd) {
	sets, err := m.eng.Catalog().ParamSets(m.eng.SystemIndex())
	if err != nil {
		m.state = stateMenu
		return m, nil
	}
	n := len(sets)
	switch key {
	case "esc":
		m.state = stateMenu
	case "up", "k":
		m.setCursor = (m.setCursor + n - 1) % n
	case "down", "j":
		m.setCursor = (m.setCursor + 1) % n
	case "enter":
		if err := m.eng.SelectParamSet(m.setCursor); err == nil {
			m.state = stateRun
			m.outcome = attractor.OutcomeNone
			if err := m.eng.StartRun(); err != nil {
				m.state = stateSets
			}
		}
	}
	return m, nil
}

func (m model) handleRunKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.eng.StopRun()
		m.state = stateSets
	case "q":
		m.eng.StopRun()
		return m, tea.Quit
	case " ":
		if m.eng.Running() {
			m.eng.StopRun()
		} else {
			m.outcome = attractor.OutcomeNone
			m.eng.StartRun()
		}
	case "+", "=":
		m.eng.SetZoom(m.eng.Zoom() * 1.25)
	case "-", "_":
		m.eng.SetZoom(m.eng.Zoom() / 1.25)
	case "left", "right", "up", "down":
		m.pan(key)
	case "c":
		names := colormap.Names()
		m.colourIdx = (m.colourIdx + 1) % len(names)
		if cm, err := colormap.ByName(names[m.colourIdx]); err == nil {
			m.eng.SetColorMapper(cm)
		}
	}
	return m, nil
}

// pan shifts the centre by a tenth of the view span. Takes effect on
// the next run.
func (m model) pan(key string) {
	span := float64(m.eng.Viewport().Width) / m.eng.Zoom() / 10
	c := m.eng.Centre()
	switch key {
	case "left":
		c.X -= span
	case "right":
		c.X += span
	case "up":
		c.Y += span
	case "down":
		c.Y -= span
	}
	m.eng.SetCentre(c)
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateSets:
		return m.viewSets()
	}
	return m.viewRun()
}

func (m model) viewMenu() string {
	s := viz.Title.Render("attractor canvas") + "\n\n"
	for i, name := range m.eng.Catalog().Names() {
		line := "  " + name
		if i == m.cursor {
			line = viz.Accent.Render("> " + name)
		}
		s += line + "\n"
	}
	s += "\n" + viz.Dim.Render("↑/↓ select · enter choose · q quit")
	return s
}

func (m model) viewSets() string {
	sys := m.eng.CurrentSystem()
	s := viz.Title.Render(sys.Name) + viz.Dim.Render("  parameter sets") + "\n\n"
	sets, _ := m.eng.Catalog().ParamSets(m.eng.SystemIndex())
	for j, set := range sets {
		line := fmt.Sprintf("  %-10s %v", set.Name, set.Values)
		if j == m.setCursor {
			line = viz.Accent.Render(">") + line[1:]
		}
		s += line + "\n"
	}
	s += "\n" + viz.Dim.Render("↑/↓ select · enter run · esc back")
	return s
}

func (m model) viewRun() string {
	s := viz.Frame.Render(m.canvas.String()) + "\n"
	s += m.statusLine() + "\n"

	if history := m.eng.EstimateHistory(); len(history) >= 2 {
		s += asciigraph.Plot(history,
			asciigraph.Height(5),
			asciigraph.Width(60),
			asciigraph.Caption("lyapunov estimate"),
		) + "\n"
	}

	s += viz.Dim.Render("space run/stop · arrows pan · +/- zoom · c colour · esc back · q quit")
	return s
}

func (m model) statusLine() string {
	sys := m.eng.CurrentSystem()
	frac := float64(m.eng.IterationIndex()) / float64(m.eng.IterationBudget())

	status := viz.StatusStopped.Render("idle")
	switch {
	case m.eng.Running():
		status = viz.StatusRunning.Render("running")
	case m.outcome == attractor.OutcomeFaulted:
		status = viz.StatusFault.Render("faulted")
	case m.outcome.Terminal():
		status = viz.StatusStopped.Render(m.outcome.String())
	}

	line := fmt.Sprintf("%s  %s  %3.0f%%  zoom %.4g  centre (%.4g, %.4g)",
		viz.Text.Render(sys.Name), status, frac*100,
		m.eng.Zoom(), m.eng.Centre().X, m.eng.Centre().Y)

	if est, ok := m.eng.LyapunovEstimate(); ok {
		line += fmt.Sprintf("  λ ≈ %.5f", est)
	}
	return line
}
