// Package tui is an interactive electropherogram explorer: adjust buffer
// and instrument parameters and watch the trace re-synthesize live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lfarias/cesim/internal/config"
	"github.com/lfarias/cesim/internal/electro"
	"github.com/lfarias/cesim/internal/mobility"
	"github.com/lfarias/cesim/internal/simulate"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// param is one adjustable knob with its bench-unit bounds.
type param struct {
	name string
	unit string
	min  float64
	max  float64
	step float64
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var params = []param{
	{"pH", "", 2.0, 10.0, 0.1,
		func(c *config.Config) float64 { return c.Buffer.PH },
		func(c *config.Config, v float64) { c.Buffer.PH = v }},
	{"temperature", "°C", 15, 40, 1,
		func(c *config.Config) float64 { return c.Buffer.TemperatureC },
		func(c *config.Config, v float64) { c.Buffer.TemperatureC = v }},
	{"viscosity", "cP", 0.8, 2.5, 0.05,
		func(c *config.Config) float64 { return c.Buffer.ViscosityCP },
		func(c *config.Config, v float64) { c.Buffer.ViscosityCP = v }},
	{"ionic strength", "mM", 10, 200, 5,
		func(c *config.Config) float64 { return c.Buffer.IonicMM },
		func(c *config.Config, v float64) { c.Buffer.IonicMM = v }},
	{"voltage", "kV", 5, 30, 1,
		func(c *config.Config) float64 { return c.Capillary.VoltageKV },
		func(c *config.Config, v float64) { c.Capillary.VoltageKV = v }},
	{"length", "cm", 10, 100, 5,
		func(c *config.Config) float64 { return c.Capillary.LengthCM },
		func(c *config.Config, v float64) { c.Capillary.LengthCM = v }},
}

type model struct {
	cfg      *config.Config
	analytes []electro.Analyte
	variants []string
	variant  int
	selected int
	run      *simulate.Run
	runErr   error
	width    int
}

// NewModel builds the explorer around a starting configuration.
func NewModel(cfg *config.Config) (*model, error) {
	analytes, err := cfg.ResolveAnalytes()
	if err != nil {
		return nil, err
	}

	m := &model{
		cfg:      cfg,
		analytes: analytes,
		variants: mobility.Variants(),
		width:    100,
	}
	for i, name := range m.variants {
		if name == cfg.Model {
			m.variant = i
		}
	}
	m.resimulate()
	return m, nil
}

// Run starts the explorer and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *model) resimulate() {
	md, err := mobility.New(m.variants[m.variant])
	if err != nil {
		m.run, m.runErr = nil, err
		return
	}
	m.cfg.Model = m.variants[m.variant]
	m.run, m.runErr = simulate.Simulate(md, m.analytes, m.cfg.Environment(), m.cfg.Geometry(), m.cfg.Options())
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(params)-1 {
				m.selected++
			}
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "m":
			m.variant = (m.variant + 1) % len(m.variants)
			m.resimulate()
		case "n":
			m.cfg.Synthesis.Noise = !m.cfg.Synthesis.Noise
			m.resimulate()
		}
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	p := params[m.selected]
	v := p.get(m.cfg) + dir*p.step
	if v < p.min {
		v = p.min
	}
	if v > p.max {
		v = p.max
	}
	p.set(m.cfg, v)
	m.resimulate()
}

func (m *model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("cesim: capillary electrophoresis explorer"))
	sb.WriteString("\n\n")

	for i, p := range params {
		line := fmt.Sprintf("%s %s",
			labelStyle.Render(p.name),
			valueStyle.Render(fmt.Sprintf("%.2f %s", p.get(m.cfg), p.unit)))
		if i == m.selected {
			line = activeStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	noise := "off"
	if m.cfg.Synthesis.Noise {
		noise = "on"
	}
	sb.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("model"), valueStyle.Render(m.variants[m.variant])))
	sb.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("noise"), valueStyle.Render(noise)))

	if m.runErr != nil {
		sb.WriteString("\n" + errStyle.Render(m.runErr.Error()) + "\n")
	} else if m.run != nil {
		graphWidth := m.width - 12
		if graphWidth < 40 {
			graphWidth = 40
		}
		graph := asciigraph.Plot(m.run.Curve.Intensity,
			asciigraph.Height(12),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("intensity vs time"),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteByte('\n')

		for _, r := range m.run.Results {
			sb.WriteString(fmt.Sprintf("  %s %s\n",
				labelStyle.Render(r.Analyte.Name),
				valueStyle.Render(fmt.Sprintf("t=%.2fs  μ=%.2f  A=%.1f",
					r.MigrationTime, electro.PracticalMobility(r.Mobility), r.PeakAmplitude))))
		}
	}

	sb.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  m model  n noise  q quit"))
	return sb.String()
}
