// Package tui provides the interactive coefficient-entry mode: type the
// numerator and denominator coefficient lists, synthesize, and see the
// resulting ladder without leaving the terminal.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avetk/ladsyn/internal/poly"
	"github.com/avetk/ladsyn/internal/synth"
	"github.com/avetk/ladsyn/internal/viz"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)

const (
	fieldNum = iota
	fieldDen
)

type model struct {
	fields [2]string
	cursor int
	ladder *synth.Ladder
	err    error
	width  int
}

func newModel() model {
	return model{width: 80}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "up":
		m.cursor = (m.cursor + 1) % 2
	case "backspace":
		f := m.fields[m.cursor]
		if len(f) > 0 {
			m.fields[m.cursor] = f[:len(f)-1]
		}
	case "enter":
		if m.cursor == fieldNum {
			m.cursor = fieldDen
			return m, nil
		}
		m.synthesize()
	default:
		s := msg.String()
		if len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == ',' || c == ' ' {
				m.fields[m.cursor] += s
			}
		}
	}
	return m, nil
}

func (m *model) synthesize() {
	m.ladder, m.err = nil, nil

	num, err := parseCoeffs(m.fields[fieldNum])
	if err != nil {
		m.err = fmt.Errorf("numerator: %w", err)
		return
	}
	den, err := parseCoeffs(m.fields[fieldDen])
	if err != nil {
		m.err = fmt.Errorf("denominator: %w", err)
		return
	}

	m.ladder, m.err = synth.Synthesize(poly.New(num), poly.New(den))
}

func parseCoeffs(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no coefficients")
	}
	return out, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(viz.TitleStyle.Render("ladsyn: cauer ladder synthesis") + "\n\n")

	labels := [2]string{"numerator  (a0,a1,...)", "denominator (b0,b1,...)"}
	for i, label := range labels {
		marker := "  "
		style := labelStyle
		if i == m.cursor {
			marker = "> "
			style = activeStyle
		}
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", marker, style.Render(label), m.fields[i]))
	}

	sb.WriteString("\n")
	switch {
	case m.err != nil:
		sb.WriteString(viz.ErrStyle.Render("error: "+m.err.Error()) + "\n")
	case m.ladder != nil:
		sb.WriteString(viz.Summary(m.ladder.Z, m.ladder.Y, m.ladder.Kind) + "\n\n")
		sb.WriteString(viz.Ladder(m.ladder.Z, m.ladder.Y) + "\n")
	}

	sb.WriteString("\n" + hintStyle.Render("tab: switch field  enter: synthesize  esc: quit") + "\n")
	return sb.String()
}

// Run starts the interactive synthesis session.
func Run() error {
	_, err := tea.NewProgram(newModel()).Run()
	return err
}
