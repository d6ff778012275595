package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chrome is the number of lines around the scrollback: title, blank,
// blank, input, blank, help.
const chrome = 6

type interactiveModel struct {
	session  *session
	input    textinput.Model
	output   viewport.Model
	lines    []string
	history  []string
	histIdx  int
	ready    bool
	quitting bool
}

func newInteractiveModel(s *session) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "set greeting {text: hello}"
	ti.Focus()

	return &interactiveModel{
		session: s,
		input:   ti,
		lines:   []string{helpStyle.Render("type help for a list of commands")},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-chrome, 1)
		if !m.ready {
			m.output = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.output.Width = msg.Width
			m.output.Height = height
		}
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.run(line)
			return m, nil

		case "up":
			if m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histIdx < len(m.history)-1 {
				m.histIdx++
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			} else {
				m.histIdx = len(m.history)
				m.input.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) run(line string) {
	m.history = append(m.history, line)
	m.histIdx = len(m.history)

	m.lines = append(m.lines, commandStyle.Render("> "+line))
	out, err := m.session.Exec(line)
	if out != "" {
		m.lines = append(m.lines, resultStyle.Render(out))
	}
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render("error: "+errorText(err)))
	}
	m.refresh()
}

func (m *interactiveModel) refresh() {
	if !m.ready {
		return
	}
	m.output.SetContent(strings.Join(m.lines, "\n"))
	m.output.GotoBottom()
}

func (m *interactiveModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Host Bridge"))
	b.WriteString("\n\n")
	b.WriteString(m.output.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • ↑/↓ history • pgup/pgdown scroll • esc quit"))
	return b.String()
}

func runInteractive(s *session) error {
	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
