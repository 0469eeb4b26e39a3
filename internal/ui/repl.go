package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"addcheck/internal/parser"
)

const historyLimit = 12

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type historyItem struct {
	text string
	err  *parser.RecognitionError
}

type replModel struct {
	input   textinput.Model
	history []historyItem
	width   int
}

// NewReplModel returns a Bubble Tea model for the interactive checker:
// every keystroke re-validates the current line, enter commits it to the
// history.
func NewReplModel() tea.Model {
	in := textinput.New()
	in.Placeholder = "( 1 + 2 ) + 3"
	in.Prompt = "> "
	in.Focus()

	return &replModel{
		input: in,
		width: 80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := m.input.Value()
			if text == "" {
				return m, nil
			}
			m.history = append(m.history, historyItem{
				text: text,
				err:  parser.ValidateText(text),
			})
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
			m.input.Reset()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("addcheck — expression checker"))
	b.WriteString("\n\n")

	for _, item := range m.history {
		b.WriteString(renderVerdict(item, m.width))
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.liveVerdict())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to commit, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// liveVerdict previews the verdict for the line being typed.
func (m *replModel) liveVerdict() string {
	text := m.input.Value()
	if text == "" {
		return pendingStyle.Render("...")
	}
	if err := parser.ValidateText(text); err != nil {
		return errStyle.Render(fmt.Sprintf("✗ %s", err.Error()))
	}
	return okStyle.Render("✓ well-formed")
}

func renderVerdict(item historyItem, width int) string {
	text := truncate(item.text, width/2)
	if item.err != nil {
		return fmt.Sprintf("  %s %s  %s", errStyle.Render("✗"), text, errStyle.Render(item.err.Error()))
	}
	return fmt.Sprintf("  %s %s", okStyle.Render("✓"), text)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
