package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Neev4n/vfs-terminal-go/pkg/shell"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")).
			Padding(0, 1)
	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0"))
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Background(lipgloss.Color("0"))
)

type Model struct {
	ctx        context.Context
	interp     *shell.Interpreter
	transcript *shell.Transcript
	title      string
	input      []rune // pending command line
	width      int    // terminal width
	height     int    // terminal height
}

// New builds the TUI around an interpreter that already writes to transcript.
// Anything in the transcript (banner, startup script output) shows up on the
// first frame.
func New(ctx context.Context, interp *shell.Interpreter, transcript *shell.Transcript, title string) Model {
	return Model{
		ctx:        ctx,
		interp:     interp,
		transcript: transcript,
		title:      title,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.Type {

		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			line := string(m.input)
			m.input = nil

			if state, _ := m.interp.Execute(m.ctx, line); state == shell.Exited {
				return m, tea.Quit
			}

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case tea.KeyEsc:
			m.input = nil

		case tea.KeyRunes, tea.KeySpace:
			m.input = append(m.input, msg.Runes...)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		m.width = 80
		m.height = 24
	}

	// title bar and prompt line
	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}

	// Long lines wrap onto extra rows, so scroll by rendered rows rather
	// than by transcript lines.
	var rows []string
	lines := m.transcript.Lines()
	for i := len(lines) - 1; i >= 0 && len(rows) < visible; i-- {
		wrapped := strings.Split(outputStyle.Width(m.width).Render(lines[i]), "\n")
		rows = append(wrapped, rows...)
	}
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}
	blank := outputStyle.Width(m.width).Render("")
	for len(rows) < visible {
		rows = append(rows, blank)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Width(m.width).Render(m.title))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}

	prompt := promptStyle.Render(m.interp.Prompt())
	b.WriteString(prompt + outputStyle.Render(string(m.input)+"█"))

	return b.String()
}

// Input returns the command line typed so far.
func (m Model) Input() string {
	return string(m.input)
}
