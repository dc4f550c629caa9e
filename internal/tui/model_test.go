package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neev4n/vfs-terminal-go/pkg/shell"
)

func newModel() (Model, *shell.Transcript, *shell.Interpreter) {
	transcript := &shell.Transcript{}
	interp := shell.NewInterpreter(shell.NewSession("/vfs"), transcript, shell.WithPrompt("user@host:~$ "))
	return New(context.Background(), interp, transcript, "Emulator - [user@host]"), transcript, interp
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()

	for _, r := range line {
		var next tea.Model
		if r == ' ' {
			next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		} else {
			next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
		m = next.(Model)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestEnterDispatchesLine(t *testing.T) {
	m, transcript, interp := newModel()

	m, cmd := typeLine(t, m, `cd "folder with spaces"`)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Input())
	assert.Equal(t, "/vfs/folder with spaces", interp.Session().Cwd())
	assert.Contains(t, transcript.String(), "user@host:~$ cd \"folder with spaces\"\n")
}

func TestUnknownCommandKeepsRunning(t *testing.T) {
	m, transcript, interp := newModel()

	_, cmd := typeLine(t, m, "dir")
	assert.Nil(t, cmd)
	assert.Equal(t, shell.Running, interp.State())
	assert.Contains(t, transcript.String(), "Error: command 'dir' not found")
}

func TestExitQuits(t *testing.T) {
	m, _, _ := newModel()

	_, cmd := typeLine(t, m, "exit")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEditingKeys(t *testing.T) {
	m, _, _ := newModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lsx")})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	assert.Equal(t, "ls", m.Input())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Empty(t, m.Input())
}

func TestViewShowsLatestOutput(t *testing.T) {
	m, transcript, _ := newModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 6})
	m = next.(Model)

	for i := 0; i < 10; i++ {
		transcript.Display("old line\n")
	}
	transcript.Display("newest line\n")

	view := m.View()
	assert.Contains(t, view, "Emulator - [user@host]")
	assert.Contains(t, view, "newest line")
	assert.Contains(t, view, "user@host:~$")
	assert.Equal(t, 6, len(strings.Split(view, "\n")))
}

func TestViewWrapsLongLines(t *testing.T) {
	m, transcript, _ := newModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})
	m = next.(Model)

	for i := 0; i < 5; i++ {
		transcript.Display("old line\n")
	}
	transcript.Display("Arguments: alpha beta gamma delta epsilon zeta omega\n")
	transcript.Display("tail\n")

	view := m.View()
	rows := strings.Split(view, "\n")
	assert.Equal(t, 6, len(rows))
	assert.Contains(t, view, "Arguments:")
	assert.Contains(t, view, "zeta omega")
	assert.Contains(t, view, "tail")

	// two wrapped rows and the tail leave room for a single old line
	assert.Equal(t, 1, strings.Count(view, "old line"))
}
