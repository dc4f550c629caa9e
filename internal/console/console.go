package console

import (
	"errors"
	"io"

	"github.com/chzyer/readline"

	"github.com/Neev4n/vfs-terminal-go/pkg/shell"
)

// Console is a line-editing LineSource with history and command-name completion.
type Console struct {
	rl *readline.Instance
}

var _ shell.LineSource = (*Console)(nil)

func NewCompleter() *readline.PrefixCompleter {
	completer := readline.NewPrefixCompleter()
	for _, name := range shell.CommandNames() {
		completer.Children = append(completer.Children, readline.PcItem(name))
	}
	return completer
}

func New(prompt string, stdin io.ReadCloser, stdout, stderr io.Writer) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    NewCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		return nil, err
	}

	return &Console{rl: rl}, nil
}

// ReadLine reads the next command. ctrl+d and ctrl+c on an empty line end input.
func (c *Console) ReadLine() (string, error) {
	line, err := c.rl.Readline()

	if errors.Is(err, readline.ErrInterrupt) {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}

	return line, err
}

// Stdout is where command output should go so it does not fight the prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

func (c *Console) Close() error {
	return c.rl.Close()
}
