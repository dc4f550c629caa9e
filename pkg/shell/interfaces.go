package shell

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type Executor interface {
	Execute(ctx context.Context, cmd Command, s *Session, d Display) error
}

// Display is the append-only output surface the interpreter writes to.
type Display interface {
	Display(text string)
}

// LineSource yields one command line per call and io.EOF when there are no more.
type LineSource interface {
	ReadLine() (string, error)
}

// WriterDisplay renders output to any io.Writer.
type WriterDisplay struct {
	W io.Writer
}

func (d WriterDisplay) Display(text string) {
	fmt.Fprint(d.W, text)
}

// Transcript keeps everything displayed in memory.
type Transcript struct {
	b strings.Builder
}

func (t *Transcript) Display(text string) {
	t.b.WriteString(text)
}

func (t *Transcript) String() string {
	return t.b.String()
}

// Lines returns the transcript split on newlines, without the trailing empty line.
func (t *Transcript) Lines() []string {
	s := strings.TrimSuffix(t.b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (t *Transcript) Reset() {
	t.b.Reset()
}
