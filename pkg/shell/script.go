package shell

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/viant/afs"
)

var errInvalidEncoding = errors.New("script is not valid UTF-8")

// ScriptLine is one line of a startup script, numbered from 1.
type ScriptLine struct {
	Number int
	Text   string
}

// Significant reports whether the line should be dispatched: not blank and
// not a # comment.
func (l ScriptLine) Significant() bool {
	trimmed := strings.TrimSpace(l.Text)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

func SplitScript(text string) []ScriptLine {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	lines := make([]ScriptLine, len(raw))
	for i, r := range raw {
		lines[i] = ScriptLine{Number: i + 1, Text: r}
	}
	return lines
}

// ScriptLoader reads scripts from local paths or any afs URL.
type ScriptLoader struct {
	fs afs.Service
}

func NewScriptLoader(service afs.Service) *ScriptLoader {
	if service == nil {
		service = afs.New()
	}
	return &ScriptLoader{fs: service}
}

func (l *ScriptLoader) Load(ctx context.Context, location string) ([]ScriptLine, error) {

	ok, err := l.fs.Exists(ctx, location)
	if err != nil {
		return nil, &ScriptReadError{Path: location, Err: err}
	}
	if !ok {
		return nil, &ScriptReadError{Path: location, Err: fs.ErrNotExist}
	}

	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, &ScriptReadError{Path: location, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &ScriptReadError{Path: location, Err: errInvalidEncoding}
	}

	return SplitScript(string(data)), nil
}

// Replay runs the startup script at location through interp, framing the
// output with start and finish banners. A read failure is displayed and ends
// only the replay.
func Replay(ctx context.Context, interp *Interpreter, loader *ScriptLoader, location string) BatchResult {
	d := interp.display
	d.Display("\n=== Running startup script: " + location + " ===\n")

	lines, err := loader.Load(ctx, location)
	if err != nil {
		interp.report(err)
		interp.logger.Printf("[DEBUG] session %s: startup script: %v", interp.session.ID, err)
		d.Display("=== Startup script finished ===\n")
		return BatchResult{State: Aborted, Err: err}
	}

	result := interp.RunScript(ctx, lines)
	d.Display("=== Startup script finished ===\n")
	return result
}
