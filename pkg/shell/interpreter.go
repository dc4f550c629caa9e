package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Neev4n/vfs-terminal-go/pkg/shell"

type State int

const (
	Running State = iota
	Aborted
	Exited
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Aborted:
		return "aborted"
	case Exited:
		return "exited"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// BatchResult says how far a script got and why it stopped.
type BatchResult struct {
	LinesProcessed int
	State          State
	FailingLine    *int
	Err            error
}

type Option func(*Interpreter)

func WithParser(p Parser) Option {
	return func(i *Interpreter) { i.parser = p }
}

func WithExecutor(e Executor) Option {
	return func(i *Interpreter) { i.executor = e }
}

func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(i *Interpreter) { i.tracer = t }
}

func WithPrompt(prompt string) Option {
	return func(i *Interpreter) { i.prompt = prompt }
}

// WithEcho controls whether Execute copies the prompt and line to the
// display. Front ends that draw their own prompt turn it off.
func WithEcho(echo bool) Option {
	return func(i *Interpreter) { i.echo = echo }
}

// Interpreter tokenizes and dispatches command lines against a Session. It is
// driven one line at a time in interactive mode or a whole script at a time in
// batch mode, and never touches a UI directly.
type Interpreter struct {
	session  *Session
	display  Display
	parser   Parser
	executor Executor
	logger   *log.Logger
	tracer   trace.Tracer
	prompt   string
	echo     bool
	state    State
}

func NewInterpreter(session *Session, display Display, opts ...Option) *Interpreter {
	i := &Interpreter{
		session:  session,
		display:  display,
		parser:   NewDefaultParser(),
		executor: NewCommandTable(),
		logger:   log.New(io.Discard, "", 0),
		tracer:   otel.Tracer(tracerName),
		prompt:   "$ ",
		echo:     true,
		state:    Running,
	}

	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) Session() *Session {
	return i.session
}

func (i *Interpreter) State() State {
	return i.state
}

func (i *Interpreter) Prompt() string {
	return i.prompt
}

// Execute runs one interactive line. Errors are displayed and returned, but
// leave the interpreter Running; only exit moves it to Exited.
func (i *Interpreter) Execute(ctx context.Context, line string) (State, error) {

	if i.state == Exited {
		return i.state, ErrSessionClosed
	}

	line = strings.TrimSpace(line)
	if i.echo {
		i.display.Display(fmt.Sprintf("\n%s%s\n", i.prompt, line))
	}

	if line == "" {
		return i.state, nil
	}

	ctx, span := i.tracer.Start(ctx, "shell.execute",
		trace.WithAttributes(attribute.String("session.id", i.session.ID)))
	defer span.End()

	err := i.dispatch(ctx, line)

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case errors.Is(err, ErrExit):
		i.state = Exited
		i.logger.Printf("[DEBUG] session %s: exit", i.session.ID)
		span.SetStatus(codes.Ok, "")
		return i.state, nil
	default:
		i.report(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return i.state, err
}

// RunScript replays lines in order. Blank and comment lines are skipped. The
// first line that fails to parse or names an unknown command aborts the
// batch; exit ends it normally. The interactive state is left untouched.
func (i *Interpreter) RunScript(ctx context.Context, lines []ScriptLine) BatchResult {
	ctx, span := i.tracer.Start(ctx, "shell.script",
		trace.WithAttributes(
			attribute.String("session.id", i.session.ID),
			attribute.Int("script.lines", len(lines)),
		))
	defer span.End()

	result := BatchResult{State: Running}

	for _, line := range lines {

		if !line.Significant() {
			continue
		}

		if err := ctx.Err(); err != nil {
			result.State = Aborted
			result.Err = err
			break
		}

		text := strings.TrimSpace(line.Text)
		result.LinesProcessed++
		i.display.Display(fmt.Sprintf("[Script line %d] %s\n", line.Number, text))

		err := i.dispatch(ctx, text)
		if err == nil {
			continue
		}

		if errors.Is(err, ErrExit) {
			i.display.Display("Exiting emulator\n")
			result.State = Exited
			break
		}

		i.report(err)
		number := line.Number
		result.State = Aborted
		result.FailingLine = &number
		result.Err = err
		break
	}

	span.SetAttributes(
		attribute.Int("script.processed", result.LinesProcessed),
		attribute.String("script.state", result.State.String()),
	)
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Err.Error())
	}

	i.logger.Printf("[DEBUG] session %s: script %s after %d lines", i.session.ID, result.State, result.LinesProcessed)
	return result
}

func (i *Interpreter) dispatch(ctx context.Context, line string) error {

	fields, err := i.parser.Parse(line)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		return nil
	}

	cmd := NewCommand(fields)

	ctx, span := i.tracer.Start(ctx, "shell.dispatch",
		trace.WithAttributes(
			attribute.String("command.name", cmd.Name),
			attribute.Int("command.args", len(cmd.Args)),
		))
	defer span.End()

	i.logger.Printf("[DEBUG] session %s: dispatch %s %q", i.session.ID, cmd.Name, cmd.Args)

	err = i.executor.Execute(ctx, cmd, i.session, i.display)
	if err != nil && !errors.Is(err, ErrExit) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (i *Interpreter) report(err error) {
	i.display.Display(fmt.Sprintf("Error: %v\n", err))
}

// RunLoop feeds lines from src into interp until exit, EOF or ctx is done.
// Per-line errors have already been displayed and do not stop the loop.
func RunLoop(ctx context.Context, interp *Interpreter, src LineSource) error {
	for {

		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := src.ReadLine()

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if state, _ := interp.Execute(ctx, line); state == Exited {
			return nil
		}
	}
}
