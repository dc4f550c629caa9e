package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/viant/afs"
	"go.opentelemetry.io/otel/trace"

	"github.com/Neev4n/vfs-terminal-go/internal/config"
	"github.com/Neev4n/vfs-terminal-go/internal/console"
	"github.com/Neev4n/vfs-terminal-go/internal/samples"
	"github.com/Neev4n/vfs-terminal-go/internal/tracing"
	"github.com/Neev4n/vfs-terminal-go/internal/tui"
	"github.com/Neev4n/vfs-terminal-go/pkg/shell"
)

type runFunc func(ctx context.Context, cfg *config.Config, logger *log.Logger, tracer trace.Tracer) error

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr, run))
}

// realMain returns the process exit code so deferred log and trace cleanup
// always runs before the process exits.
func realMain(args []string, stderr io.Writer, runTerminal runFunc) int {

	flags := flag.NewFlagSet("vfs-terminal", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	vfsPath := flags.String("vfs-path", "", "root of the virtual filesystem")
	startupScript := flags.String("startup-script", "", "script to replay before the interactive session")
	frontend := flags.String("frontend", "", "interactive front end: tui or line")
	debug := flags.Bool("debug", false, "log debug output")
	logFile := flags.String("log-file", "", "write logs to this file")
	traceFile := flags.String("trace-file", "", "write OpenTelemetry spans to this file")
	writeSamples := flags.String("write-samples", "", "write the demo scripts into this directory and continue")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	fail := func(err error) int {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fail(err)
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vfs-path":
			cfg.VFSRoot = *vfsPath
		case "startup-script":
			cfg.StartupScript = *startupScript
		case "frontend":
			cfg.Frontend = *frontend
		case "debug":
			cfg.Debug = *debug
		case "log-file":
			cfg.LogFile = *logFile
		case "trace-file":
			cfg.TraceFile = *traceFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *writeSamples != "" {
		locations, err := samples.Write(ctx, afs.New(), *writeSamples)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintln(stderr, "Created scripts:", strings.Join(locations, ", "))
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeLog()

	tracer, shutdown, err := tracing.Setup(cfg.TraceFile)
	if err != nil {
		return fail(err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintln(stderr, "trace shutdown:", err)
		}
	}()

	if err := runTerminal(ctx, cfg, logger, tracer); err != nil {
		logger.Printf("terminal: %v", err)
		return fail(err)
	}
	return 0
}

// newLogger picks the log destination. The TUI owns the screen, so it only
// ever logs to a file.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	noop := func() {}

	if cfg.LogFile != "" {
		if cfg.Frontend == config.FrontendTUI {
			f, err := tea.LogToFile(cfg.LogFile, "vfs-terminal")
			if err != nil {
				return nil, nil, err
			}
			return log.Default(), func() { f.Close() }, nil
		}

		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
	}

	if cfg.Debug && cfg.Frontend == config.FrontendLine {
		return log.New(os.Stderr, "", 0), noop, nil
	}

	return log.New(io.Discard, "", 0), noop, nil
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, tracer trace.Tracer) error {

	session := shell.NewSession(cfg.VFSRoot)

	logger.Printf("[DEBUG] VFS Path: %s", cfg.VFSRoot)
	logger.Printf("[DEBUG] Startup Script: %s", cfg.StartupScript)
	logger.Printf("[DEBUG] Current Directory: %s", session.Cwd())

	switch cfg.Frontend {
	case config.FrontendLine:
		return runLine(ctx, cfg, session, logger, tracer)
	default:
		return runTUI(ctx, cfg, session, logger, tracer)
	}
}

func banner(d shell.Display) {
	d.Display("Welcome to the terminal emulator!\n")
	d.Display("Available commands: " + strings.Join(shell.CommandNames(), ", ") + "\n")
}

func runTUI(ctx context.Context, cfg *config.Config, session *shell.Session, logger *log.Logger, tracer trace.Tracer) error {
	transcript := &shell.Transcript{}
	interp := shell.NewInterpreter(session, transcript,
		shell.WithPrompt(cfg.Prompt()),
		shell.WithLogger(logger),
		shell.WithTracer(tracer),
	)

	banner(transcript)

	if cfg.StartupScript != "" {
		shell.Replay(ctx, interp, shell.NewScriptLoader(afs.New()), cfg.StartupScript)
	}

	p := tea.NewProgram(tui.New(ctx, interp, transcript, cfg.Title()), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runLine(ctx context.Context, cfg *config.Config, session *shell.Session, logger *log.Logger, tracer trace.Tracer) error {
	c, err := console.New(cfg.Prompt(), os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer c.Close()

	display := shell.WriterDisplay{W: c.Stdout()}
	interp := shell.NewInterpreter(session, display,
		shell.WithPrompt(cfg.Prompt()),
		shell.WithEcho(false),
		shell.WithLogger(logger),
		shell.WithTracer(tracer),
	)

	banner(display)

	if cfg.StartupScript != "" {
		shell.Replay(ctx, interp, shell.NewScriptLoader(afs.New()), cfg.StartupScript)
	}

	if err := shell.RunLoop(ctx, interp, c); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
