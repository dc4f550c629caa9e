package shell

import (
	"context"
	"fmt"
)

// Builtin handles one recognised command against the session.
type Builtin func(ctx context.Context, args []string, s *Session, d Display) error

// the fixed listing printed by ls; nothing is read from disk
const lsListing = "file1.txt  file2.txt  directory1/"

// CommandTable dispatches commands over the closed set of builtins.
type CommandTable struct {
	builtins map[CommandKind]Builtin
}

var _ Executor = (*CommandTable)(nil)

func NewCommandTable() *CommandTable {
	t := &CommandTable{
		builtins: make(map[CommandKind]Builtin),
	}

	t.builtins[Ls] = builtinLs
	t.builtins[Cd] = builtinCd
	t.builtins[Exit] = builtinExit
	return t
}

func (t *CommandTable) Execute(ctx context.Context, cmd Command, s *Session, d Display) error {

	fn, ok := t.builtins[cmd.Kind()]

	if !ok {
		return &UnknownCommandError{Name: cmd.Name}
	}

	return fn(ctx, cmd.Args, s, d)
}

func echoCommand(d Display, name string, args []string) {
	d.Display(fmt.Sprintf("Command: %s\n", name))
	d.Display(fmt.Sprintf("Arguments: %q\n", args))
}

func builtinLs(_ context.Context, args []string, _ *Session, d Display) error {
	echoCommand(d, "ls", args)
	d.Display(lsListing + "\n")
	return nil
}

func builtinCd(_ context.Context, args []string, s *Session, d Display) error {
	echoCommand(d, "cd", args)

	switch len(args) {
	case 0:
		s.Reset()
	case 1:
		s.Enter(args[0])
	default:
		return &UsageError{Command: "cd", Msg: "too many arguments"}
	}

	d.Display(fmt.Sprintf("Current directory: %s\n", s.Cwd()))
	return nil
}

func builtinExit(_ context.Context, _ []string, _ *Session, _ Display) error {
	return ErrExit
}
