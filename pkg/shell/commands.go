package shell

import "sort"

type CommandKind int

const (
	Unknown CommandKind = iota
	Ls
	Cd
	Exit
)

var commandNames = map[string]CommandKind{
	"ls":   Ls,
	"cd":   Cd,
	"exit": Exit,
}

func (k CommandKind) String() string {
	for name, kind := range commandNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

func LookupCommand(name string) CommandKind {
	if kind, ok := commandNames[name]; ok {
		return kind
	}
	return Unknown
}

// CommandNames lists every recognised command, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commandNames))
	for name := range commandNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Command is one tokenized line: the program name and its arguments.
type Command struct {
	Name string
	Args []string
}

func NewCommand(fields []string) Command {
	cmd := Command{Args: []string{}}
	if len(fields) == 0 {
		return cmd
	}

	cmd.Name = fields[0]
	if len(fields) > 1 {
		cmd.Args = fields[1:]
	}
	return cmd
}

func (c Command) Kind() CommandKind {
	return LookupCommand(c.Name)
}
