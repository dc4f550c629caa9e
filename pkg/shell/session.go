package shell

import (
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Session is the interpreter's only mutable state: a current directory inside
// a virtual root. Neither path is ever checked against a real filesystem.
type Session struct {
	ID   string
	root string
	cwd  string
}

func NewSession(root string) *Session {
	root = normalize(root)
	if root == "" || root == "." {
		root = "/"
	}

	return &Session{
		ID:   uuid.New().String(),
		root: root,
		cwd:  root,
	}
}

// normalize turns native separators into slashes and cleans the result, so
// a Windows working directory or a trailing slash behaves like any other root.
func normalize(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// isAbs also accepts drive-letter paths such as C:/Users.
func isAbs(p string) bool {
	if path.IsAbs(p) {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && unicode.IsLetter(rune(p[0]))
}

func (s *Session) Root() string {
	return s.root
}

func (s *Session) Cwd() string {
	return s.cwd
}

// Reset moves back to the virtual root.
func (s *Session) Reset() {
	s.cwd = s.root
}

// Enter changes into name relative to the current directory. ".." moves to the
// parent component and stays put at the top. An absolute name replaces the
// current directory; an empty name changes nothing.
func (s *Session) Enter(name string) {

	if name == "" {
		return
	}

	if name == ".." {
		if parent := path.Dir(s.cwd); parent != "." {
			s.cwd = parent
		}
		return
	}

	name = normalize(name)
	if isAbs(name) {
		s.cwd = name
		return
	}

	s.cwd = path.Join(s.cwd, name)
}
