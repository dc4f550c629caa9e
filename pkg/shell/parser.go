package shell

import (
	"io"
	"strings"
	"unicode"
)

type Parser interface {
	Parse(line string) ([]string, error)
}

// DefaultParser splits a command line on whitespace. Single and double quoted
// runs are kept together with the quotes stripped; backslash escapes follow
// POSIX shell rules.
type DefaultParser struct {
	newReader func(string) io.RuneReader
}

func NewDefaultParser() *DefaultParser {
	return &DefaultParser{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
	}
}

type quoteState int

const (
	stateOutside quoteState = iota
	stateSingleQuote
	stateDoubleQuote
)

// lexer holds the in-progress token and everything emitted so far. quoted
// marks a token that opened a quote, so "" still yields an empty token.
type lexer struct {
	state    quoteState
	escaping bool
	quoted   bool
	current  strings.Builder
	tokens   []string
}

func (lx *lexer) emit() {
	if lx.current.Len() == 0 && !lx.quoted {
		return
	}
	lx.tokens = append(lx.tokens, lx.current.String())
	lx.current.Reset()
	lx.quoted = false
}

func (lx *lexer) outside(ch rune) {

	if lx.escaping {
		lx.current.WriteRune(ch)
		lx.escaping = false
		return
	}

	switch {
	case unicode.IsSpace(ch):
		lx.emit()
	case ch == '\'':
		lx.state = stateSingleQuote
		lx.quoted = true
	case ch == '"':
		lx.state = stateDoubleQuote
		lx.quoted = true
	case ch == '\\':
		lx.escaping = true
	default:
		lx.current.WriteRune(ch)
	}
}

func (lx *lexer) singleQuoted(ch rune) {
	if ch == '\'' {
		lx.state = stateOutside
		return
	}
	lx.current.WriteRune(ch)
}

func (lx *lexer) doubleQuoted(ch rune) {

	if lx.escaping {
		// only \" and \\ are escapes inside double quotes
		if ch != '\\' && ch != '"' {
			lx.current.WriteRune('\\')
		}
		lx.current.WriteRune(ch)
		lx.escaping = false
		return
	}

	switch ch {
	case '"':
		lx.state = stateOutside
	case '\\':
		lx.escaping = true
	default:
		lx.current.WriteRune(ch)
	}
}

func (p *DefaultParser) Parse(line string) ([]string, error) {
	reader := p.newReader(line)
	lx := &lexer{tokens: []string{}}

	for {
		ch, _, err := reader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}

		switch lx.state {
		case stateOutside:
			lx.outside(ch)
		case stateSingleQuote:
			lx.singleQuoted(ch)
		case stateDoubleQuote:
			lx.doubleQuoted(ch)
		}
	}

	if lx.state != stateOutside {
		return nil, &ParseError{Line: line, Err: ErrUnclosedQuote}
	}

	if lx.escaping {
		return nil, &ParseError{Line: line, Err: ErrUnescapedCharacter}
	}

	lx.emit()
	return lx.tokens, nil
}
