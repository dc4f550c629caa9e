package shell

import (
	"errors"
	"fmt"
)

var (
	// exit error
	ErrExit          = errors.New("exit")
	ErrNotFound      = errors.New("not found")
	ErrSessionClosed = errors.New("session closed")

	ErrUnclosedQuote      = errors.New("unclosed quote")
	ErrUnescapedCharacter = errors.New("unescaped character")
)

// ParseError reports a line the tokenizer could not split.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command '%s' not found", e.Name)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrNotFound
}

// UsageError is returned by a known command called with arguments it cannot take.
type UsageError struct {
	Command string
	Msg     string
}

func (e *UsageError) Error() string {
	return e.Command + ": " + e.Msg
}

// ScriptReadError means the startup script could not be loaded. It only
// aborts the replay, never the interactive session.
type ScriptReadError struct {
	Path string
	Err  error
}

func (e *ScriptReadError) Error() string {
	return fmt.Sprintf("read script %s: %v", e.Path, e.Err)
}

func (e *ScriptReadError) Unwrap() error {
	return e.Err
}
