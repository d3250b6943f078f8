package session

import (
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LinerInput is the production LineReader: line editing plus in-process input
// history via peterh/liner.
type LinerInput struct {
	line *liner.State
}

// NewLinerInput creates a liner-backed reader. Callers must Close it to
// restore the terminal state.
func NewLinerInput() *LinerInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerInput{line: line}
}

// ReadLine reads one line with the given prompt. Ctrl+C maps to io.EOF so the
// loop treats it like any other end of input.
func (l *LinerInput) ReadLine(prompt string) (string, error) {
	input, err := l.line.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		l.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (l *LinerInput) Close() {
	l.line.Close()
}
