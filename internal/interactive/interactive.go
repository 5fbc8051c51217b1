// Package interactive drives the terminal prompts and quality menus for a
// download session.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// ErrEndSession is returned when the user closes input (Ctrl-C or Ctrl-D)
// instead of answering a prompt.
var ErrEndSession = errors.New("session ended")

// Prompter reads user answers over a single readline instance.
type Prompter struct {
	rl *readline.Instance
}

// NewPrompter initializes the readline instance. Callers own Close.
func NewPrompter() (*Prompter, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize input: %w", err)
	}
	return &Prompter{rl: rl}, nil
}

// Close releases the readline instance.
func (p *Prompter) Close() error {
	return p.rl.Close()
}

// Ask prints the prompt and returns the trimmed answer. Interrupt and EOF
// both surface as ErrEndSession.
func (p *Prompter) Ask(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrEndSession
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askChoice re-prompts until the answer parses as a menu position.
func (p *Prompter) askChoice(prompt string, max, def int) (int, error) {
	for {
		input, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		choice, err := ParseChoice(input, max, def)
		if err != nil {
			color.Yellow("Enter a number between 1 and %d.", max)
			continue
		}
		return choice, nil
	}
}

// askYesNo re-prompts until the answer parses as yes or no.
func (p *Prompter) askYesNo(prompt string, def bool) (bool, error) {
	for {
		input, err := p.Ask(prompt)
		if err != nil {
			return false, err
		}
		answer, err := ParseYesNo(input, def)
		if err != nil {
			color.Yellow("Answer y or n.")
			continue
		}
		return answer, nil
	}
}
