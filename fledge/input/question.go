package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C, Esc).
	ErrInterrupted = errors.New("prompt interrupted")

	// ErrNoInput is returned when input ends before a required answer was given.
	ErrNoInput = errors.New("no input for required answer")
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
)

// Kind is the type of answer a question expects.
type Kind int

const (
	Text Kind = iota
	Select
	Confirm
)

// Question is a single prompt in a sequence.
type Question struct {
	Name    string
	Kind    Kind
	Message string

	// Default is returned for empty Text and Select input.
	Default string
	// DefaultYes is the Confirm answer for empty input.
	DefaultYes bool
	// Choices lists the options of a Select question.
	Choices []string

	// Validate rejects a Text answer; the returned error is shown and
	// the question is asked again.
	Validate func(string) error
}

// check runs the validator, if any.
func (q Question) check(value string) error {
	if q.Validate == nil {
		return nil
	}
	return q.Validate(value)
}

// defaultIndex returns the index of the default choice, or 0.
func (q Question) defaultIndex() int {
	for i, choice := range q.Choices {
		if choice == q.Default {
			return i
		}
	}
	return 0
}

// Answers maps question names to answers. Text and Select answers are
// strings; Confirm answers are bools.
type Answers map[string]any

// String returns the string answer for name, or "" if absent.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the bool answer for name, or false if absent.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Prompter asks a sequence of questions and returns the answers once all
// of them are satisfied.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// New returns a TerminalPrompter when in is an interactive terminal and a
// LinePrompter otherwise (pipes, CI, tests).
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTerminalPrompter(f, out)
	}
	return NewLinePrompter(in, out)
}

func validateQuestions(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.Name == "" {
			return fmt.Errorf("question %q has no name", q.Message)
		}
		if seen[q.Name] {
			return fmt.Errorf("duplicate question name %q", q.Name)
		}
		seen[q.Name] = true
		if q.Kind == Select && len(q.Choices) == 0 {
			return fmt.Errorf("select question %q has no choices", q.Name)
		}
	}
	return nil
}
