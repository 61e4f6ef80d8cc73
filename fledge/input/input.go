package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter reads answers one line at a time. It works with any reader,
// so it is what non-interactive runs and tests use.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask asks each question in order.
func (p *LinePrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	answers := make(Answers, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			value any
			err   error
		)
		switch q.Kind {
		case Select:
			value, err = p.choose(q)
		case Confirm:
			value, err = p.confirm(q)
		default:
			value, err = p.prompt(q)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.Name, err)
		}
		answers[q.Name] = value
	}

	return answers, nil
}

// prompt asks for text input. Empty input yields the default.
//
// Displays: Enter the directory (.): _
func (p *LinePrompter) prompt(q Question) (string, error) {
	for {
		if q.Default != "" {
			fmt.Fprint(p.out, promptStyle.Render(q.Message)+" "+
				hintStyle.Render(fmt.Sprintf("(%s)", q.Default))+": ")
		} else {
			fmt.Fprint(p.out, promptStyle.Render(q.Message)+": ")
		}

		line, eof, err := p.readLine()
		if err != nil {
			return "", err
		}

		value := line
		if value == "" {
			value = q.Default
		}

		if verr := q.check(value); verr != nil {
			fmt.Fprintln(p.out, errorStyle.Render("✗ "+verr.Error()))
			if eof {
				return "", ErrNoInput
			}
			continue
		}

		return value, nil
	}
}

// choose asks the user to pick one of q.Choices by number or by name.
//
// Displays:
//
//	Which frontend language do you prefer?
//	  1) JavaScript
//	  2) TypeScript
//	Choice (JavaScript): _
func (p *LinePrompter) choose(q Question) (string, error) {
	fmt.Fprintln(p.out, promptStyle.Render(q.Message))
	for i, choice := range q.Choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, choice)
	}

	def := q.Choices[q.defaultIndex()]
	for {
		fmt.Fprint(p.out, promptStyle.Render("Choice")+" "+hintStyle.Render(fmt.Sprintf("(%s)", def))+": ")

		line, eof, err := p.readLine()
		if err != nil {
			return "", err
		}

		if line == "" {
			return def, nil
		}
		if choice, ok := matchChoice(q.Choices, line); ok {
			return choice, nil
		}

		fmt.Fprintln(p.out, errorStyle.Render(fmt.Sprintf("✗ Please choose 1-%d", len(q.Choices))))
		if eof {
			return "", ErrNoInput
		}
	}
}

// confirm asks a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// Empty input returns q.DefaultYes.
//
// Displays: Do you want to include Tailwind CSS? [y/N]: _
func (p *LinePrompter) confirm(q Question) (bool, error) {
	hint := "[y/N]"
	if q.DefaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(p.out, promptStyle.Render(q.Message)+" "+hintStyle.Render(hint)+": ")

	line, _, err := p.readLine()
	if err != nil {
		return false, err
	}

	line = strings.ToLower(line)
	if line == "" {
		return q.DefaultYes, nil
	}
	return line == "y" || line == "yes", nil
}

// readLine reads one trimmed line. eof reports that the input is exhausted;
// a final line without a newline is still returned.
func (p *LinePrompter) readLine() (line string, eof bool, err error) {
	raw, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		eof = true
		fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(raw), eof, nil
}

// matchChoice resolves a 1-based index or a case-insensitive choice name.
func matchChoice(choices []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}
	for _, choice := range choices {
		if strings.EqualFold(choice, input) {
			return choice, true
		}
	}
	return "", false
}
