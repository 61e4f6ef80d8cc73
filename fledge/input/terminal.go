package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TerminalPrompter asks each question with a small BubbleTea program:
// a text field, an arrow-key menu or a y/n toggle.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter bound to a terminal.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// Ask runs one program per question, in order.
func (p *TerminalPrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	answers := make(Answers, len(questions))
	for _, q := range questions {
		var model answerModel
		switch q.Kind {
		case Select:
			model = newSelectModel(q)
		case Confirm:
			model = newConfirmModel(q)
		default:
			model = newTextModel(q)
		}

		prog := tea.NewProgram(model,
			tea.WithContext(ctx),
			tea.WithInput(p.in),
			tea.WithOutput(p.out),
		)
		final, err := prog.Run()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%s: %w", q.Name, err)
		}

		result := final.(answerModel)
		if result.cancelled() {
			return nil, ErrInterrupted
		}
		answers[q.Name] = result.answer()
	}

	return answers, nil
}

// answerModel is a BubbleTea model that ends with an answer or a cancel.
type answerModel interface {
	tea.Model
	answer() any
	cancelled() bool
}

// textModel is the BubbleTea model for free text questions
type textModel struct {
	question Question
	field    textinput.Model
	value    string
	err      error
	done     bool
	aborted  bool
}

func newTextModel(q Question) textModel {
	field := textinput.New()
	field.Placeholder = q.Default
	field.Prompt = "> "
	field.Focus()

	return textModel{question: q, field: field}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.field.Value())
			if value == "" {
				value = m.question.Default
			}
			if err := m.question.check(value); err != nil {
				m.err = err
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}

		// typing clears the previous validation error
		m.err = nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return promptStyle.Render(m.question.Message) + " " + answerStyle.Render(m.value) + "\n"
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.question.Message))
	if m.question.Default != "" {
		b.WriteString(" " + hintStyle.Render(fmt.Sprintf("(%s)", m.question.Default)))
	}
	b.WriteString("\n" + m.field.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ "+m.err.Error()) + "\n")
	}
	return b.String()
}

func (m textModel) answer() any     { return m.value }
func (m textModel) cancelled() bool { return m.aborted }

// selectModel is the BubbleTea model for choosing one of several options
type selectModel struct {
	question Question
	cursor   int
	selected *string
	aborted  bool
}

func newSelectModel(q Question) selectModel {
	return selectModel{question: q, cursor: q.defaultIndex()}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.question.Choices)-1 {
				m.cursor++
			}

		case "enter":
			choice := m.question.Choices[m.cursor]
			m.selected = &choice
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.selected != nil {
		return promptStyle.Render(m.question.Message) + " " + answerStyle.Render(*m.selected) + "\n"
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.question.Message) + "\n")
	b.WriteString(hintStyle.Render("  [↑/↓] Navigate    [Enter] Select") + "\n")

	for i, choice := range m.question.Choices {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}

func (m selectModel) answer() any {
	if m.selected == nil {
		return ""
	}
	return *m.selected
}

func (m selectModel) cancelled() bool { return m.aborted }

// confirmModel is the BubbleTea model for yes/no questions
type confirmModel struct {
	question Question
	value    bool
	done     bool
	aborted  bool
}

func newConfirmModel(q Question) confirmModel {
	return confirmModel{question: q}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "y":
			m.value, m.done = true, true
			return m, tea.Quit
		case "n":
			m.value, m.done = false, true
			return m, tea.Quit
		case "enter":
			m.value, m.done = m.question.DefaultYes, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return promptStyle.Render(m.question.Message) + " " + answerStyle.Render(answer) + "\n"
	}
	if m.aborted {
		return ""
	}

	hint := "[y/N]"
	if m.question.DefaultYes {
		hint = "[Y/n]"
	}
	return promptStyle.Render(m.question.Message) + " " + hintStyle.Render(hint) + "\n"
}

func (m confirmModel) answer() any     { return m.value }
func (m confirmModel) cancelled() bool { return m.aborted }
