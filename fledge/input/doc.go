// Package input provides interactive terminal prompts.
//
// # Overview
//
// A Prompter asks a sequence of Questions and returns the Answers once every
// question is satisfied. Questions are free text, a choice from a list, or
// yes/no, and may carry a default and a validator.
//
// # Usage
//
//	prompter := input.New(os.Stdin, os.Stdout)
//
//	answers, err := prompter.Ask(ctx, []input.Question{
//	    {Name: "directory", Kind: input.Text, Message: "Enter the directory", Default: "."},
//	    {Name: "language", Kind: input.Select, Message: "Which language?",
//	        Choices: []string{"JavaScript", "TypeScript"}, Default: "JavaScript"},
//	    {Name: "tailwind", Kind: input.Confirm, Message: "Include Tailwind CSS?"},
//	})
//
//	dir := answers.String("directory")
//	tailwind := answers.Bool("tailwind")
//
// # Implementations
//
// New picks the implementation from the input stream:
//   - TerminalPrompter, when stdin is a TTY: BubbleTea programs with a text
//     field (bubbles/textinput), an arrow-key menu and a y/n toggle.
//   - LinePrompter otherwise: plain line reads, numbered choices. This is
//     what pipes, CI and tests use.
//
// A validator error is printed and the question is asked again. When the
// input ends before a valid answer, Ask returns ErrNoInput; Ctrl+C in the
// terminal prompter returns ErrInterrupted.
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling:
//   - Prompts are displayed in cyan and bold
//   - Hints (defaults, [Y/n]) are displayed in gray
//   - Validation errors are displayed in red
package input
