package project

import (
	"strings"

	"github.com/simonhull/hatchling/fledge/input"
)

// Question names, in prompt order.
const (
	QuestionDirectory = "directory"
	QuestionName      = "projectName"
	QuestionLanguage  = "languageVariant"
	QuestionTailwind  = "useTailwind"
)

// Defaults are the answers offered when the user just presses Enter.
type Defaults struct {
	Directory string
	Language  Language
	Tailwind  bool
}

// DefaultAnswers returns the built-in defaults: current directory,
// JavaScript, no Tailwind.
func DefaultAnswers() Defaults {
	return Defaults{
		Directory: ".",
		Language:  JavaScript,
		Tailwind:  false,
	}
}

// Questions returns the prompt sequence that collects a Config.
func Questions(d Defaults) []input.Question {
	choices := make([]string, len(Languages))
	for i, l := range Languages {
		choices[i] = l.String()
	}

	return []input.Question{
		{
			Name:    QuestionDirectory,
			Kind:    input.Text,
			Message: "Enter the directory ('.' for current dir, '..' to go up one level, or full path):",
			Default: d.Directory,
		},
		{
			Name:     QuestionName,
			Kind:     input.Text,
			Message:  "Enter project name:",
			Validate: ValidateName,
		},
		{
			Name:    QuestionLanguage,
			Kind:    input.Select,
			Message: "Which frontend language do you prefer?",
			Choices: choices,
			Default: d.Language.String(),
		},
		{
			Name:       QuestionTailwind,
			Kind:       input.Confirm,
			Message:    "Do you want to include Tailwind CSS?",
			DefaultYes: d.Tailwind,
		},
	}
}

// ValidateName rejects empty project names. Nothing else is checked: the
// name ends up unescaped in package.json, go.mod and the page source.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// FromAnswers builds the Config for a prompt run started in cwd.
func FromAnswers(cwd string, answers input.Answers) (Config, error) {
	name := strings.TrimSpace(answers.String(QuestionName))
	if err := ValidateName(name); err != nil {
		return Config{}, err
	}

	lang, err := ParseLanguage(answers.String(QuestionLanguage))
	if err != nil {
		return Config{}, err
	}

	target, err := ResolveTarget(cwd, answers.String(QuestionDirectory), name)
	if err != nil {
		return Config{}, err
	}

	return New(target, name, lang, StylingFor(answers.Bool(QuestionTailwind)))
}
