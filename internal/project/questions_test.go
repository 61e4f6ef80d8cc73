package project

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/simonhull/hatchling/fledge/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_OrderAndDefaults(t *testing.T) {
	qs := Questions(DefaultAnswers())
	require.Len(t, qs, 4)

	assert.Equal(t, QuestionDirectory, qs[0].Name)
	assert.Equal(t, input.Text, qs[0].Kind)
	assert.Equal(t, ".", qs[0].Default)

	assert.Equal(t, QuestionName, qs[1].Name)
	assert.NotNil(t, qs[1].Validate)

	assert.Equal(t, QuestionLanguage, qs[2].Name)
	assert.Equal(t, input.Select, qs[2].Kind)
	assert.Equal(t, []string{"JavaScript", "TypeScript"}, qs[2].Choices)
	assert.Equal(t, "JavaScript", qs[2].Default)

	assert.Equal(t, QuestionTailwind, qs[3].Name)
	assert.Equal(t, input.Confirm, qs[3].Kind)
	assert.False(t, qs[3].DefaultYes)
}

func TestQuestions_CustomDefaults(t *testing.T) {
	qs := Questions(Defaults{Directory: "~/code", Language: TypeScript, Tailwind: true})

	assert.Equal(t, "~/code", qs[0].Default)
	assert.Equal(t, "TypeScript", qs[2].Default)
	assert.True(t, qs[3].DefaultYes)
}

func TestValidateName(t *testing.T) {
	assert.ErrorIs(t, ValidateName(""), ErrEmptyName)
	assert.ErrorIs(t, ValidateName("  "), ErrEmptyName)
	assert.NoError(t, ValidateName("shop"))
	assert.NoError(t, ValidateName("my shop!"))
}

func TestFromAnswers(t *testing.T) {
	answers := input.Answers{
		QuestionDirectory: ".",
		QuestionName:      "shop",
		QuestionLanguage:  "TypeScript",
		QuestionTailwind:  true,
	}

	cfg, err := FromAnswers("/home/u", answers)
	require.NoError(t, err)

	assert.Equal(t, "/home/u/shop", cfg.TargetDir)
	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, TypeScript, cfg.Language)
	assert.Equal(t, StyleTailwind, cfg.Styling)
}

func TestFromAnswers_TrimsNameBeforeResolvingTarget(t *testing.T) {
	cfg, err := FromAnswers("/home/u", input.Answers{
		QuestionDirectory: ".",
		QuestionName:      "  shop ",
		QuestionLanguage:  "JavaScript",
	})
	require.NoError(t, err)

	assert.Equal(t, "/home/u/shop", cfg.TargetDir)
	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, "shop-backend", cfg.BackendModule())
}

func TestFromAnswers_Errors(t *testing.T) {
	_, err := FromAnswers("/home/u", input.Answers{QuestionName: "", QuestionLanguage: "JavaScript"})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = FromAnswers("/home/u", input.Answers{QuestionName: "shop", QuestionLanguage: "Dart"})
	assert.Error(t, err)
}

func TestQuestions_WithLinePrompter(t *testing.T) {
	p := input.NewLinePrompter(strings.NewReader("..\n\ndemo\n2\nn\n"), &bytes.Buffer{})

	answers, err := p.Ask(context.Background(), Questions(DefaultAnswers()))
	require.NoError(t, err)

	cfg, err := FromAnswers("/home/u/work", answers)
	require.NoError(t, err)

	assert.Equal(t, "/home/u/demo", cfg.TargetDir)
	assert.Equal(t, TypeScript, cfg.Language)
	assert.Equal(t, StylePlain, cfg.Styling)
}
