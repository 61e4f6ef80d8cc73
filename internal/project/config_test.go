package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage(t *testing.T) {
	assert.Equal(t, "JavaScript", JavaScript.String())
	assert.Equal(t, "TypeScript", TypeScript.String())
	assert.Equal(t, "index.js", JavaScript.PageFile())
	assert.Equal(t, "index.tsx", TypeScript.PageFile())
	assert.False(t, Language(7).Valid())
	assert.Equal(t, "Language(7)", Language(7).String())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"JavaScript", JavaScript, false},
		{"TypeScript", TypeScript, false},
		{"typescript", TypeScript, false},
		{" javascript ", JavaScript, false},
		{"", 0, true},
		{"Elm", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStylingFor(t *testing.T) {
	assert.Equal(t, StyleTailwind, StylingFor(true))
	assert.Equal(t, StylePlain, StylingFor(false))
	assert.Equal(t, "tailwind", StyleTailwind.String())
	assert.False(t, Styling(3).Valid())
}

func TestNew(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "home", "u", "shop")

	cfg, err := New(root, "shop", TypeScript, StyleTailwind)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.TargetDir)
	assert.True(t, cfg.TypeScript())
	assert.True(t, cfg.Tailwind())
	assert.Equal(t, filepath.Join(root, "frontend"), cfg.FrontendDir())
	assert.Equal(t, filepath.Join(root, "backend"), cfg.BackendDir())
	assert.Equal(t, "shop-backend", cfg.BackendModule())
}

func TestNew_Invalid(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "srv", "x")

	tests := []struct {
		name    string
		target  string
		project string
		lang    Language
		styling Styling
	}{
		{"empty name", abs, "", JavaScript, StylePlain},
		{"blank name", abs, "   ", JavaScript, StylePlain},
		{"relative target", "x", "x", JavaScript, StylePlain},
		{"unknown language", abs, "x", Language(9), StylePlain},
		{"unknown styling", abs, "x", JavaScript, Styling(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.target, tt.project, tt.lang, tt.styling)
			assert.Error(t, err)
		})
	}
}

func TestValidate_EmptyNameSentinel(t *testing.T) {
	err := Config{TargetDir: "/srv/x"}.Validate()
	assert.ErrorIs(t, err, ErrEmptyName)
}
