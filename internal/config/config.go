// Package config loads the prompt defaults from hatchling.yml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/hatchling/internal/project"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides,
// e.g. HATCHLING_DEFAULTS_LANGUAGE=TypeScript.
const EnvPrefix = "HATCHLING"

// Options controls where configuration is looked up.
type Options struct {
	// File is an explicit config file. When set, it must exist.
	File string
	// SearchPaths are the directories searched for hatchling.yml.
	// Defaults to the working directory and $HOME/.config/hatchling.
	SearchPaths []string
}

// Load reads the prompt defaults. A missing hatchling.yml is not an error;
// built-in defaults and environment overrides still apply.
func Load(opts Options) (project.Defaults, error) {
	defaults := project.DefaultAnswers()

	v := viper.New()
	v.SetDefault("defaults.directory", defaults.Directory)
	v.SetDefault("defaults.language", defaults.Language.String())
	v.SetDefault("defaults.tailwind", defaults.Tailwind)

	// Enable environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return project.Defaults{}, fmt.Errorf("failed to read %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("hatchling")
		v.SetConfigType("yaml")
		for _, path := range searchPaths(opts) {
			v.AddConfigPath(path)
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return project.Defaults{}, fmt.Errorf("failed to read hatchling.yml: %w", err)
			}
		}
	}

	lang, err := project.ParseLanguage(v.GetString("defaults.language"))
	if err != nil {
		return project.Defaults{}, fmt.Errorf("invalid defaults.language: %w", err)
	}

	directory := v.GetString("defaults.directory")
	if directory == "" {
		directory = defaults.Directory
	}

	return project.Defaults{
		Directory: directory,
		Language:  lang,
		Tailwind:  v.GetBool("defaults.tailwind"),
	}, nil
}

// UsedFile reports which config file Load would read, or "" if none exists.
func UsedFile(opts Options) string {
	if opts.File != "" {
		return opts.File
	}
	for _, dir := range searchPaths(opts) {
		for _, ext := range []string{"yml", "yaml"} {
			path := filepath.Join(dir, "hatchling."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func searchPaths(opts Options) []string {
	if len(opts.SearchPaths) > 0 {
		return opts.SearchPaths
	}

	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "hatchling"))
	}
	return paths
}
