package config

import (
	"fmt"

	"github.com/simonhull/hatchling/internal/project"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `hatchling config --write`.
const FileName = "hatchling.yml"

// File mirrors the layout of hatchling.yml
type File struct {
	Defaults FileDefaults `yaml:"defaults"`
}

// FileDefaults is the defaults section of hatchling.yml
type FileDefaults struct {
	Directory string `yaml:"directory"`
	Language  string `yaml:"language"`
	Tailwind  bool   `yaml:"tailwind"`
}

// Marshal renders defaults as a hatchling.yml document that Load reads back
// unchanged.
func Marshal(d project.Defaults) ([]byte, error) {
	data, err := yaml.Marshal(File{
		Defaults: FileDefaults{
			Directory: d.Directory,
			Language:  d.Language.String(),
			Tailwind:  d.Tailwind,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
