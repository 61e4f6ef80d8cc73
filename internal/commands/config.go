package commands

import (
	"fmt"
	"path/filepath"

	"github.com/simonhull/hatchling/fledge/generator"
	"github.com/simonhull/hatchling/fledge/output"
	"github.com/simonhull/hatchling/internal/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the 'config' command, which prints the effective
// prompt defaults as a hatchling.yml document.
func newConfigCmd(e env) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective prompt defaults",
		Long: `Prints the defaults hatchling offers at each prompt, merged from
hatchling.yml and HATCHLING_DEFAULTS_* environment variables.

Example:
  hatchling config
  HATCHLING_DEFAULTS_LANGUAGE=TypeScript hatchling config --write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("config")

			defaults, err := config.Load(config.Options{File: file})
			if err != nil {
				return err
			}

			data, err := config.Marshal(defaults)
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			cwd, err := e.getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			path := filepath.Join(cwd, config.FileName)
			op := &generator.WriteFileOp{Fs: e.fs, Path: path, Content: data, Mode: 0644}
			if err := generator.Execute(cmd.Context(), []generator.Operation{op}, generator.ExecuteOptions{
				Force:  force,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				return err
			}

			output.Success(fmt.Sprintf("Wrote %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write hatchling.yml to the current directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing hatchling.yml")

	return cmd
}
