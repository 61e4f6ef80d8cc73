package commands

import (
	"fmt"

	"github.com/simonhull/hatchling"
	"github.com/spf13/cobra"
)

// VersionCmd prints the hatchling version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hatchling version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hatchling %s\n", hatchling.Version)
		},
	}
}
