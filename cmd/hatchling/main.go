package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/simonhull/hatchling/fledge/output"
	"github.com/simonhull/hatchling/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.RootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
