package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/simonhull/hatchling"
	"github.com/simonhull/hatchling/fledge/filesystem"
	"github.com/simonhull/hatchling/fledge/gomod"
	"github.com/simonhull/hatchling/fledge/input"
	"github.com/simonhull/hatchling/fledge/output"
	"github.com/simonhull/hatchling/internal/config"
	"github.com/simonhull/hatchling/internal/project"
	"github.com/simonhull/hatchling/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// env holds the collaborators a run touches outside the terminal.
type env struct {
	fs    afero.Fs
	getwd func() (string, error)
}

func defaultEnv() env {
	return env{fs: filesystem.OS(), getwd: os.Getwd}
}

// RootCmd creates and returns the root command for the hatchling CLI
func RootCmd() *cobra.Command {
	return newRootCmd(defaultEnv())
}

func newRootCmd(e env) *cobra.Command {
	var (
		verbose    bool
		dryRun     bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "hatchling",
		Short: "Scaffold a Next.js frontend and a Go backend",
		Long: `Hatchling asks a few questions and writes a ready-to-run project:
• a Next.js frontend (JavaScript or TypeScript, optional Tailwind CSS)
• a minimal Go net/http backend

Prompt defaults can be set in hatchling.yml or HATCHLING_DEFAULTS_* variables.

Example:
  hatchling
  hatchling --dry-run`,
		Version:       hatchling.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, e, runOptions{
				dryRun: dryRun,
				config: config.Options{File: configFile},
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without touching disk")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default: hatchling.yml)")

	cmd.AddCommand(VersionCmd())
	cmd.AddCommand(newConfigCmd(e))

	return cmd
}

type runOptions struct {
	dryRun bool
	config config.Options
}

func run(cmd *cobra.Command, e env, opts runOptions) error {
	ctx := cmd.Context()
	printBanner(output.Writer())

	defaults, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if file := config.UsedFile(opts.config); file != "" {
		output.Verbose(fmt.Sprintf("Using defaults from %s", file))
	}

	prompter := input.New(cmd.InOrStdin(), cmd.OutOrStdout())
	answers, err := prompter.Ask(ctx, project.Questions(defaults))
	if err != nil {
		return err
	}

	cwd, err := e.getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := project.FromAnswers(cwd, answers)
	if err != nil {
		return err
	}
	output.Verbose(fmt.Sprintf("Language: %s, styling: %s", cfg.Language, cfg.Styling))

	progress := io.Discard
	if opts.dryRun || output.IsVerbose() {
		progress = output.Writer()
	}

	gen := scaffold.NewGenerator(
		scaffold.WithFs(e.fs),
		scaffold.WithDryRun(opts.dryRun),
		scaffold.WithProgress(progress),
		scaffold.WithNotify(printMessage),
	)

	result, err := gen.WriteTree(ctx, cfg)
	if err != nil {
		return err
	}

	if output.IsVerbose() && !opts.dryRun {
		files, err := filesystem.Tree(e.fs, result.Root)
		if err != nil {
			return err
		}
		for _, f := range files {
			output.Verbose(f)
		}

		if mod, err := gomod.Detect(e.fs, cfg.BackendDir()); err == nil {
			output.Verbose(fmt.Sprintf("Backend module: %s (go %s)", mod.Path, mod.GoVersion))
		} else {
			output.Verbose(err.Error())
		}
	}

	printMessages(scaffold.Summary(cfg))
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render("🐣 Welcome to hatchling"))
	fmt.Fprintln(w, taglineStyle.Render("This tool sets up a Next.js frontend and a Go backend automatically."))
	fmt.Fprintln(w)
}

func printMessage(m scaffold.Message) {
	switch m.Kind {
	case scaffold.Note:
		output.Warn(m.Text)
	case scaffold.Step:
		output.Step(m.Text)
	case scaffold.Success:
		output.Success(m.Text)
	default:
		output.Info(m.Text)
	}
}

func printMessages(msgs []scaffold.Message) {
	for _, m := range msgs {
		printMessage(m)
	}
}
