package cli

import (
	"fmt"
	"os"

	"github.com/hatchworks/hatch/internal/config"
	"github.com/hatchworks/hatch/internal/noderuntime"
	"github.com/hatchworks/hatch/internal/preset"
	"github.com/hatchworks/hatch/internal/shell"
	"github.com/hatchworks/hatch/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	newPresetFile string
	newParentDir  string
)

func init() {
	newCmd.Flags().StringVar(&newPresetFile, "preset", "", "Answers file for a non-interactive run")
	newCmd.Flags().StringVarP(&newParentDir, "dir", "d", "", "Parent directory for the new project (default: current directory)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new project interactively",
	Long: `Run the project wizard: check the Node.js runtime, choose a package
manager and project type, scaffold the project via the matching generator,
and fill in README, lint config, ignore files, license, and git history.

A name given as an argument skips the name prompt. With --preset, answers
come from a validated YAML file and no prompts are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	parentDir := newParentDir
	if parentDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		parentDir = cwd
	}

	config.Load()

	runner := &shell.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	w := &wizard.Wizard{
		Prompter:  wizard.NewPrompter(os.Stdin, os.Stdout),
		Runner:    runner,
		Probe:     &noderuntime.ExecProbe{Runner: runner},
		Out:       os.Stdout,
		ParentDir: parentDir,
		Defaults: wizard.Defaults{
			Author:         config.Get(config.KeyAuthor),
			PackageManager: config.Get(config.KeyPackageManager),
			Editor:         config.Get(config.KeyEditor),
			License:        config.Get(config.KeyLicense),
		},
	}
	if len(args) == 1 {
		w.ProjectName = args[0]
	}

	if newPresetFile != "" {
		p, err := preset.Load(newPresetFile)
		if err != nil {
			return err
		}
		w.Preset = p
	}

	if _, err := w.Run(cmd.Context()); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}
