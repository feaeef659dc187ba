package wizard

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hatchworks/hatch/internal/gitrepo"
	"github.com/hatchworks/hatch/internal/noderuntime"
	"github.com/hatchworks/hatch/internal/preset"
	"github.com/hatchworks/hatch/internal/shell"
)

// Defaults carries pre-filled answers sourced from the user's config file.
// Author pre-fills the author prompt; the other fields pre-select menu
// entries, accepted by pressing enter. Empty fields mean "no default".
type Defaults struct {
	Author         string
	PackageManager string
	Editor         string
	License        string
}

// Wizard drives the fixed stage pipeline that turns a handful of answers into
// a scaffolded project directory. All collaborators are injected so the whole
// flow runs under test with fakes.
type Wizard struct {
	Prompter  *Prompter
	Runner    shell.Runner
	Probe     noderuntime.Probe
	Out       io.Writer
	ParentDir string
	Defaults  Defaults

	// ProjectName, when set, was supplied on the command line and replaces
	// the name prompt.
	ProjectName string

	// Preset, when set, answers every prompt without interaction.
	Preset *preset.Preset

	// InitRepo is the version-control hook; defaults to gitrepo.Init.
	InitRepo func(path, author, message string) error
}

// Stage is one step of the pipeline: a name for error context plus its logic.
type Stage struct {
	Name string
	Run  func(ctx context.Context, s *Session) error
}

// Stages returns the pipeline in execution order.
func (w *Wizard) Stages() []Stage {
	return []Stage{
		{"runtime gate", w.stageRuntimeGate},
		{"project name", w.stageProjectName},
		{"package manager", w.stagePackageManager},
		{"project scaffold", w.stageProjectType},
		{"project metadata", w.stageMetadata},
		{"lint tooling", w.stageLintTools},
		{"ignore files", w.stageIgnoreFiles},
		{"license", w.stageLicense},
		{"version control", w.stageGitInit},
		{"dev helper", w.stageHelperInstall},
		{"editor", w.stageEditor},
	}
}

// Run executes every stage in order, stopping on the first failure. The
// session is returned even on failure so callers can report how far the run
// got; already-created files are never cleaned up.
func (w *Wizard) Run(ctx context.Context) (*Session, error) {
	if w.InitRepo == nil {
		w.InitRepo = gitrepo.Init
	}

	s := &Session{}
	for _, stage := range w.Stages() {
		if err := stage.Run(ctx, s); err != nil {
			return s, fmt.Errorf("%s: %w", stage.Name, err)
		}
	}

	fmt.Fprintf(w.Out, "\nProject %s is ready at %s\n", s.ProjectName, s.ProjectDir)
	return s, nil
}

// interactive reports whether prompts should be shown (no preset loaded).
func (w *Wizard) interactive() bool {
	return w.Preset == nil
}

// writeProjectFile renders content into <projectDir>/<name>. Delegated
// generators leave directory creation to the external tool, so the directory
// is ensured here.
func (w *Wizard) writeProjectFile(s *Session, name, content string) error {
	if err := os.MkdirAll(s.ProjectDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", s.ProjectDir, err)
	}
	path := filepath.Join(s.ProjectDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	fmt.Fprintf(w.Out, "  created %s\n", name)
	return nil
}

// warn prints a non-fatal problem and lets the pipeline continue.
func (w *Wizard) warn(format string, args ...interface{}) {
	fmt.Fprintf(w.Out, "warning: "+format+"\n", args...)
}
