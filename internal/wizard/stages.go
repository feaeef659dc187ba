package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hatchworks/hatch/internal/generator"
	"github.com/hatchworks/hatch/internal/noderuntime"
	"github.com/hatchworks/hatch/internal/templates"
	"github.com/hatchworks/hatch/internal/toolchain"
)

// stageRuntimeGate refuses to proceed on an unsupported Node.js version.
// When nvm is available it offers a one-shot assisted install; otherwise it
// prints manual guidance and fails.
func (w *Wizard) stageRuntimeGate(ctx context.Context, _ *Session) error {
	v, err := w.Probe.Version(ctx)
	if err != nil {
		fmt.Fprintln(w.Out, noderuntime.ManualInstallGuidance())
		return fmt.Errorf("detecting node: %w", err)
	}

	if noderuntime.Supported(v) {
		fmt.Fprintf(w.Out, "Node.js v%s detected.\n", v)
		return nil
	}

	fmt.Fprintf(w.Out, "Node.js v%s detected; v%d or newer is required.\n", v, noderuntime.RequiredMajor)

	if !w.interactive() || !w.Probe.ManagerAvailable() {
		fmt.Fprintln(w.Out, noderuntime.ManualInstallGuidance())
		return fmt.Errorf("unsupported node version v%s", v)
	}

	versions, err := w.Probe.ListAvailable(ctx)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(w.Out, noderuntime.ManualInstallGuidance())
		return fmt.Errorf("no installable node versions reported by nvm")
	}

	// Offer the most recent releases, newest first.
	if len(versions) > 8 {
		versions = versions[len(versions)-8:]
	}
	for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
		versions[i], versions[j] = versions[j], versions[i]
	}

	idx, err := w.Prompter.Select("Select a Node.js version to install via nvm:", versions)
	if err != nil {
		return err
	}

	chosen := versions[idx]
	fmt.Fprintf(w.Out, "Installing Node.js %s...\n", chosen)
	if err := w.Probe.InstallAndUse(ctx, chosen); err != nil {
		return err
	}
	fmt.Fprintf(w.Out, "Node.js %s installed and set as default.\n", chosen)
	return nil
}

// stageProjectName captures the project name and derives the target directory.
// A name given up front (preset or command line) fails hard on an existing
// directory; at the prompt, empty names and existing directories re-prompt.
func (w *Wizard) stageProjectName(_ context.Context, s *Session) error {
	if !w.interactive() {
		return w.takeProjectName(s, w.Preset.Name)
	}
	if w.ProjectName != "" {
		return w.takeProjectName(s, w.ProjectName)
	}

	for {
		name, err := w.Prompter.Input("Project name")
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(w.Out, "Project name cannot be empty.")
			continue
		}
		dir := filepath.Join(w.ParentDir, name)
		if _, err := os.Stat(dir); err == nil {
			fmt.Fprintf(w.Out, "Directory %s already exists; choose another name.\n", dir)
			continue
		}
		s.ProjectName = name
		s.ProjectDir = dir
		return nil
	}
}

// takeProjectName accepts a name that arrived without a prompt.
func (w *Wizard) takeProjectName(s *Session, name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	dir := filepath.Join(w.ParentDir, name)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %s already exists", dir)
	}
	s.ProjectName = name
	s.ProjectDir = dir
	return nil
}

// stagePackageManager selects the package manager and ensures it is
// installed, offering a one-shot auto-install for yarn/pnpm. Declining the
// install fails the run.
func (w *Wizard) stagePackageManager(ctx context.Context, s *Session) error {
	if !w.interactive() {
		s.PackageManager = toolchain.PackageManager(w.Preset.PackageManager)
	} else {
		items := make([]string, len(toolchain.PackageManagers))
		def := -1
		for i, pm := range toolchain.PackageManagers {
			items[i] = pm.String()
			if pm.String() == w.Defaults.PackageManager {
				def = i
			}
		}
		idx, err := w.Prompter.SelectDefault("Select a package manager:", items, def)
		if err != nil {
			return err
		}
		s.PackageManager = toolchain.PackageManagers[idx]
	}

	if !s.PackageManager.Valid() {
		return fmt.Errorf("unsupported package manager %q", s.PackageManager)
	}

	if toolchain.Installed(w.Runner, s.PackageManager) {
		return nil
	}

	if !w.interactive() {
		return fmt.Errorf("%s is not installed", s.PackageManager)
	}

	ok, err := w.Prompter.Confirm(fmt.Sprintf("%s is not installed. Install it now via npm?", s.PackageManager))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is required but not installed", s.PackageManager)
	}
	return toolchain.InstallManager(ctx, w.Runner, s.PackageManager)
}

// stageProjectType selects the project flavor and dispatches to the matching
// generator. Generator failures propagate; nothing is cleaned up.
func (w *Wizard) stageProjectType(ctx context.Context, s *Session) error {
	if !w.interactive() {
		s.ProjectType = generator.ProjectType(w.Preset.ProjectType)
	} else {
		items := make([]string, len(generator.ProjectTypes))
		for i, t := range generator.ProjectTypes {
			items[i] = t.Label()
		}
		idx, err := w.Prompter.Select("Select a project type:", items)
		if err != nil {
			return err
		}
		s.ProjectType = generator.ProjectTypes[idx]
	}

	gen, err := generator.Dispatch(s.ProjectType, w.Runner)
	if err != nil {
		return err
	}

	fmt.Fprintf(w.Out, "Scaffolding %s project %s...\n", s.ProjectType, s.ProjectName)
	return gen.Scaffold(ctx, generator.Spec{
		Name:           s.ProjectName,
		ParentDir:      w.ParentDir,
		PackageManager: s.PackageManager,
	})
}

// stageMetadata captures description and author (both may be empty) and
// writes the README.
func (w *Wizard) stageMetadata(_ context.Context, s *Session) error {
	if !w.interactive() {
		s.Description = w.Preset.Description
		s.Author = w.Preset.Author
	} else {
		desc, err := w.Prompter.Input("Project description")
		if err != nil {
			return err
		}
		author, err := w.Prompter.InputDefault("Author", w.Defaults.Author)
		if err != nil {
			return err
		}
		s.Description = desc
		s.Author = author
	}

	readme, err := templates.Readme(s.TemplateData())
	if err != nil {
		return err
	}
	return w.writeProjectFile(s, "README.md", readme)
}

// stageLintTools installs eslint/prettier dev dependencies and writes their
// config stubs.
func (w *Wizard) stageLintTools(ctx context.Context, s *Session) error {
	if !w.interactive() && !w.Preset.InstallLint {
		return nil
	}

	fmt.Fprintln(w.Out, "Installing eslint and prettier...")
	err := toolchain.InstallDevDeps(ctx, w.Runner, s.PackageManager, s.ProjectDir,
		"eslint", "prettier", "eslint-config-prettier")
	if err != nil {
		return err
	}

	data := s.TemplateData()
	eslintrc, err := templates.ESLintRC(data)
	if err != nil {
		return err
	}
	if err := w.writeProjectFile(s, ".eslintrc", eslintrc); err != nil {
		return err
	}

	prettierrc, err := templates.PrettierRC(data)
	if err != nil {
		return err
	}
	return w.writeProjectFile(s, ".prettierrc", prettierrc)
}

// stageIgnoreFiles writes .gitignore, .eslintignore, and .prettierignore.
func (w *Wizard) stageIgnoreFiles(_ context.Context, s *Session) error {
	data := s.TemplateData()

	files := []struct {
		name   string
		render func(*templates.Data) (string, error)
	}{
		{".gitignore", templates.GitIgnore},
		{".eslintignore", templates.ESLintIgnore},
		{".prettierignore", templates.PrettierIgnore},
	}

	for _, f := range files {
		content, err := f.render(data)
		if err != nil {
			return err
		}
		if err := w.writeProjectFile(s, f.name, content); err != nil {
			return err
		}
	}
	return nil
}

// stageLicense selects a license and writes the LICENSE file. Choosing "no
// license" skips the file and still succeeds.
func (w *Wizard) stageLicense(_ context.Context, s *Session) error {
	if !w.interactive() {
		s.License = templates.License(w.Preset.License)
		if s.License == "" {
			s.License = templates.LicenseNone
		}
	} else {
		items := []string{"MIT", "Apache 2.0", "GPL 3.0", "No license"}
		choices := []templates.License{
			templates.LicenseMIT,
			templates.LicenseApache2,
			templates.LicenseGPL3,
			templates.LicenseNone,
		}
		def := -1
		for i, c := range choices {
			if string(c) == w.Defaults.License {
				def = i
			}
		}
		idx, err := w.Prompter.SelectDefault("Select a license:", items, def)
		if err != nil {
			return err
		}
		s.License = choices[idx]
	}

	if s.License == templates.LicenseNone {
		fmt.Fprintln(w.Out, "Skipping license file.")
		return nil
	}

	body, err := templates.LicenseText(s.License, s.TemplateData())
	if err != nil {
		return err
	}
	return w.writeProjectFile(s, "LICENSE", body)
}

// stageGitInit creates the git repository with an initial commit.
func (w *Wizard) stageGitInit(_ context.Context, s *Session) error {
	if !w.interactive() && !w.Preset.InitGit {
		return nil
	}

	fmt.Fprintln(w.Out, "Initializing git repository...")
	return w.InitRepo(s.ProjectDir, s.Author, "")
}

// stageHelperInstall optionally installs the serve dev helper used by the
// static template's dev script. Failure here is a warning, not an error.
func (w *Wizard) stageHelperInstall(ctx context.Context, s *Session) error {
	if w.interactive() {
		ok, err := w.Prompter.Confirm("Install the serve dev helper?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	} else if !w.Preset.InstallHelper {
		return nil
	}

	if err := toolchain.InstallDevDeps(ctx, w.Runner, s.PackageManager, s.ProjectDir, "serve"); err != nil {
		w.warn("could not install serve: %v", err)
	}
	return nil
}

// stageEditor optionally opens the project in an editor. A missing editor
// binary is a warning, not an error.
func (w *Wizard) stageEditor(ctx context.Context, s *Session) error {
	if !w.interactive() {
		s.Editor = toolchain.Editor(w.Preset.Editor)
		if s.Editor == "" || !w.Preset.OpenEditor {
			s.Editor = toolchain.NoEditor
		}
	} else {
		items := []string{"VS Code", "Windsurf", "Skip"}
		choices := []toolchain.Editor{toolchain.VSCode, toolchain.Windsurf, toolchain.NoEditor}
		def := -1
		for i, c := range choices {
			if string(c) == w.Defaults.Editor {
				def = i
			}
		}
		idx, err := w.Prompter.SelectDefault("Open the project in an editor?", items, def)
		if err != nil {
			return err
		}
		s.Editor = choices[idx]
	}

	if s.Editor == toolchain.NoEditor {
		return nil
	}

	if err := toolchain.OpenEditor(ctx, w.Runner, s.Editor, s.ProjectDir); err != nil {
		w.warn("could not open editor: %v", err)
	}
	return nil
}
