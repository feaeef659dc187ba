package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hatchworks/hatch/internal/shell"
	"github.com/hatchworks/hatch/internal/templates"
	"github.com/hatchworks/hatch/internal/toolchain"
)

// ViteGenerator delegates to create-vite for a React project, then layers in
// react-router-dom and multi-page boilerplate.
type ViteGenerator struct {
	Runner shell.Runner
}

func (g *ViteGenerator) Type() ProjectType { return TypeReact }

func (g *ViteGenerator) Scaffold(ctx context.Context, spec Spec) error {
	pm := spec.PackageManager
	args := toolchain.CreateArgs(pm, "vite@latest", spec.Name, "--template", "react")
	if err := shell.RunChecked(ctx, g.Runner, spec.ParentDir, pm.String(), args...); err != nil {
		return fmt.Errorf("scaffolding vite project: %w", err)
	}

	root := filepath.Join(spec.ParentDir, spec.Name)
	if err := toolchain.InstallDeps(ctx, g.Runner, pm, root, "react-router-dom"); err != nil {
		return err
	}

	return writeRouterBoilerplate(root, spec)
}

// writeRouterBoilerplate replaces App.jsx and adds route pages so the project
// starts as a multi-page app.
func writeRouterBoilerplate(root string, spec Spec) error {
	pagesDir := filepath.Join(root, "src", "pages")
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", pagesDir, err)
	}

	data := templates.NewData(spec.Name, "", "", spec.PackageManager.String())

	files := []struct {
		path   string
		render func(*templates.Data) (string, error)
	}{
		{filepath.Join(root, "src", "App.jsx"), templates.AppJSX},
		{filepath.Join(pagesDir, "Home.jsx"), templates.HomePageJSX},
		{filepath.Join(pagesDir, "About.jsx"), templates.AboutPageJSX},
	}

	for _, f := range files {
		content, err := f.render(data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	return nil
}

// NextGenerator delegates to create-next-app.
type NextGenerator struct {
	Runner shell.Runner
}

func (g *NextGenerator) Type() ProjectType { return TypeNext }

func (g *NextGenerator) Scaffold(ctx context.Context, spec Spec) error {
	pm := spec.PackageManager
	args := toolchain.CreateArgs(pm, "next-app@latest", spec.Name)
	if err := shell.RunChecked(ctx, g.Runner, spec.ParentDir, pm.String(), args...); err != nil {
		return fmt.Errorf("scaffolding next.js project: %w", err)
	}
	return nil
}

// AstroGenerator delegates to create-astro.
type AstroGenerator struct {
	Runner shell.Runner
}

func (g *AstroGenerator) Type() ProjectType { return TypeAstro }

func (g *AstroGenerator) Scaffold(ctx context.Context, spec Spec) error {
	pm := spec.PackageManager
	args := toolchain.CreateArgs(pm, "astro@latest", spec.Name, "--no-install", "--no-git")
	if err := shell.RunChecked(ctx, g.Runner, spec.ParentDir, pm.String(), args...); err != nil {
		return fmt.Errorf("scaffolding astro project: %w", err)
	}
	return nil
}
