package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hatchworks/hatch/internal/templates"
)

// StaticGenerator writes a plain HTML/CSS/JS project tree directly, with no
// external tool involved.
type StaticGenerator struct{}

func (g *StaticGenerator) Type() ProjectType { return TypeHTML }

// Scaffold creates <parent>/<name>/src with index.html, styles.css, main.js
// plus a minimal package.json carrying a dev script.
func (g *StaticGenerator) Scaffold(_ context.Context, spec Spec) error {
	root := filepath.Join(spec.ParentDir, spec.Name)
	srcDir := filepath.Join(root, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", srcDir, err)
	}

	data := templates.NewData(spec.Name, "", "", spec.PackageManager.String())

	files := []struct {
		path   string
		render func(*templates.Data) (string, error)
	}{
		{filepath.Join(srcDir, "index.html"), templates.IndexHTML},
		{filepath.Join(srcDir, "styles.css"), templates.StylesCSS},
		{filepath.Join(srcDir, "main.js"), templates.MainJS},
		{filepath.Join(root, "package.json"), templates.PackageJSON},
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
