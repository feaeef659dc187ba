package toolchain

import (
	"context"
	"fmt"

	"github.com/hatchworks/hatch/internal/shell"
)

// Editor identifies one of the supported code editors.
type Editor string

const (
	VSCode   Editor = "vscode"
	Windsurf Editor = "windsurf"
	NoEditor Editor = "none"
)

// Editors lists the launchable editors in menu order.
var Editors = []Editor{VSCode, Windsurf}

// Binary returns the command-line binary for the editor.
func (e Editor) Binary() string {
	switch e {
	case VSCode:
		return "code"
	case Windsurf:
		return "windsurf"
	}
	return ""
}

// OpenEditor launches the editor on the given directory. A missing editor
// binary is reported as an error so the caller can downgrade it to a warning.
func OpenEditor(ctx context.Context, r shell.Runner, e Editor, dir string) error {
	bin := e.Binary()
	if bin == "" {
		return fmt.Errorf("no binary known for editor %q", e)
	}
	if _, err := r.LookPath(bin); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", bin, err)
	}
	if err := shell.RunChecked(ctx, r, "", bin, dir); err != nil {
		return fmt.Errorf("opening %s: %w", bin, err)
	}
	return nil
}
