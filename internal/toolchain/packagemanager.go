package toolchain

import (
	"context"
	"fmt"

	"github.com/hatchworks/hatch/internal/shell"
)

// PackageManager identifies one of the supported Node package managers.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
)

// PackageManagers lists the supported managers in menu order.
var PackageManagers = []PackageManager{Npm, Yarn, Pnpm}

// String returns the binary name of the package manager.
func (pm PackageManager) String() string { return string(pm) }

// Valid reports whether pm is one of the supported managers.
func (pm PackageManager) Valid() bool {
	switch pm {
	case Npm, Yarn, Pnpm:
		return true
	}
	return false
}

// Installed reports whether the manager's binary resolves on PATH.
func Installed(r shell.Runner, pm PackageManager) bool {
	_, err := r.LookPath(pm.String())
	return err == nil
}

// InstallManager installs a missing package manager globally via npm.
// npm itself ships with Node and cannot be installed this way.
func InstallManager(ctx context.Context, r shell.Runner, pm PackageManager) error {
	if pm == Npm {
		return fmt.Errorf("npm ships with Node.js; reinstall Node.js to repair it")
	}
	if err := shell.RunChecked(ctx, r, "", "npm", "install", "-g", pm.String()); err != nil {
		return fmt.Errorf("installing %s: %w", pm, err)
	}
	return nil
}

// InstallDevDeps installs the given packages as development dependencies in dir.
func InstallDevDeps(ctx context.Context, r shell.Runner, pm PackageManager, dir string, pkgs ...string) error {
	var args []string
	switch pm {
	case Yarn:
		args = append([]string{"add", "--dev"}, pkgs...)
	case Pnpm:
		args = append([]string{"add", "-D"}, pkgs...)
	default:
		args = append([]string{"install", "--save-dev"}, pkgs...)
	}
	if err := shell.RunChecked(ctx, r, dir, pm.String(), args...); err != nil {
		return fmt.Errorf("installing dev dependencies with %s: %w", pm, err)
	}
	return nil
}

// InstallDeps installs the given packages as runtime dependencies in dir.
func InstallDeps(ctx context.Context, r shell.Runner, pm PackageManager, dir string, pkgs ...string) error {
	var args []string
	switch pm {
	case Yarn, Pnpm:
		args = append([]string{"add"}, pkgs...)
	default:
		args = append([]string{"install"}, pkgs...)
	}
	if err := shell.RunChecked(ctx, r, dir, pm.String(), args...); err != nil {
		return fmt.Errorf("installing dependencies with %s: %w", pm, err)
	}
	return nil
}

// CreateArgs builds the argv for `<pm> create <generator> <name> <extra...>`.
// npm needs a `--` separator before generator-specific flags; yarn and pnpm
// pass them through directly.
func CreateArgs(pm PackageManager, generator, name string, extra ...string) []string {
	args := []string{"create", generator, name}
	if len(extra) > 0 && pm == Npm {
		args = append(args, "--")
	}
	return append(args, extra...)
}
