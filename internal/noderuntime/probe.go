package noderuntime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hatchworks/hatch/internal/shell"
)

// RequiredMajor is the minimum Node.js major version the generators support.
const RequiredMajor = 18

// Probe inspects and manages the local Node.js installation. The wizard's
// version gate depends only on this interface so it can be tested without a
// real Node or nvm install.
type Probe interface {
	// Version returns the installed Node.js version.
	Version(ctx context.Context) (*semver.Version, error)
	// ManagerAvailable reports whether an assisted upgrade path (nvm) exists.
	ManagerAvailable() bool
	// ListAvailable returns installable LTS version strings, newest last.
	ListAvailable(ctx context.Context) ([]string, error)
	// InstallAndUse installs the given version and makes it the default.
	InstallAndUse(ctx context.Context, version string) error
}

// ExecProbe implements Probe by shelling out to node and nvm.
type ExecProbe struct {
	Runner shell.Runner
}

// Version runs `node --version` and parses the result.
func (p *ExecProbe) Version(ctx context.Context) (*semver.Version, error) {
	out, err := p.Runner.Run(ctx, "", "node", "--version")
	if err != nil {
		return nil, fmt.Errorf("detecting node version: %w", err)
	}
	if out.ExitCode != 0 {
		return nil, fmt.Errorf("node --version exited with status %d", out.ExitCode)
	}

	raw := strings.TrimSpace(out.Stdout)
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", raw, err)
	}
	return v, nil
}

// ManagerAvailable reports whether nvm is installed, based on the NVM_DIR
// environment variable pointing at a directory containing nvm.sh.
func (p *ExecProbe) ManagerAvailable() bool {
	dir := os.Getenv("NVM_DIR")
	if dir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, "nvm.sh"))
	return err == nil
}

// ListAvailable asks nvm for installable LTS versions.
func (p *ExecProbe) ListAvailable(ctx context.Context) ([]string, error) {
	out, err := p.nvm(ctx, "nvm ls-remote --lts")
	if err != nil {
		return nil, fmt.Errorf("listing node versions: %w", err)
	}
	return parseVersionList(out.Stdout), nil
}

// InstallAndUse installs the given version via nvm and aliases it as default.
// A single attempt; failure propagates to the caller.
func (p *ExecProbe) InstallAndUse(ctx context.Context, version string) error {
	out, err := p.nvm(ctx, fmt.Sprintf("nvm install %s && nvm alias default %s", version, version))
	if err != nil {
		return fmt.Errorf("installing node %s: %w", version, err)
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("nvm install %s exited with status %d", version, out.ExitCode)
	}
	return nil
}

// nvm runs an nvm command inside a bash shell that sources $NVM_DIR/nvm.sh.
// nvm is a shell function, not a binary, so it cannot be exec'd directly.
func (p *ExecProbe) nvm(ctx context.Context, command string) (*shell.Output, error) {
	script := `source "$NVM_DIR/nvm.sh" && ` + command
	return p.Runner.Run(ctx, "", "bash", "-c", script)
}

// parseVersionList extracts vX.Y.Z tokens from nvm ls-remote output.
func parseVersionList(raw string) []string {
	var versions []string
	for _, line := range strings.Split(raw, "\n") {
		for _, field := range strings.Fields(line) {
			if !strings.HasPrefix(field, "v") {
				continue
			}
			if _, err := semver.NewVersion(strings.TrimPrefix(field, "v")); err == nil {
				versions = append(versions, field)
				break
			}
		}
	}
	return versions
}

// Supported reports whether v satisfies the minimum supported major version.
func Supported(v *semver.Version) bool {
	return v.Major() >= RequiredMajor
}

// ManualInstallGuidance returns the message printed when no assisted upgrade
// path is available.
func ManualInstallGuidance() string {
	return fmt.Sprintf(
		"Node.js %d or newer is required.\nInstall it from https://nodejs.org or via a version manager such as nvm (https://github.com/nvm-sh/nvm).",
		RequiredMajor)
}
