package toolchain

import (
	"context"
	"strings"
	"testing"

	"github.com/hatchworks/hatch/internal/shell"
)

func TestCreateArgs(t *testing.T) {
	tests := []struct {
		pm    PackageManager
		extra []string
		want  string
	}{
		{Npm, []string{"--template", "react"}, "create vite@latest app -- --template react"},
		{Yarn, []string{"--template", "react"}, "create vite@latest app --template react"},
		{Pnpm, []string{"--template", "react"}, "create vite@latest app --template react"},
		{Npm, nil, "create vite@latest app"},
	}
	for _, tt := range tests {
		got := strings.Join(CreateArgs(tt.pm, "vite@latest", "app", tt.extra...), " ")
		if got != tt.want {
			t.Errorf("CreateArgs(%s) = %q, want %q", tt.pm, got, tt.want)
		}
	}
}

func TestInstallDevDepsArgv(t *testing.T) {
	tests := []struct {
		pm   PackageManager
		want string
	}{
		{Npm, "npm install --save-dev eslint prettier"},
		{Yarn, "yarn add --dev eslint prettier"},
		{Pnpm, "pnpm add -D eslint prettier"},
	}
	for _, tt := range tests {
		r := &shell.FakeRunner{}
		if err := InstallDevDeps(context.Background(), r, tt.pm, "/tmp/proj", "eslint", "prettier"); err != nil {
			t.Fatalf("InstallDevDeps(%s) error: %v", tt.pm, err)
		}
		if got := r.CommandLines()[0]; got != tt.want {
			t.Errorf("InstallDevDeps(%s) = %q, want %q", tt.pm, got, tt.want)
		}
		if r.Calls[0].Dir != "/tmp/proj" {
			t.Errorf("InstallDevDeps(%s) ran in %q, want project dir", tt.pm, r.Calls[0].Dir)
		}
	}
}

func TestInstallManager(t *testing.T) {
	r := &shell.FakeRunner{}
	if err := InstallManager(context.Background(), r, Pnpm); err != nil {
		t.Fatalf("InstallManager() error: %v", err)
	}
	if got := r.CommandLines()[0]; got != "npm install -g pnpm" {
		t.Errorf("InstallManager = %q", got)
	}
}

func TestInstallManagerRefusesNpm(t *testing.T) {
	r := &shell.FakeRunner{}
	if err := InstallManager(context.Background(), r, Npm); err == nil {
		t.Fatal("expected error: npm cannot install itself")
	}
	if len(r.Calls) != 0 {
		t.Errorf("no command should run, got %v", r.CommandLines())
	}
}

func TestInstalled(t *testing.T) {
	r := &shell.FakeRunner{Missing: []string{"yarn"}}
	if Installed(r, Yarn) {
		t.Error("yarn should be reported missing")
	}
	if !Installed(r, Npm) {
		t.Error("npm should be reported installed")
	}
}

func TestPackageManagerValid(t *testing.T) {
	for _, pm := range PackageManagers {
		if !pm.Valid() {
			t.Errorf("%s should be valid", pm)
		}
	}
	if PackageManager("bun").Valid() {
		t.Error("bun is not a supported manager")
	}
}

func TestOpenEditorMissingBinary(t *testing.T) {
	r := &shell.FakeRunner{Missing: []string{"windsurf"}}
	err := OpenEditor(context.Background(), r, Windsurf, "/tmp/proj")
	if err == nil {
		t.Fatal("expected error for missing editor binary")
	}
	if len(r.Calls) != 0 {
		t.Errorf("no command should run, got %v", r.CommandLines())
	}
}

func TestOpenEditorLaunches(t *testing.T) {
	r := &shell.FakeRunner{}
	if err := OpenEditor(context.Background(), r, VSCode, "/tmp/proj"); err != nil {
		t.Fatalf("OpenEditor() error: %v", err)
	}
	if got := r.CommandLines()[0]; got != "code /tmp/proj" {
		t.Errorf("OpenEditor = %q", got)
	}
}
