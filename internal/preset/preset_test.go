package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPreset = `name: my-app
packageManager: pnpm
projectType: react
description: A preset-driven project
author: Jane Doe
license: mit
editor: vscode
installLint: true
initGit: true
openEditor: false
`

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidPreset(t *testing.T) {
	p, err := Load(writePreset(t, validPreset))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Name != "my-app" {
		t.Errorf("Name = %q, want my-app", p.Name)
	}
	if p.PackageManager != "pnpm" {
		t.Errorf("PackageManager = %q, want pnpm", p.PackageManager)
	}
	if !p.InstallLint {
		t.Error("InstallLint should be true")
	}
	if p.OpenEditor {
		t.Error("OpenEditor should be false")
	}
}

func TestLoadRejectsUnknownPackageManager(t *testing.T) {
	bad := strings.Replace(validPreset, "packageManager: pnpm", "packageManager: bun", 1)
	_, err := Load(writePreset(t, bad))
	if err == nil {
		t.Fatal("expected error for unsupported package manager")
	}
	if !strings.Contains(err.Error(), "/packageManager") {
		t.Errorf("error should point at the offending field: %v", err)
	}
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	_, err := Load(writePreset(t, "description: missing everything\n"))
	if err == nil {
		t.Fatal("expected error for missing required fields")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	bad := validPreset + "flavor: spicy\n"
	_, err := Load(writePreset(t, bad))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	bad := `name: ok
packageManager: bun
projectType: cobol
`
	result, err := Validate([]byte(bad))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) < 2 {
		t.Errorf("expected issues for both bad enums, got %v", result.Issues)
	}
}
