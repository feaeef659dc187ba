package templates

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func testData() *Data {
	return &Data{
		Name:           "my-app",
		DisplayName:    "My App",
		Description:    "A small test project",
		Author:         "Jane Doe",
		Year:           2024,
		PackageManager: "npm",
	}
}

func TestNewData(t *testing.T) {
	d := NewData("my-app", "desc", "Jane Doe", "pnpm")
	if d.DisplayName != "My App" {
		t.Errorf("DisplayName = %q, want %q", d.DisplayName, "My App")
	}
	if d.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current year", d.Year)
	}
	if d.PackageManager != "pnpm" {
		t.Errorf("PackageManager = %q, want %q", d.PackageManager, "pnpm")
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "My App"},
		{"my_cool_site", "My Cool Site"},
		{"blog", "Blog"},
	}
	for _, tt := range tests {
		if got := DisplayTitle(tt.in); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadmeSectionsInOrder(t *testing.T) {
	out, err := Readme(testData())
	if err != nil {
		t.Fatalf("Readme() error: %v", err)
	}

	sections := []string{
		"# my-app",
		"A small test project",
		"## Installation",
		"npm install",
		"## Getting Started",
		"npm run dev",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		if idx == -1 {
			t.Fatalf("README missing %q:\n%s", section, out)
		}
		if idx < last {
			t.Errorf("README section %q out of order:\n%s", section, out)
		}
		last = idx
	}
}

func TestReadmeOmitsAuthorSectionWhenEmpty(t *testing.T) {
	d := testData()
	d.Author = ""
	out, err := Readme(d)
	if err != nil {
		t.Fatalf("Readme() error: %v", err)
	}
	if strings.Contains(out, "## Author") {
		t.Errorf("README should omit author section when author is empty:\n%s", out)
	}
}

func TestIndexHTMLEmbedsProjectName(t *testing.T) {
	out, err := IndexHTML(testData())
	if err != nil {
		t.Fatalf("IndexHTML() error: %v", err)
	}
	if !strings.Contains(out, "<title>my-app</title>") {
		t.Errorf("index.html missing project name in <title>:\n%s", out)
	}
	if !strings.Contains(out, "<h1>my-app</h1>") {
		t.Errorf("index.html missing project name in <h1>:\n%s", out)
	}
}

func TestLicenseTextMIT(t *testing.T) {
	out, err := LicenseText(LicenseMIT, testData())
	if err != nil {
		t.Fatalf("LicenseText() error: %v", err)
	}
	if !strings.Contains(out, "MIT License") {
		t.Errorf("MIT license missing header:\n%s", out)
	}
	if !strings.Contains(out, "Copyright (c) 2024 Jane Doe") {
		t.Errorf("MIT license missing copyright line:\n%s", out)
	}
}

func TestLicenseTextAllVariants(t *testing.T) {
	for _, lic := range []License{LicenseMIT, LicenseApache2, LicenseGPL3} {
		out, err := LicenseText(lic, testData())
		if err != nil {
			t.Fatalf("LicenseText(%s) error: %v", lic, err)
		}
		want := fmt.Sprintf("Copyright (c) %d %s", 2024, "Jane Doe")
		if !strings.Contains(out, want) {
			t.Errorf("%s license missing %q:\n%s", lic, want, out)
		}
	}
}

func TestLicenseTextNoneIsError(t *testing.T) {
	if _, err := LicenseText(LicenseNone, testData()); err == nil {
		t.Fatal("expected error for LicenseNone")
	}
	if _, err := LicenseText(License("wtfpl"), testData()); err == nil {
		t.Fatal("expected error for unknown license")
	}
}

func TestPackageJSONUsesProjectName(t *testing.T) {
	out, err := PackageJSON(testData())
	if err != nil {
		t.Fatalf("PackageJSON() error: %v", err)
	}
	if !strings.Contains(out, `"name": "my-app"`) {
		t.Errorf("package.json missing project name:\n%s", out)
	}
	if !strings.Contains(out, `"dev"`) {
		t.Errorf("package.json missing dev script:\n%s", out)
	}
}

func TestIgnoreFiles(t *testing.T) {
	d := testData()

	gitignore, err := GitIgnore(d)
	if err != nil {
		t.Fatalf("GitIgnore() error: %v", err)
	}
	if !strings.Contains(gitignore, "node_modules/") {
		t.Errorf(".gitignore missing node_modules:\n%s", gitignore)
	}

	eslintignore, err := ESLintIgnore(d)
	if err != nil {
		t.Fatalf("ESLintIgnore() error: %v", err)
	}
	if !strings.Contains(eslintignore, "dist/") {
		t.Errorf(".eslintignore missing dist:\n%s", eslintignore)
	}

	prettierignore, err := PrettierIgnore(d)
	if err != nil {
		t.Fatalf("PrettierIgnore() error: %v", err)
	}
	if !strings.Contains(prettierignore, "pnpm-lock.yaml") {
		t.Errorf(".prettierignore missing lockfiles:\n%s", prettierignore)
	}
}

func TestReactBoilerplate(t *testing.T) {
	d := testData()

	app, err := AppJSX(d)
	if err != nil {
		t.Fatalf("AppJSX() error: %v", err)
	}
	if !strings.Contains(app, "react-router-dom") {
		t.Errorf("App.jsx missing router import:\n%s", app)
	}

	home, err := HomePageJSX(d)
	if err != nil {
		t.Fatalf("HomePageJSX() error: %v", err)
	}
	if !strings.Contains(home, "My App") {
		t.Errorf("Home.jsx missing display name:\n%s", home)
	}
}
