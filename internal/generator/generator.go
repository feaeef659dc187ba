package generator

import (
	"context"
	"fmt"

	"github.com/hatchworks/hatch/internal/shell"
	"github.com/hatchworks/hatch/internal/toolchain"
)

// ProjectType identifies one of the scaffoldable project flavors.
type ProjectType string

const (
	TypeHTML  ProjectType = "html"
	TypeReact ProjectType = "react"
	TypeNext  ProjectType = "next"
	TypeAstro ProjectType = "astro"
)

// ProjectTypes lists the scaffoldable flavors in menu order.
var ProjectTypes = []ProjectType{TypeHTML, TypeReact, TypeNext, TypeAstro}

// Label returns the menu label for a project type.
func (t ProjectType) Label() string {
	switch t {
	case TypeHTML:
		return "HTML/CSS/JS (no framework)"
	case TypeReact:
		return "React (Vite)"
	case TypeNext:
		return "Next.js"
	case TypeAstro:
		return "Astro"
	}
	return string(t)
}

// Spec carries everything a generator needs to materialize a project.
type Spec struct {
	// Name is the project directory name, created under ParentDir.
	Name           string
	ParentDir      string
	PackageManager toolchain.PackageManager
}

// Generator materializes a project skeleton of one flavor. Implementations
// either write files directly or delegate to an external scaffolding tool.
type Generator interface {
	Type() ProjectType
	Scaffold(ctx context.Context, spec Spec) error
}

// Dispatch returns the Generator for the given project type.
func Dispatch(t ProjectType, r shell.Runner) (Generator, error) {
	switch t {
	case TypeHTML:
		return &StaticGenerator{}, nil
	case TypeReact:
		return &ViteGenerator{Runner: r}, nil
	case TypeNext:
		return &NextGenerator{Runner: r}, nil
	case TypeAstro:
		return &AstroGenerator{Runner: r}, nil
	default:
		return nil, fmt.Errorf("unknown project type %q", t)
	}
}
