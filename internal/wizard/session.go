package wizard

import (
	"github.com/hatchworks/hatch/internal/generator"
	"github.com/hatchworks/hatch/internal/templates"
	"github.com/hatchworks/hatch/internal/toolchain"
)

// Session accumulates the user's choices over one wizard run. Fields are set
// at most once, in pipeline order; later stages read but never rewrite them.
// Nothing is rolled back on failure — once a stage has created files on disk,
// they stay.
type Session struct {
	ProjectName    string
	ProjectDir     string // derived: <parent>/<name>
	PackageManager toolchain.PackageManager
	ProjectType    generator.ProjectType
	Description    string
	Author         string
	License        templates.License
	Editor         toolchain.Editor
}

// TemplateData builds the template parameter set from the session's captured
// values.
func (s *Session) TemplateData() *templates.Data {
	return templates.NewData(s.ProjectName, s.Description, s.Author, s.PackageManager.String())
}
