package preset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preset holds pre-recorded answers for every wizard prompt, allowing
// `hatch new --preset answers.yaml` to run without interaction.
type Preset struct {
	Name           string `yaml:"name"`
	PackageManager string `yaml:"packageManager"`
	ProjectType    string `yaml:"projectType"`
	Description    string `yaml:"description"`
	Author         string `yaml:"author"`
	License        string `yaml:"license"`
	Editor         string `yaml:"editor"`
	InstallLint    bool   `yaml:"installLint"`
	InitGit        bool   `yaml:"initGit"`
	InstallHelper  bool   `yaml:"installHelper"`
	OpenEditor     bool   `yaml:"openEditor"`
}

// Load reads, validates, and parses a preset file. Schema violations are
// returned as a single error listing every issue.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating preset %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("preset %s is invalid:\n%s", path, result.IssueSummary())
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return &p, nil
}
