// Package preset loads pre-recorded wizard answers from a YAML file and
// validates them against an embedded JSON Schema before the wizard consumes
// them. Presets power non-interactive runs of `hatch new`.
package preset
