// Package config manages persistent user settings stored at ~/.hatch/config.yaml.
// Settings hold wizard defaults (author name, preferred package manager, editor,
// license) so repeat runs need fewer keystrokes. Values can be overridden via
// HATCH_* environment variables.
package config
