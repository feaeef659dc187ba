// Package cli wires the cobra command tree for the hatch binary. Each command
// lives in its own file and registers itself on the root command in init().
package cli
