// Package shell wraps subprocess execution behind a small Runner interface.
// The wizard delegates all real work (package managers, framework generators,
// editors) to external tools; Runner keeps those call sites testable with a
// scriptable fake.
package shell
