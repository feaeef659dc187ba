// Package toolchain models the external tools the wizard drives: Node package
// managers (detection, installation, dependency commands) and code editors.
// Everything shells out through shell.Runner so the command shapes are
// testable without the tools present.
package toolchain
