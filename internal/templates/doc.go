// Package templates renders the textual files the wizard writes into a new
// project: README, LICENSE bodies, ignore files, lint/format config stubs, and
// the static-site and React boilerplate sources. Templates are embedded and
// rendered through pure functions so file content is testable without running
// the interactive flow.
package templates
