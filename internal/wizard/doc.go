// Package wizard drives the interactive project-creation pipeline behind
// `hatch new`: a fixed sequence of stages that gate on the Node runtime,
// capture choices (name, package manager, project type, metadata, license,
// editor), delegate scaffolding to generators, and write the surrounding
// project files. The pipeline is fail-fast: the first stage error stops the
// run, and files created by earlier stages are left in place.
package wizard
