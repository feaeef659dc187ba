// Package generator materializes project skeletons. The plain HTML flavor is
// written directly from embedded templates; the framework flavors delegate to
// their official scaffolding tools (create-vite, create-next-app,
// create-astro) through the chosen package manager.
package generator
