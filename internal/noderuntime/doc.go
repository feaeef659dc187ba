// Package noderuntime probes the local Node.js installation and offers an
// assisted upgrade path through nvm when one is present. The wizard refuses to
// scaffold projects against unsupported Node versions.
package noderuntime
