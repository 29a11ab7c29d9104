// Package core contains plumbing shared by the concurrent packages: waiting
// on a unit's one-shot channel, draining channels, and options carried
// through a context.
package core
