// Package runner launches an ordered scenario catalog, one scenario at a
// time, each exactly once.
package runner
