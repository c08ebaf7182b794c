// Package registry provides the compiled-in extension points of the
// bootstrap.
//
// The Registry stores two kinds of entries, both populated by Modules at
// startup: bundled logging units keyed by the binary location they stand in
// for (the second lookup tier of the logging resolver), and scenario
// launchers keyed by scenario name (the execution extension point of the
// runner). Registering the same key twice is a programmer error and panics.
package registry
