// Package logging binds the process-wide logging facade to a logging module
// chosen at runtime.
//
// A logging module is a code unit that exports one symbol, named after the
// last segment of the configured class name (for "bricks.logger.MiniLogger"
// the symbol is "MiniLogger"). The symbol must provide the two entry points
// of the Provider capability:
//
//	GetLogger(contextID string) *slog.Logger
//	SetLogLevel(level slog.Level)
//
// Units are found with the two-tier lookup of package resource: a Go plugin
// file on disk is opened through an Opener, otherwise a unit compiled into
// the binary is taken from the bundle. A module is either bound with both
// entry points or the resolution fails as a whole.
package logging
