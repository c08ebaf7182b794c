// Package app contains the bootstrap sequence of bricks. It loads the
// application configuration, binds the logging module once, and threads the
// resulting Bootstrap through the scenario catalog and runner, decoupled
// from any specific entrypoint like a CLI.
package app
