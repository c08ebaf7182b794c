// Package cli is responsible for parsing command-line arguments and flags
// for the bricks application. It translates user input into an
// app.Config struct, which is then used to initialize the core application.
package cli
