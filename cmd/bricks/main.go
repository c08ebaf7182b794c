package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sagit117/BuilderBricks/internal/app"
	"github.com/sagit117/BuilderBricks/internal/cli"
)

// main is the entrypoint for the bricks application.
func main() {
	// Use a minimal logger until the logging module is bound.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error onto the process exit status: 2 for usage and
// configuration errors, 1 for anything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var cfgErr *app.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, stdout, stderr io.Writer, args []string, opts ...app.Option) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Module registration panics on programmer errors such as duplicate
	// registrations; report them instead of crashing.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "A critical startup error occurred: %v\n", r)
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	opts = append([]app.Option{app.WithOutput(stdout, stderr)}, opts...)
	bricks, err := app.New(ctx, appConfig, opts...)
	if err != nil {
		return err
	}

	return bricks.Run(ctx)
}
