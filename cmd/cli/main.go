package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geodyn/hefestoxml/internal/app"
	"github.com/geodyn/hefestoxml/internal/cli"
)

// main is the entrypoint for the hefestoxml converter.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, perr := cli.Parse(args, outW)
	if perr != nil {
		return perr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (an unloadable taxonomy), so
	// we recover here to report a clean error to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	converter := app.NewApp(outW, appConfig)
	return converter.Run(context.Background())
}
