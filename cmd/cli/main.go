package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/seedling/internal/app"
	"github.com/vk/seedling/internal/cli"
	"github.com/vk/seedling/internal/hcl_adapter"
	"github.com/vk/seedling/internal/manifest"
)

// main is the entrypoint for the seedling application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		var loadErr *manifest.LoadFailure
		if errors.As(err, &loadErr) {
			fmt.Fprintln(os.Stderr, loadErr.Error())
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. outW receives application output; logW receives logs.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// Module registration panics are programmer errors; recover so the
	// process still exits with a clean message instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	loader := hcl_adapter.NewLoader()
	seedlingApp := app.NewApp(outW, logW, appConfig, loader)

	return seedlingApp.Run(context.Background())
}
