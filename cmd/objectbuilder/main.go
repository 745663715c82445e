// Package main provides the CLI entrypoint for objectbuilder.
//
// objectbuilder exercises the object builder configurator outside a host UI:
//   - Flattens a source schema into the field paths a user can pick
//   - Normalizes configuration documents to their canonical shape
//   - Applies edits and reports whether the result can be submitted
//   - Watches schema and configuration files and re-validates on change
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"object-builder/cmd/objectbuilder/commands"
)

// Version is set via ldflags during build.
var Version = "dev"

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// setupLogging configures zerolog for human-readable output on stderr.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
