package main

import (
	"github.com/rs/zerolog"
	"os"
	"time"
)

func main() {
	diag := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("cmd", "greeter").
		Logger()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		diag.Error().Err(err).Msg("greeter failed")
		os.Exit(1)
	}
}
