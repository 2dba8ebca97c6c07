package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Call it before anything else logs.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	if os.Getenv("GIN_MODE") == "release" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetLevel applies a textual level ("debug", "info", ...). Unknown values keep the current level.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown log level, keeping current one")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}
