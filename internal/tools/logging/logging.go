package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Level names follow zerolog
// ("debug", "info", "warn", ...); an unknown or empty level means info.
func New(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &logger
}
