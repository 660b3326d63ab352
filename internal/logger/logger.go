package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns the process logger. Debug switches to human readable console
// output at debug level, color toggles ANSI colouring of that output.
func Setup(debug, color bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if debug {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: !color,
			FormatTimestamp: func(i any) string {
				return time.Now().Format(time.RFC3339)
			},
		}).Level(level).With().Caller().Logger()
	}

	return logger
}
