package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger writing JSON to stdout.
// It ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		defaultLogger = zerolog.New(os.Stdout).Level(zerolog.DebugLevel).With().Timestamp().Logger()
		defaultLogger.Info().Msg("Logger initialized")
	})
}

// Get returns the initialized default logger.
// It calls Init() to ensure the logger is ready before returning it.
func Get() *zerolog.Logger {
	Init()
	return &defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string, args ...any) {
	Get().Info().Fields(args).Msg(msg)
}

// Warn logs a warning message using the default logger.
func Warn(msg string, args ...any) {
	Get().Warn().Fields(args).Msg(msg)
}

// Error logs an error message using the default logger.
func Error(msg string, err error, args ...any) {
	Get().Error().Err(err).Fields(args).Msg(msg)
}

// Debug logs a debug message using the default logger.
func Debug(msg string, args ...any) {
	Get().Debug().Fields(args).Msg(msg)
}
