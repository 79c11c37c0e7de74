package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, fatal, panic
	Format     string // json, console
	TimeFormat string // layout for the timestamp field
	Output     string // stdout, stderr, or file path
}

// DefaultConfig logs warnings and above to stderr so the menu on stdout
// stays readable.
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:      "warn",
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     "stderr",
	}
}

// Setup initializes the global logger with the provided configuration.
// The returned Closer releases a file opened for Output and is a no-op for
// stdout and stderr.
func Setup(config LogConfig) (io.Closer, error) {
	output, err := openOutput(config.Output)
	if err != nil {
		return nil, err
	}
	if err := SetupWriter(config, output); err != nil {
		output.Close()
		return nil, err
	}
	return output, nil
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(config LogConfig, output io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		// zerolog writes JSON by default
	default:
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: config.TimeFormat,
		}
	}

	log.Logger = zerolog.New(output).With().
		Timestamp().
		Logger()

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}
	return nil
}

type stdStream struct{ io.Writer }

func (stdStream) Close() error { return nil }

func openOutput(target string) (io.WriteCloser, error) {
	switch target {
	case "", "stderr":
		return stdStream{os.Stderr}, nil
	case "stdout":
		return stdStream{os.Stdout}, nil
	default:
		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log output: %w", err)
		}
		return file, nil
	}
}

// WithComponent returns a logger with a component field
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
