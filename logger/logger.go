package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var logger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()

// Options represents logger settings
type Options struct {
	Level  string
	Format string
	// Out receives debug, info and warn events
	Out io.Writer
	// ErrOut receives error, fatal and panic events
	ErrOut io.Writer
}

// New creates a logger routing events by level
func New(options *Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if options.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(strings.ToLower(options.Level)); err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %v: %w", options.Level, err)
		}
	}
	out, errOut := options.Out, options.ErrOut
	if out == nil {
		out = os.Stderr
	}
	if errOut == nil {
		errOut = out
	}
	switch options.Format {
	case "", FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
		errOut = zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %v", options.Format)
	}
	writer := zerolog.MultiLevelWriter(
		SpecificLevelWriter{
			Writer: out,
			Levels: []zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel},
		},
		SpecificLevelWriter{
			Writer: errOut,
			Levels: []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		},
	)
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// Init replaces the package logger, events are written to stderr
func Init(level, format string) error {
	ret, err := New(&Options{Level: level, Format: format})
	if err != nil {
		return err
	}
	logger = ret
	return nil
}

// Logger returns the package logger
func Logger() zerolog.Logger {
	return logger
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

func Warn(msg string) {
	logger.Warn().Msg(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

func Error(msg string) {
	logger.Error().Msg(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

func Debug(msg string) {
	logger.Debug().Msg(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// SpecificLevelWriter writes only events of the listed levels
type SpecificLevelWriter struct {
	io.Writer
	Levels []zerolog.Level
}

func (w SpecificLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	for _, l := range w.Levels {
		if l == level {
			return w.Write(p)
		}
	}
	return len(p), nil
}
