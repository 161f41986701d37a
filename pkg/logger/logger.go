package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	zl zerolog.Logger
}

type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	Output     string // stdout, stderr, or file path
	TimeFormat string // time format for log messages
}

func New(cfg *Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer
	switch cfg.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}
		output = file
	}

	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339Nano
	}
	zerolog.TimeFieldFormat = cfg.TimeFormat

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
			NoColor:    false,
		}
	}

	zl := zerolog.New(output).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &Logger{zl: zl}, nil
}

// --- Logger methods ---

func (l *Logger) Debug(msg string, fields ...Field) { l.emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.emit(l.zl.Error(), msg, fields) }

func (l *Logger) emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		f.AddTo(event)
	}
	event.Msg(msg)
}

// Field adds one structured value to a log event.
type Field interface {
	AddTo(event *zerolog.Event)
}

type stringField struct {
	key   string
	value string
}

func (f stringField) AddTo(event *zerolog.Event) { event.Str(f.key, f.value) }

type stringsField struct {
	key    string
	values []string
}

func (f stringsField) AddTo(event *zerolog.Event) { event.Strs(f.key, f.values) }

type intField struct {
	key   string
	value int
}

func (f intField) AddTo(event *zerolog.Event) { event.Int(f.key, f.value) }

type floatField struct {
	key   string
	value float64
}

func (f floatField) AddTo(event *zerolog.Event) { event.Float64(f.key, f.value) }

type boolField struct {
	key   string
	value bool
}

func (f boolField) AddTo(event *zerolog.Event) { event.Bool(f.key, f.value) }

type durationField struct {
	key   string
	value time.Duration
}

func (f durationField) AddTo(event *zerolog.Event) { event.Dur(f.key, f.value) }

type anyField struct {
	key   string
	value interface{}
}

func (f anyField) AddTo(event *zerolog.Event) { event.Interface(f.key, f.value) }

type errorField struct {
	value error
}

func (f errorField) AddTo(event *zerolog.Event) { event.Err(f.value) }

// --- Field constructors ---

func String(key, value string) Field { return stringField{key: key, value: value} }

func Strings(key string, values []string) Field { return stringsField{key: key, values: values} }

func Int(key string, value int) Field { return intField{key: key, value: value} }

func Float64(key string, value float64) Field { return floatField{key: key, value: value} }

func Bool(key string, value bool) Field { return boolField{key: key, value: value} }

func Duration(key string, value time.Duration) Field { return durationField{key: key, value: value} }

func Any(key string, value interface{}) Field { return anyField{key: key, value: value} }

func Error(err error) Field { return errorField{value: err} }
