package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	Init("info", "json")
}

// Init configures the global logger. format is "json" or "console".
func Init(level string, format string) {
	InitWithWriter(level, format, os.Stderr)
}

func InitWithWriter(level string, format string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(level))

	var w io.Writer = out
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	log = zerolog.New(w).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func Debug(msg string, args ...any) {
	write(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	write(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	write(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	write(zerolog.ErrorLevel, msg, args)
}

// write accepts key/value pairs. A lone error or a trailing value without key
// is recorded under "error" or "arg".
func write(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	ev := log.WithLevel(level)
	mu.RUnlock()
	if ev == nil {
		return
	}

	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			if err, isErr := args[i].(error); isErr {
				ev = ev.AnErr("error", err)
			} else {
				ev = ev.Interface(fmt.Sprintf("arg%d", i), args[i])
			}
			continue
		}
		ev = field(ev, key, args[i+1])
		i++
	}
	ev.Msg(msg)
}

func field(ev *zerolog.Event, key string, value any) *zerolog.Event {
	switch v := value.(type) {
	case error:
		return ev.AnErr(key, v)
	case string:
		return ev.Str(key, v)
	case int:
		return ev.Int(key, v)
	case int64:
		return ev.Int64(key, v)
	case float64:
		return ev.Float64(key, v)
	case bool:
		return ev.Bool(key, v)
	case time.Duration:
		return ev.Dur(key, v)
	case time.Time:
		return ev.Time(key, v)
	case fmt.Stringer:
		return ev.Stringer(key, v)
	default:
		return ev.Interface(key, v)
	}
}
