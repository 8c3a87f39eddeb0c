package utils

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// LogOptions configures the process-wide logger.
type LogOptions struct {
	Level   string
	Format  string // json | console
	Service string
	Writer  io.Writer
}

type Logger = zerolog.Logger

var (
	logOnce sync.Once
	rootLog atomic.Pointer[zerolog.Logger]
)

// InitLogger builds the root logger. Only the first call has an effect.
func InitLogger(opt LogOptions) {
	logOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stderr
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if opt.Service != "" {
			ctx = ctx.Str("service", opt.Service)
		}
		l := ctx.Logger()
		rootLog.Store(&l)
	})
}

// Log returns the root logger, initialising a console logger on first use.
func Log() *Logger {
	if l := rootLog.Load(); l != nil {
		return l
	}
	InitLogger(LogOptions{Level: "info", Format: "console"})
	return rootLog.Load()
}

// Named returns a child logger tagged with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Log()
	}
	l := Log().With().Str("component", component).Logger()
	return &l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
