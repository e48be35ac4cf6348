package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type Config struct {
	Level  string
	Output io.Writer
}

// New builds the application logger. Unknown levels fall back to info.
func New(cfg Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level == log.DebugLevel,
		Level:           level,
		Prefix:          "daybook",
	})
}
