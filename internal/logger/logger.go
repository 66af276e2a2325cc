package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// LogFilePath is the path to the run log, relative to the working directory.
const LogFilePath = "logs/sim.txt"

// New returns the run logger: pretty console output on stderr plus a JSON
// line log on disk. If the log file cannot be opened, console-only.
func New() zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}

	var w io.Writer = console
	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err == nil {
		f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			w = zerolog.MultiLevelWriter(console, f)
		}
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
