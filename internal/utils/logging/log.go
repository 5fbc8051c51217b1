// Package logging prints user-facing console messages and mirrors them
// to a structured per-session log file.
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"grabarr/internal/domain/consts"

	"github.com/rs/zerolog"
)

// Level gates debug output. D(l, ...) emits only when l <= Level.
// Holds -1 until Setup runs.
var Level = -1

var (
	mu      sync.Mutex
	logFile *os.File
	fileLog zerolog.Logger
	haveLog bool
)

// Setup sets the debug level and opens the session log file. Console
// output works without it; file mirroring starts once it succeeds.
func Setup(level int, logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	Level = level

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", logPath, err)
	}

	logFile = f
	fileLog = zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	haveLog = true

	fileLog.Info().
		Str("version", consts.Version).
		Int("debug_level", level).
		Msgf("%s session start", consts.ProgramName)
	return nil
}

// Close flushes and closes the session log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if !haveLog {
		return nil
	}
	haveLog = false
	return logFile.Close()
}

// writeLog mirrors a console message into the session log file at the
// given zerolog level. Callers must hold mu.
func writeLog(lvl zerolog.Level, msg string, fields map[string]string) {
	if !haveLog {
		return
	}
	ev := fileLog.WithLevel(lvl)
	for k, v := range fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(msg)
}
