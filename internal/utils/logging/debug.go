package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"grabarr/internal/domain/consts"

	"github.com/rs/zerolog"
)

// callerTag returns the "[Function: x - File: y : Line: z]" trailer for
// error and debug messages, plus raw fields for the log file.
func callerTag() (tag string, fields map[string]string) {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	var b strings.Builder
	b.WriteRune('[')
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteRune(']')

	return b.String(), map[string]string{
		"func": funcName,
		"file": file,
		"line": strconv.Itoa(line),
	}
}

// E prints an error message with caller information. Always emits.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	tag, fields := callerTag()

	fmt.Println(consts.RedError + msg + " " + tag)
	writeLog(zerolog.ErrorLevel, msg, fields)
	return msg
}

// W prints a warning message. Always emits.
func W(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Println(consts.YellowWarning + msg)
	writeLog(zerolog.WarnLevel, msg, nil)
	return msg
}

// S prints a success message. Always emits.
func S(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Println(consts.GreenSuccess + msg)
	writeLog(zerolog.InfoLevel, msg, nil)
	return msg
}

// I prints an informational message. Always emits.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Println(consts.BlueInfo + msg)
	writeLog(zerolog.InfoLevel, msg, nil)
	return msg
}

// D prints a debug message with caller information when l is at or
// below the configured Level.
func D(l int, format string, args ...any) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	tag, fields := callerTag()

	fmt.Println(consts.YellowDebug + msg + " " + tag)
	writeLog(zerolog.DebugLevel, msg, fields)
	return msg
}

// P prints a plain message with no level prefix, for menu and prompt
// text. Mirrors to the log file at info level.
func P(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Println(msg)
	writeLog(zerolog.InfoLevel, msg, nil)
	return msg
}
