package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

var std = log.New(os.Stderr, "", log.LstdFlags|log.Lmsgprefix)

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged.
func SetLevel(l Level) {
	current.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= current.Load()
}

func output(l Level, tag, msg string) {
	if !enabled(l) {
		return
	}
	std.Printf("[%s] %s", tag, msg)
}

func Debug(args ...any) {
	output(LevelDebug, "DEBUG", fmt.Sprint(args...))
}

func Debugf(format string, args ...any) {
	output(LevelDebug, "DEBUG", fmt.Sprintf(format, args...))
}

func Info(args ...any) {
	output(LevelInfo, "INFO", fmt.Sprint(args...))
}

func Infof(format string, args ...any) {
	output(LevelInfo, "INFO", fmt.Sprintf(format, args...))
}

func Warn(args ...any) {
	output(LevelWarn, "WARN", fmt.Sprint(args...))
}

func Warnf(format string, args ...any) {
	output(LevelWarn, "WARN", fmt.Sprintf(format, args...))
}

func Error(args ...any) {
	output(LevelError, "ERROR", fmt.Sprint(args...))
}

func Errorf(format string, args ...any) {
	output(LevelError, "ERROR", fmt.Sprintf(format, args...))
}

// Fatal logs at error level and exits the process.
func Fatal(args ...any) {
	output(LevelError, "FATAL", fmt.Sprint(args...))
	os.Exit(1)
}

func Fatalf(format string, args ...any) {
	output(LevelError, "FATAL", fmt.Sprintf(format, args...))
	os.Exit(1)
}
