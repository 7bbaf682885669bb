package logging

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled wrapper around the standard logger with colored tags.
type Logger struct {
	out   *log.Logger
	level Level
	tags  [4]string
}

// New creates a logger writing to w with the given prefix.
func New(w io.Writer, prefix string, level Level, colored bool) *Logger {
	l := &Logger{
		out:   log.New(w, prefix, log.LstdFlags|log.Lmicroseconds),
		level: level,
		tags:  [4]string{"DEBUG", "INFO", "WARN", "ERROR"},
	}
	if colored {
		l.tags = [4]string{
			color.New(color.FgHiBlack).Sprint("DEBUG"),
			color.New(color.FgBlue).Sprint("INFO"),
			color.New(color.FgYellow).Sprint("WARN"),
			color.New(color.FgRed, color.Bold).Sprint("ERROR"),
		}
	}
	return l
}

// Default logs info and above to stdout with the "[voxel] " prefix.
func Default() *Logger {
	return New(os.Stdout, "[voxel] ", LevelInfo, !color.NoColor)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, "", LevelError+1, false)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(l.tags[level]+" "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
