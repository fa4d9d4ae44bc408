package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown log level")

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

func (l Level) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts the level names used on the command line.
func ParseLevel(name string) (Level, error) {
	l, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return l, nil
}

// Type selects the slog handler used to format records.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType accepts "text" or "json".
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, fmt.Errorf("unknown log format %q", name)
}
