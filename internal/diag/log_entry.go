// Package diag provides the analyzer's diagnostics sink: a small,
// synchronous structured logger shared by the catalogue, chart and
// engine packages.
package diag

import (
	"fmt"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Component names the subsystem that produced a log entry.
type Component string

const (
	ComponentCatalogue Component = "Catalogue"
	ComponentChart     Component = "Chart"
	ComponentEngine    Component = "Engine"
	ComponentStatic    Component = "StaticCheck"
	ComponentConfig    Component = "Config"
)

// Entry is a single recorded diagnostic.
type Entry struct {
	Timestamp time.Time
	Component Component
	Level     Level
	Message   string
	Data      map[string]any
}

// Format renders the entry as a single human-readable line.
func (e *Entry) Format() string {
	ts := e.Timestamp.Format("15:04:05.000")
	return fmt.Sprintf("[%s] [%s] %s: %s", ts, e.Component, e.Level, e.Message)
}
