package diag

import (
	"fmt"
	"time"
)

// Logger is a circular-buffer diagnostics sink. Unlike the teacher's
// channel/goroutine-backed logger (internal/debug in the emulator this
// package is adapted from), this one logs synchronously: the analyzer
// is single-threaded and cooperative (callers drive it entirely through
// Engine.Tick, never from a background goroutine), so there is nothing
// to hand off to a worker and no risk of blocking the caller.
type Logger struct {
	entries    []Entry
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	minLevel         Level
}

// NewLogger creates a logger with the given ring-buffer capacity.
// Components are disabled by default; call SetComponentEnabled to opt in.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Logger{
		entries:          make([]Entry, maxEntries),
		maxEntries:       maxEntries,
		componentEnabled: make(map[Component]bool),
		minLevel:         LevelInfo,
	}
}

func (l *Logger) addEntry(e Entry) {
	l.entries[l.writeIndex] = e
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
}

// Log records a message for component at level, if the component is
// enabled and the level meets the configured minimum.
func (l *Logger) Log(component Component, level Level, message string, data map[string]any) {
	if !l.componentEnabled[component] {
		return
	}
	if level > l.minLevel {
		return
	}
	l.addEntry(Entry{
		Timestamp: time.Now(),
		Component: component,
		Level:     level,
		Message:   message,
		Data:      data,
	})
}

// Logf logs a formatted message.
func (l *Logger) Logf(component Component, level Level, format string, args ...any) {
	l.Log(component, level, fmt.Sprintf(format, args...), nil)
}

// SetComponentEnabled toggles logging for a component.
func (l *Logger) SetComponentEnabled(component Component, enabled bool) {
	l.componentEnabled[component] = enabled
}

// IsComponentEnabled reports whether a component is currently enabled.
func (l *Logger) IsComponentEnabled(component Component) bool {
	return l.componentEnabled[component]
}

// SetMinLevel sets the minimum level that will be recorded.
func (l *Logger) SetMinLevel(level Level) {
	l.minLevel = level
}

// Entries returns a copy of all recorded entries, oldest first.
func (l *Logger) Entries() []Entry {
	if l.entryCount == 0 {
		return []Entry{}
	}
	out := make([]Entry, l.entryCount)
	if l.entryCount < l.maxEntries {
		copy(out, l.entries[:l.entryCount])
		return out
	}
	for i := 0; i < l.entryCount; i++ {
		out[i] = l.entries[(l.writeIndex+i)%l.maxEntries]
	}
	return out
}

// Clear discards all recorded entries.
func (l *Logger) Clear() {
	l.entryCount = 0
	l.writeIndex = 0
}
