package logger

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// LogEntry is a parsed zerolog line kept for the logs endpoint.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Component string         `json:"component,omitempty"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Capture is an io.Writer that keeps the most recent JSON log entries in memory.
type Capture struct {
	buffer *RingBuffer[LogEntry]
}

// NewCapture creates a capture holding at most size entries.
func NewCapture(size int) *Capture {
	return &Capture{buffer: NewRingBuffer[LogEntry](size)}
}

// Write implements io.Writer. It receives JSON log entries from zerolog.
func (c *Capture) Write(p []byte) (int, error) {
	entry, err := parseLogEntry(p)
	if err != nil {
		return len(p), nil //nolint:nilerr // malformed lines are dropped
	}
	c.buffer.Push(entry)
	return len(p), nil
}

// Entries returns the buffered entries, oldest first.
func (c *Capture) Entries() []LogEntry {
	return c.buffer.GetAll()
}

func parseLogEntry(data []byte) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return LogEntry{}, err
	}

	entry := LogEntry{}
	take := func(key string) string {
		s, _ := raw[key].(string)
		delete(raw, key)
		return s
	}
	entry.Timestamp = take(zerolog.TimestampFieldName)
	entry.Level = take(zerolog.LevelFieldName)
	entry.Component = take("component")
	entry.Message = take(zerolog.MessageFieldName)

	if len(raw) > 0 {
		entry.Fields = raw
	}
	return entry, nil
}
