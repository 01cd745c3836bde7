package eventlog

import (
	"bytes"
	"encoding/json"
	"time"
)

// Event is a single audit record. Events are immutable once appended; the
// backing file holds one JSON-encoded event per line.
type Event struct {
	TsMs    int64          `json:"ts_ms"`
	Source  string         `json:"source"`
	Level   string         `json:"level"`
	Message string         `json:"message"`
	KV      map[string]any `json:"kv"`
}

// Now creates an event stamped with the current wall clock and nil KV.
func Now(source, level, message string) Event {
	return Event{
		TsMs:    time.Now().UnixMilli(),
		Source:  source,
		Level:   level,
		Message: message,
	}
}

// Normalize fills in defaults for an incompletely populated event. It is a
// separate pass; Append stores events exactly as the caller provided them.
func Normalize(ev *Event) {
	if ev.Level == "" {
		ev.Level = "info"
	}
	if ev.Source == "" {
		ev.Source = "unknown"
	}
	if ev.Message == "" {
		ev.Message = "(no message)"
	}
	if ev.TsMs == 0 {
		ev.TsMs = time.Now().UnixMilli()
	}
	if ev.KV == nil {
		ev.KV = map[string]any{}
	}
}

// EncodeLine serializes an event as one NDJSON line (without the trailing
// newline).
func EncodeLine(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

// DecodeLine parses one line of the backing file. Returns ok=false for
// blank or malformed lines; callers skip those during replay.
func DecodeLine(line []byte) (Event, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Event{}, false
	}
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, false
	}
	return ev, true
}
