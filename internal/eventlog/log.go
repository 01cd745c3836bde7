package eventlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// EnvStrictDurability, when set truthy, forces a fsync after every append.
const EnvStrictDurability = "HYPERION_STRICT_DURABILITY"

// Log is an append-only event log with an in-memory buffer and an optional
// NDJSON backing file. It performs no locking; a single owner must
// serialize all calls.
type Log struct {
	path   string
	f      *os.File
	strict bool
	mem    []Event
}

// Open creates the parent directory and backing file if absent and returns
// a Log with an empty in-memory buffer. Existing file contents are not
// loaded; call LoadFromDisk to replay them.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("eventlog: create dir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("eventlog: open %s: %w", path, err)
	}
	return &Log{path: path, f: f, strict: strictFromEnv()}, nil
}

// OpenInMemory returns a Log with no backing file. Appends stay in memory
// and LoadFromDisk is a no-op.
func OpenInMemory() *Log {
	return &Log{}
}

// WithStrictDurability overrides the environment-derived durability mode.
func (l *Log) WithStrictDurability(on bool) *Log {
	l.strict = on
	return l
}

// Path returns the backing file path, or "" for in-memory logs.
func (l *Log) Path() string { return l.path }

// Append writes the event to the backing file (fsync in strict mode), then
// pushes it onto the in-memory buffer. The buffer is only updated after a
// successful write, so memory and file cannot diverge.
func (l *Log) Append(ev Event) error {
	if l.f != nil {
		line, err := EncodeLine(ev)
		if err != nil {
			return fmt.Errorf("eventlog: encode: %w", err)
		}
		if _, err := l.f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("eventlog: append %s: %w", l.path, err)
		}
		if l.strict {
			if err := l.f.Sync(); err != nil {
				return fmt.Errorf("eventlog: sync %s: %w", l.path, err)
			}
		}
	}
	l.mem = append(l.mem, ev)
	return nil
}

// Tail returns a copy of the last n buffered events in insertion order.
func (l *Log) Tail(n int) []Event {
	if n <= 0 {
		return nil
	}
	start := len(l.mem) - n
	if start < 0 {
		start = 0
	}
	return append([]Event(nil), l.mem[start:]...)
}

// All returns a copy of every buffered event in insertion order.
func (l *Log) All() []Event {
	return append([]Event(nil), l.mem...)
}

// Len returns the number of buffered events.
func (l *Log) Len() int { return len(l.mem) }

// LoadFromDisk replays the backing file into the in-memory buffer in file
// order and returns the number of events loaded. Malformed lines (e.g. a
// truncated trailing write) are skipped. No-op for in-memory logs.
func (l *Log) LoadFromDisk() (int, error) {
	if l.path == "" {
		return 0, nil
	}
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("eventlog: read %s: %w", l.path, err)
	}
	defer f.Close()

	loaded := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		ev, ok := DecodeLine(sc.Bytes())
		if !ok {
			continue
		}
		l.mem = append(l.mem, ev)
		loaded++
	}
	if err := sc.Err(); err != nil {
		return loaded, fmt.Errorf("eventlog: scan %s: %w", l.path, err)
	}
	return loaded, nil
}

// Close releases the append handle. In-memory logs have nothing to close.
func (l *Log) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

func strictFromEnv() bool {
	v := os.Getenv(EnvStrictDurability)
	if v == "" {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err == nil && on
}
