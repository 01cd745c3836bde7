// Package eventlog implements Hyperion's append-only audit log.
//
// # Overview
//
// A Log owns an in-memory ordered buffer of events and an optional
// append-only backing file. The file is plain NDJSON: one JSON object per
// line with fields ts_ms, source, level, message, kv, each line
// independently parseable. There is no compaction, rotation, or
// truncation; unbounded growth is an accepted property of the format.
//
// API surface (internal)
//
//	l, _ := eventlog.Open(filepath.Join(dataDir, "events.ndjson"))
//	defer l.Close()
//
//	_ = l.Append(eventlog.Now("serve", "info", "runtime started"))
//
//	// Replay is explicit and best-effort: malformed lines are skipped.
//	n, _ := l.LoadFromDisk()
//	last := l.Tail(20)
//	_ = n
//	_ = last
//
// # Durability
//
// Appends are buffered writes by default. Setting HYPERION_STRICT_DURABILITY
// (or WithStrictDurability) forces a fsync per append, trading throughput
// for crash safety. The in-memory buffer is updated only after the file
// write succeeds, so the two views never diverge.
//
// # Concurrency
//
// Log does no internal locking. A single owner must serialize all calls;
// concurrent hosts wrap the instance behind their own boundary.
package eventlog
