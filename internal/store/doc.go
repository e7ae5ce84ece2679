// Package store provides SQLite-backed durable storage for the pain log.
//
// Two surfaces:
//   - A key/value slot (kv table) holding the serialized pain log blob
//     under a fixed key. The store treats the blob as opaque bytes;
//     encoding and decoding live in the painlog package.
//   - An append-only journal of mutations, one row per recorded entry
//     or training-flag change. Rows are ordered by a monotonic logical
//     clock (seq), never by wall time; recorded_at is display-only.
//     The journal is an audit trail, not an undo mechanism: the log
//     itself stays last-write-wins.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Schema changes are applied idempotently at Open via user_version
// migrations.
package store
