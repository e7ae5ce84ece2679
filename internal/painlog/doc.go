// Package painlog implements the day-keyed pain log data model.
//
// The model is a mapping from calendar day to a per-slot record:
//   - Level: ordered pain severity (none, mild, moderate, severe)
//   - Slot: one of the three fixed daily periods (Morning, Afternoon, Night)
//   - DayRecord: Slot -> Level for one day, plus the day's training flag
//   - Log: Day -> DayRecord for the full history
//
// An unlogged slot is a distinct absence, not Level none. The two collapse
// only at the CSV boundary, where both render as 0 (see WriteCSV).
//
// Serialization uses canonical JSON (sorted keys, NFC strings, no floats)
// so that encoding the same log always produces identical bytes regardless
// of map iteration order. Decoding is tolerant: malformed input yields an
// empty log, and unrecognized slots or out-of-range levels are dropped
// without corrupting the rest of the record.
package painlog
