// Package store persists planner state between runs.
//
// Two backends implement [Store]:
//   - bbolt (default): a single-file key/value store
//   - SQLite via modernc.org/sqlite: pure Go, no cgo required
//
// Every mutation of the subject list or the schedule is followed by a
// SaveState call, which also appends the saved state to a history log.
package store
