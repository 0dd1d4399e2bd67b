// Package store provides SQLite-backed storage for game-night results.
//
// The schema has two reference tables and two append-only tables:
//   - game, player: ids assigned by the workbook's alias tables,
//     inserted with ON CONFLICT(id) DO NOTHING so re-imports are no-ops
//   - event, result: appended per import, never deduplicated
//
// An import_run table records one audit row per importer invocation.
//
// All events and results for one import are written inside a single
// transaction: a constraint breach anywhere rolls back the whole batch,
// so a failed import never leaves a partially-written event behind.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
