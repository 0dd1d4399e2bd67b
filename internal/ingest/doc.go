// Package ingest turns a results workbook into rows for the store.
//
// The pipeline is a single linear pass: build the games and players
// alias tables, normalize the Results sheet into one record per event,
// expand each team into next-teammate chained result rows, and hand
// everything to the store. Any parse or resolution failure aborts the
// whole run before the event transaction commits; this is a batch tool
// and a blocked run beats a partial import.
package ingest
