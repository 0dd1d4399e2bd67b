package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RefRow is a reference-table row (game or player). IDs are assigned
// upstream by the alias tables and reused verbatim.
type RefRow struct {
	ID   int64
	Name string
}

// ResultRow is one player's outcome within an event. NextTeammate is
// the id of the player immediately after this one in the team's order,
// nil for the last member of a team.
type ResultRow struct {
	PlayerID     int64
	NextTeammate *int64
	Winner       bool
}

// EventRows is one event plus all of its result rows.
type EventRows struct {
	Date    time.Time
	Game    string // resolved game name, kept for error context
	GameID  int64
	Results []ResultRow
}

// ImportRun records one invocation of the importer for audit purposes.
type ImportRun struct {
	ID         string // UUID
	ImportedAt time.Time
	Workbook   string
	Events     int
}

// SchemaViolationError reports a foreign-key or uniqueness breach while
// writing an event's rows. Date and Game locate the offending
// spreadsheet row.
type SchemaViolationError struct {
	Date time.Time
	Game string
	Err  error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation for event %s (%s): %v",
		e.Date.Format("2006-01-02"), e.Game, e.Err)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}

// IsSchemaViolation reports whether err is a SchemaViolationError.
// Uses errors.As to handle wrapped errors.
func IsSchemaViolation(err error) bool {
	var sv *SchemaViolationError
	return errors.As(err, &sv)
}

// UpsertGames inserts game reference rows, ignoring rows whose id
// already exists. Re-importing the same alias sheet is a no-op.
func (s *Store) UpsertGames(ctx context.Context, rows []RefRow) error {
	return s.upsertRefs(ctx, "game", rows)
}

// UpsertPlayers inserts player reference rows, ignoring rows whose id
// already exists.
func (s *Store) UpsertPlayers(ctx context.Context, rows []RefRow) error {
	return s.upsertRefs(ctx, "player", rows)
}

func (s *Store) upsertRefs(ctx context.Context, table string, rows []RefRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert %s: begin tx: %w", table, err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, table))
	if err != nil {
		return fmt.Errorf("upsert %s: prepare: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.ID, row.Name); err != nil {
			return fmt.Errorf("upsert %s %d (%s): %w", table, row.ID, row.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert %s: commit: %w", table, err)
	}
	return nil
}

// ImportEvents appends events and their result rows in one transaction.
// Any constraint breach rolls back the whole batch and is reported as a
// SchemaViolationError carrying the offending event's date and game.
//
// Events are append-only: re-importing the same workbook adds new
// event/result rows rather than deduplicating them.
func (s *Store) ImportEvents(ctx context.Context, events []EventRows) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import events: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO event (date, game_id) VALUES (?, ?)
		`, ev.Date.Format("2006-01-02"), ev.GameID)
		if err != nil {
			return &SchemaViolationError{Date: ev.Date, Game: ev.Game, Err: err}
		}

		eventID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("import events: last insert id: %w", err)
		}

		for _, r := range ev.Results {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO result (event_id, player_id, next_teammate, winner)
				VALUES (?, ?, ?, ?)
			`, eventID, r.PlayerID, r.NextTeammate, r.Winner)
			if err != nil {
				return &SchemaViolationError{Date: ev.Date, Game: ev.Game, Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import events: commit: %w", err)
	}
	return nil
}

// RecordImportRun appends one import audit row.
func (s *Store) RecordImportRun(ctx context.Context, run ImportRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_run (id, imported_at, workbook, events)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.ImportedAt.Format(time.RFC3339), run.Workbook, run.Events)
	if err != nil {
		return fmt.Errorf("record import run: %w", err)
	}
	return nil
}
