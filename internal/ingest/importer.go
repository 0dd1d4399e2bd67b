package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hward/gamenight/internal/roster"
	"github.com/hward/gamenight/internal/sheet"
	"github.com/hward/gamenight/internal/store"
)

// ImportWorkbook runs the whole pipeline against one workbook: alias
// tables, normalization, chain expansion, and the store writes.
// Reference tables are upserted before any event row so foreign keys
// hold; events and results go in as one transaction.
//
// source labels the workbook in the import_run audit row; pass the
// path the user gave.
func ImportWorkbook(ctx context.Context, st *store.Store, wb sheet.Workbook, source string) (*store.ImportRun, error) {
	gameRows, err := wb.Rows(sheet.GamesSheet)
	if err != nil {
		return nil, err
	}
	playerRows, err := wb.Rows(sheet.PlayersSheet)
	if err != nil {
		return nil, err
	}
	resultRows, err := wb.Rows(sheet.ResultsSheet)
	if err != nil {
		return nil, err
	}

	games := roster.BuildTable(gameRows)
	players := roster.BuildTable(playerRows)
	slog.Info("alias tables built", "games", games.Len(), "players", players.Len())

	records, err := Normalize(resultRows, games, players)
	if err != nil {
		return nil, err
	}
	slog.Info("results normalized", "events", len(records))

	if err := st.UpsertGames(ctx, refRows(games)); err != nil {
		return nil, err
	}
	if err := st.UpsertPlayers(ctx, refRows(players)); err != nil {
		return nil, err
	}

	events := make([]store.EventRows, 0, len(records))
	for _, rec := range records {
		events = append(events, eventRows(rec))
	}
	if err := st.ImportEvents(ctx, events); err != nil {
		return nil, err
	}

	run := store.ImportRun{
		ID:         uuid.NewString(),
		ImportedAt: time.Now().UTC(),
		Workbook:   source,
		Events:     len(events),
	}
	if err := st.RecordImportRun(ctx, run); err != nil {
		return nil, fmt.Errorf("import succeeded but audit row failed: %w", err)
	}
	slog.Info("import complete", "run_id", run.ID, "events", run.Events)

	return &run, nil
}

func refRows(t *roster.Table) []store.RefRow {
	entries := t.Canonical()
	rows := make([]store.RefRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, store.RefRow{ID: e.ID, Name: e.Name})
	}
	return rows
}
