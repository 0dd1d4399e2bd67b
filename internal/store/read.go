package store

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Standing is one leaderboard entry.
type Standing struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Leaderboard returns players ordered by number of winning results,
// descending. Players with equal win counts are ordered by
// locale-collated name so the output is stable across runs.
//
// Players with no winning results are not listed.
func (s *Store) Leaderboard(ctx context.Context) ([]Standing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player.name, COUNT(*) AS wins
		FROM player
		JOIN result ON player.id = result.player_id
		WHERE result.winner = TRUE
		GROUP BY player.id
		ORDER BY wins DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Name, &st.Wins); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}

	// SQLite's BINARY collation is no good for human names; break win
	// ties here instead.
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return coll.CompareString(standings[i].Name, standings[j].Name) < 0
	})

	if standings == nil {
		standings = []Standing{}
	}
	return standings, nil
}

// CountRows returns the number of rows in one of the schema's tables.
// Mostly useful for tests checking reference-table idempotence.
func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	switch table {
	case "game", "player", "event", "result", "import_run":
	default:
		return 0, fmt.Errorf("count rows: unknown table %q", table)
	}

	var count int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", table, err)
	}
	return count, nil
}

// ResultsForEvent returns the result rows for one event in player-id
// order. Mostly useful for inspecting teammate chains.
func (s *Store) ResultsForEvent(ctx context.Context, eventID int64) ([]ResultRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, next_teammate, winner
		FROM result
		WHERE event_id = ?
		ORDER BY player_id ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []ResultRow
	for rows.Next() {
		var r ResultRow
		if err := rows.Scan(&r.PlayerID, &r.NextTeammate, &r.Winner); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	if results == nil {
		results = []ResultRow{}
	}
	return results, nil
}
