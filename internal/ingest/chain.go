package ingest

import "github.com/hward/gamenight/internal/store"

// ChainRows projects an ordered team onto next-teammate linked result
// rows: member i points at member i+1 and the last member at nothing.
// Chains never cross teams; each team of an event is chained on its
// own.
func ChainRows(group []int64, winner bool) []store.ResultRow {
	rows := make([]store.ResultRow, 0, len(group))
	for i, playerID := range group {
		var next *int64
		if i+1 < len(group) {
			n := group[i+1]
			next = &n
		}
		rows = append(rows, store.ResultRow{
			PlayerID:     playerID,
			NextTeammate: next,
			Winner:       winner,
		})
	}
	return rows
}

// eventRows expands one normalized record into its event and result
// rows: the winning team first, then each other team in column order.
func eventRows(rec EventRecord) store.EventRows {
	results := ChainRows(rec.Winner, true)
	for _, group := range rec.Others {
		results = append(results, ChainRows(group, false)...)
	}
	return store.EventRows{
		Date:    rec.Date,
		Game:    rec.Game,
		GameID:  rec.GameID,
		Results: results,
	}
}
