package ingest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hward/gamenight/internal/roster"
)

// EventRecord is one normalized row of the Results sheet.
type EventRecord struct {
	Date   time.Time
	Game   string // the game cell as written, kept for error context
	GameID int64
	Winner []int64   // ordered winning team
	Others [][]int64 // ordered non-winning teams, variable count
}

// dateLayouts are the accepted textual date formats. The first is the
// house style ("5 Jan 2024"); the rest cover ISO dates and the default
// renderings excelize produces for native date cells.
var dateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// MalformedDateError reports a date cell that parses under none of the
// accepted formats. Row is the 1-based spreadsheet row.
type MalformedDateError struct {
	Row   int
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("results row %d: malformed date %q", e.Row, e.Value)
}

// Normalize walks the Results sheet, skipping exactly one header row,
// and produces one EventRecord per data row. A row whose date cell is
// empty ends the scan: it is the end-of-data sentinel, matching the
// alias tables' empty-row convention.
//
// Per row: the date cell must parse (native or textual), the game cell
// must resolve exactly against the games table, the winner cell and
// every non-empty trailing cell resolve to ordered teams via the
// nickname parser. Empty trailing cells are skipped, so a row may have
// any number of non-winning teams.
func Normalize(rows [][]string, games, players *roster.Table) ([]EventRecord, error) {
	var records []EventRecord

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		if len(row) == 0 || row[0] == "" {
			break
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("results row %d: want date, game and winner cells, got %d cells", rowNum, len(row))
		}

		date, err := parseDate(row[0])
		if err != nil {
			return nil, &MalformedDateError{Row: rowNum, Value: row[0]}
		}

		gameID, err := games.ResolveToken("game", row[1])
		if err != nil {
			return nil, fmt.Errorf("results row %d: %w", rowNum, err)
		}

		winner, err := roster.ParseNicknames(row[2], players)
		if err != nil {
			return nil, fmt.Errorf("results row %d: %w", rowNum, err)
		}

		var others [][]int64
		for _, cell := range row[3:] {
			if cell == "" {
				continue
			}
			group, err := roster.ParseNicknames(cell, players)
			if err != nil {
				return nil, fmt.Errorf("results row %d: %w", rowNum, err)
			}
			others = append(others, group)
		}

		records = append(records, EventRecord{
			Date:   date,
			Game:   row[1],
			GameID: gameID,
			Winner: winner,
			Others: others,
		})
	}

	return records, nil
}

// parseDate accepts the textual layouts above plus a bare Excel serial
// number, which is how a native date cell arrives when its style has
// no date format.
func parseDate(cell string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", cell)
}
