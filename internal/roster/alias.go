package roster

import (
	"fmt"
	"log/slog"
	"strings"
)

// Entry pairs an assigned id with the canonical name of its alias row.
// The canonical name is the first non-empty cell of the row.
type Entry struct {
	ID   int64
	Name string
}

// Table maps every alias string from an alias sheet to the id of the
// row it appeared in. Alias insertion order is preserved because prefix
// resolution depends on it.
type Table struct {
	keys  []string // unique alias strings, first-seen order
	index map[string]int64
	canon []Entry
}

// BuildTable scans the rows of an alias sheet, assigning id 1 to the
// first row and incrementing by one per row regardless of how many
// aliases the row carries. Empty cells are skipped; the first fully
// empty row ends the scan and any rows after it are ignored.
//
// A duplicate alias across rows overwrites the earlier mapping (last
// write wins) and logs a warning, since it usually signals a
// spreadsheet authoring mistake.
func BuildTable(rows [][]string) *Table {
	t := &Table{index: make(map[string]int64)}

	var id int64 = 1
	for _, row := range rows {
		blank := true
		for _, cell := range row {
			if cell == "" {
				continue
			}
			// The row's first non-empty cell names the entity, even
			// when that spelling already aliases another row: the id
			// still needs a reference row or results resolved through
			// the overwritten alias would dangle.
			if blank {
				t.canon = append(t.canon, Entry{ID: id, Name: cell})
			}
			blank = false
			if prev, ok := t.index[cell]; ok {
				if prev != id {
					slog.Warn("duplicate alias, last write wins",
						"alias", cell, "old_id", prev, "new_id", id)
				}
				t.index[cell] = id
				continue
			}
			t.index[cell] = id
			t.keys = append(t.keys, cell)
		}
		if blank {
			break
		}
		id++
	}

	return t
}

// Resolve returns the id for an exact alias match.
func (t *Table) Resolve(token string) (int64, bool) {
	id, ok := t.index[token]
	return id, ok
}

// ResolvePrefix returns the id of the first alias, in insertion order,
// that starts with token. Exact matches are not consulted first here;
// callers wanting exact-then-prefix semantics use ResolveToken.
func (t *Table) ResolvePrefix(token string) (int64, bool) {
	for _, key := range t.keys {
		if strings.HasPrefix(key, token) {
			return t.index[key], true
		}
	}
	return 0, false
}

// ResolveToken resolves a single token: exact match first, then first
// prefix match in insertion order. An unresolvable token is a hard
// error rather than a silent skip.
func (t *Table) ResolveToken(kind, token string) (int64, error) {
	if id, ok := t.Resolve(token); ok {
		return id, nil
	}
	if id, ok := t.ResolvePrefix(token); ok {
		return id, nil
	}
	return 0, &UnresolvedAliasError{Kind: kind, Token: token}
}

// Canonical returns (id, canonical name) pairs in row order, for
// seeding the reference tables.
func (t *Table) Canonical() []Entry {
	out := make([]Entry, len(t.canon))
	copy(out, t.canon)
	return out
}

// Len returns the number of alias rows scanned.
func (t *Table) Len() int {
	return len(t.canon)
}

// UnresolvedAliasError reports a token that matched no alias, exactly
// or by prefix. Kind is "game" or "player".
type UnresolvedAliasError struct {
	Kind  string
	Token string
}

func (e *UnresolvedAliasError) Error() string {
	return fmt.Sprintf("unresolved %s nickname %q", e.Kind, e.Token)
}
