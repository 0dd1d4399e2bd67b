package roster

import "strings"

// Delimiter joins the members of a team inside one nickname cell.
const Delimiter = "+"

// ParseNicknames splits a compound nickname cell on Delimiter and
// resolves each token against the player table, preserving input order.
// The order matters: it encodes the team's member sequence.
//
// Each token resolves exactly (preferred) or by first prefix match in
// the table's insertion order. Any token that resolves to nothing fails
// the whole cell with an UnresolvedAliasError.
func ParseNicknames(cell string, players *Table) ([]int64, error) {
	tokens := strings.Split(cell, Delimiter)
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, err := players.ResolveToken("player", token)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
