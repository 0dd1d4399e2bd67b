// Package roster resolves the free-text names used in the workbook.
//
// The Games and Players sheets are alias tables: each row lists one
// canonical name followed by any number of alternate spellings, and
// every string in row N resolves to id N (rows numbered from 1). The
// Results sheet then refers to games and players by any of those
// spellings, with team cells joining players by "+".
package roster
