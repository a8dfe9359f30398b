// Package profile builds the query profile (PEQ): for every (symbol, block)
// pair, a bitmask marking which of the block's query rows equal that symbol.
package profile

import (
	"github.com/thesyncim/edalign/internal/alphabet"
	"github.com/thesyncim/edalign/internal/bitword"
)

// Table is the PEQ table: Table[s][b] is the Word for symbol index s
// (0..alphabetLen inclusive, where alphabetLen is the wildcard symbol) and
// block index b (0..maxBlocks).
type Table struct {
	words     [][]bitword.Word
	maxBlocks int
	// PadWidth is w, the number of padding rows in the final block
	// (maxBlocks*Width - len(query)).
	PadWidth int
}

// MaxBlocks returns ceil(|query| / Width).
func (t *Table) MaxBlocks() int {
	return t.maxBlocks
}

// Word returns PEQ[symbol, block].
func (t *Table) Word(symbol, block int) bitword.Word {
	return t.words[symbol][block]
}

// Build constructs the PEQ table for a transformed query against eq.
//
// Bit i of PEQ[s, b] is set iff query position b*Width+i equals (under eq)
// symbol s, or that position is beyond the query's end (treated as
// wildcard). PEQ[alphabetLen, *] (the wildcard symbol row) is all-ones.
func Build(query []int, eq *alphabet.Equality) *Table {
	alphaLen := eq.Len()
	maxBlocks := bitword.CeilDivWidth(len(query))
	padWidth := 0
	if maxBlocks > 0 {
		padWidth = maxBlocks*bitword.Width - len(query)
	}

	words := make([][]bitword.Word, alphaLen+1)
	for s := 0; s <= alphaLen; s++ {
		row := make([]bitword.Word, maxBlocks)
		if s == alphaLen {
			// Wildcard symbol: every word is all-ones.
			for b := range row {
				row[b] = ^bitword.Word(0)
			}
			words[s] = row
			continue
		}
		for b := 0; b < maxBlocks; b++ {
			var w bitword.Word
			base := b * bitword.Width
			for i := 0; i < bitword.Width; i++ {
				r := base + i
				if r >= len(query) || eq.AreEqual(query[r], s) {
					w |= bitword.Word(1) << uint(i)
				}
			}
			row[b] = w
		}
		words[s] = row
	}

	return &Table{words: words, maxBlocks: maxBlocks, PadWidth: padWidth}
}
