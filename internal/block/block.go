// Package block implements the bit-parallel block update: the pure function
// that advances one column's worth of vertical delta vectors for a single
// 64-row slice of the edit-distance matrix.
package block

import "github.com/thesyncim/edalign/internal/bitword"

// Block represents Width consecutive rows of one column of the
// edit-distance matrix.
//
// Invariant: P&M == 0 always holds after Advance.
type Block struct {
	// P has bit i set iff the vertical-in delta at row i is +1.
	P bitword.Word
	// M has bit i set iff the vertical-in delta at row i is -1.
	M bitword.Word
	// Score is the absolute score of the block's last (highest-row) cell.
	Score int64
}

// Sentinel returns the initial state for block index b before any column has
// been processed: P all-ones, M zero, score (b+1)*Width. This is the
// standard sentinel column to the left of the query.
func Sentinel(b int) Block {
	return Block{P: ^bitword.Word(0), M: 0, Score: int64(b+1) * bitword.Width}
}

// Advance runs one column's block update (Myers 1999's Advance_Block).
//
// eq is PEQ[symbol, block]; hin is the horizontal-in delta, in {-1, 0, +1}.
// Advance returns the horizontal-out delta hout and mutates the block's P, M
// and Score in place.
func (b *Block) Advance(eq bitword.Word, hin int) int {
	xv := eq | b.M

	if hin < 0 {
		eq |= 1
	}
	xh := (((eq & b.P) + b.P) ^ b.P) | eq

	ph := b.M | ^(xh | b.P)
	mh := b.P & xh

	var hout int
	if ph&bitword.HighBitMask != 0 {
		hout = 1
	}
	if mh&bitword.HighBitMask != 0 {
		hout--
	}

	ph <<= 1
	mh <<= 1

	if hin < 0 {
		mh |= 1
	} else if hin > 0 {
		ph |= 1
	}

	b.P = mh | ^(xv | ph)
	b.M = ph & xv
	b.Score += int64(hout)

	return hout
}

// CellValue reconstructs the absolute score of row i (0 = top, Width-1 =
// bottom) from the block's (P, M, Score), per the formula in the data model:
// score - popcount(P >> (i+1)) + popcount(M >> (i+1)).
func (b *Block) CellValue(i int) int64 {
	shift := uint(i + 1)
	if shift >= bitword.Width {
		return b.Score
	}
	return b.Score - int64(bitword.PopCount(b.P>>shift)) + int64(bitword.PopCount(b.M>>shift))
}
