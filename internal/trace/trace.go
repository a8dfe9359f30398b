// Package trace reconstructs an edit operation sequence by walking a
// retained global-mode DP trace backward from its final cell.
package trace

import (
	"github.com/thesyncim/edalign/internal/bitword"
	"github.com/thesyncim/edalign/internal/dp"
)

// EditOp is one step of an alignment path.
type EditOp int

const (
	Match EditOp = iota
	Mismatch
	Insert // insertion to target = deletion from query
	Delete // deletion from target = insertion to query
)

func (op EditOp) String() string {
	switch op {
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Walk reconstructs the edit operation sequence for a global-mode DP run
// captured in columns. queryLen and targetLen are the lengths of the
// (sub)sequences the global pass ran over; len(columns) must equal
// targetLen.
//
// Degenerate cases are handled directly: an empty query emits targetLen
// insertions, an empty target emits queryLen deletions.
func Walk(columns []dp.TraceColumn, queryLen, targetLen int) []EditOp {
	if queryLen == 0 {
		ops := make([]EditOp, targetLen)
		for i := range ops {
			ops[i] = Insert
		}
		return ops
	}
	if targetLen == 0 {
		ops := make([]EditOp, queryLen)
		for i := range ops {
			ops[i] = Delete
		}
		return ops
	}

	var ops []EditOp
	r, c := queryLen, targetLen
	for r > 0 || c > 0 {
		cur, ok := cellValue(columns, r, c)
		if !ok {
			break // inconsistent trace; stop rather than loop forever
		}

		if r > 0 && c > 0 {
			// diag+1 == cur can only hold when the query and target symbols
			// differ: equal symbols always give cur == diag.
			if diag, ok := cellValue(columns, r-1, c-1); ok && diag+1 == cur {
				ops = append(ops, Mismatch)
				r--
				c--
				continue
			}
		}
		if c > 0 {
			if left, ok := cellValue(columns, r, c-1); ok && left+1 == cur {
				ops = append(ops, Insert)
				c--
				continue
			}
		}
		if r > 0 {
			if up, ok := cellValue(columns, r-1, c); ok && up+1 == cur {
				ops = append(ops, Delete)
				r--
				continue
			}
		}
		if r > 0 && c > 0 {
			// An unchanged diagonal score alone does not prove equal
			// symbols (a mismatch cell can reach it through an indel); once
			// the mismatch and indel moves are ruled out, it is a match.
			if diag, ok := cellValue(columns, r-1, c-1); ok && diag == cur {
				ops = append(ops, Match)
				r--
				c--
				continue
			}
		}
		break // no valid neighbor found; stop rather than loop forever
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops
}

// cellValue reconstructs the absolute score at matrix position (r, c), where
// r is 0..queryLen (number of query characters consumed) and c is
// 0..targetLen (number of target characters consumed). r==0 or c==0 are the
// base-case rows/columns; otherwise the value is read from the retained
// block state for trace column c-1.
func cellValue(columns []dp.TraceColumn, r, c int) (int64, bool) {
	if r == 0 {
		return int64(c), true
	}
	if c == 0 {
		return int64(r), true
	}
	col := columns[c-1]
	blockIdx := (r - 1) / bitword.Width
	if blockIdx < col.FirstBlock || blockIdx > col.LastBlock {
		return 0, false
	}
	local := (r - 1) % bitword.Width
	blk := col.Blocks[blockIdx-col.FirstBlock]
	return blk.CellValue(local), true
}
