// Package dp implements the banded Myers/Ukkonen dynamic-programming sweep:
// a column-by-column pass over the target that advances a banded stack of
// blocks, expanding and contracting the band against a score threshold k,
// and reporting distances and endpoints per the active alignment mode.
package dp

import (
	"errors"

	"github.com/thesyncim/edalign/internal/bitword"
	"github.com/thesyncim/edalign/internal/block"
	"github.com/thesyncim/edalign/internal/profile"
)

// ErrInvalidConfiguration is returned when a Run call asks for both full
// trace capture and an early stop position: those are two distinct capture
// strategies (full traceback vs. a single-column snapshot for a future
// divide-and-conquer driver) and are not meant to be combined.
var ErrInvalidConfiguration = errors.New("dp: trace capture and stop position both requested")

// Mode selects which alignment boundary rules the sweep enforces.
type Mode int

const (
	Global Mode = iota // NW: both ends of query and target aligned.
	Prefix             // SHW: query aligns from target start; trailing target is free.
	Infix              // HW: query may align anywhere inside target.
)

// State is the per-run outcome per the spec's state machine.
type State int

const (
	Running State = iota
	Found
	Exhausted
)

// strongReduceInterval is how often (in columns) the engine performs the
// more expensive per-cell band re-tightening. 2048 matches the reference
// design.
const strongReduceInterval = 2048

// TraceColumn is the per-column state retained for traceback: the
// (P, M, Score) of every block in the active band, plus the band bounds.
type TraceColumn struct {
	FirstBlock, LastBlock int
	Blocks                []block.Block // len == LastBlock-FirstBlock+1
}

// RunConfig configures a single sweep. K is the fixed threshold to run at;
// callers implementing dynamic-k doubling run Sweep repeatedly with
// increasing K (see Run, which does this for them).
type RunConfig struct {
	Peq          *profile.Table
	QueryLen     int
	Target       []int
	Mode         Mode
	K            int
	CaptureTrace bool
	// StopAtColumn, when non-nil, halts the sweep after that column and
	// retains only that column's trace entry. nil means run to completion.
	StopAtColumn *int
}

// Outcome is the result of one sweep at a fixed k.
type Outcome struct {
	State        State
	EditDistance int
	// EndLocations are 0-based target positions; -1 marks "before target
	// start" in infix mode.
	EndLocations []int
	Trace        []TraceColumn // only populated if CaptureTrace was set
	FinalK       int           // k as tightened by the run (global k-update, or best score in prefix/infix)
}

// Sweep runs one banded DP pass at a fixed threshold k. It does not retry on
// Exhausted; see Run for the dynamic-k outer loop.
func Sweep(cfg RunConfig) (Outcome, error) {
	if cfg.CaptureTrace && cfg.StopAtColumn != nil {
		return Outcome{}, ErrInvalidConfiguration
	}

	maxBlocks := cfg.Peq.MaxBlocks()
	w := cfg.Peq.PadWidth
	blocks := make([]block.Block, maxBlocks)
	for b := range blocks {
		blocks[b] = block.Sentinel(b)
	}

	k := cfg.K
	firstBlock := 0
	lastBlock := bitword.Min(bitword.CeilDivWidth(k+1), maxBlocks) - 1
	if lastBlock < 0 {
		lastBlock = 0
	}

	entryHin := 1
	if cfg.Mode == Infix {
		entryHin = 0
	}

	var trace []TraceColumn
	if cfg.CaptureTrace {
		trace = make([]TraceColumn, len(cfg.Target))
	}

	bestScore := int64(k) + 1 // sentinel "nothing found yet", always > k
	found := false
	var endLocations []int

	state := Running

	for c, s := range cfg.Target {
		hin := entryHin
		for b := firstBlock; b <= lastBlock; b++ {
			hin = blocks[b].Advance(cfg.Peq.Word(s, b), hin)
		}
		lastHout := hin

		// Step 3: expand the band downward if the new block could still
		// matter.
		if lastBlock < maxBlocks-1 {
			expand := false
			switch cfg.Mode {
			case Global:
				newLastRow := bitword.Min((lastBlock+2)*bitword.Width, cfg.QueryLen) - 1
				if bitword.Abs(newLastRow-c) <= k {
					expand = true
				}
			default:
				if blocks[lastBlock].Score-int64(lastHout) <= int64(k) {
					nextTopBitSet := cfg.Peq.Word(s, lastBlock+1)&1 == 1
					if nextTopBitSet || lastHout < 0 {
						expand = true
					}
				}
			}
			if expand {
				lastBlock++
				blocks[lastBlock] = block.Sentinel(lastBlock)
				lastHout = blocks[lastBlock].Advance(cfg.Peq.Word(s, lastBlock), lastHout)
			}
		}

		// Step 4: contract the band from below.
		for lastBlock > firstBlock && blockCertainlyAboveK(&blocks[lastBlock], k, cfg.Mode, lastBlock, c, maxBlocks, cfg.QueryLen) {
			lastBlock--
		}

		// Step 5: contract the band from above (prefix/global only; infix
		// keeps firstBlock pinned at 0 since a leading target gap is free).
		if cfg.Mode != Infix {
			for firstBlock <= lastBlock && blockCertainlyAboveK(&blocks[firstBlock], k, cfg.Mode, firstBlock, c, maxBlocks, cfg.QueryLen) {
				firstBlock++
			}
		}

		// Step 6: strong reduction, periodically, using per-cell scores
		// rather than just the block-terminal score.
		if (c+1)%strongReduceInterval == 0 {
			for lastBlock > firstBlock && blockAllCellsAboveK(&blocks[lastBlock], k, cfg.Mode, lastBlock, c, maxBlocks, w) {
				lastBlock--
			}
			if cfg.Mode != Infix {
				for firstBlock <= lastBlock && blockAllCellsAboveK(&blocks[firstBlock], k, cfg.Mode, firstBlock, c, maxBlocks, w) {
					firstBlock++
				}
			}
		}

		// k-update (global only): tighten k to what could still possibly
		// yield an answer no worse than the running best.
		if cfg.Mode == Global {
			bound := blocks[lastBlock].Score + int64(bitword.Max(len(cfg.Target)-c-1, cfg.QueryLen-((lastBlock+1)*bitword.Width-1)-1))
			if lastBlock == maxBlocks-1 {
				bound += int64(w)
			}
			if bound < int64(k) {
				k = int(bound)
			}
		}

		// Step 7: report (prefix/infix only; global reports after the final
		// column).
		if cfg.Mode != Global && lastBlock == maxBlocks-1 {
			score := realLastCellScore(&blocks[lastBlock], w)
			if score <= int64(k) {
				switch {
				case score < bestScore:
					bestScore = score
					endLocations = []int{c}
					found = true
					k = int(bestScore)
				case score == bestScore:
					endLocations = append(endLocations, c)
				}
			}
		}

		if cfg.CaptureTrace {
			snap := make([]block.Block, lastBlock-firstBlock+1)
			copy(snap, blocks[firstBlock:lastBlock+1])
			trace[c] = TraceColumn{FirstBlock: firstBlock, LastBlock: lastBlock, Blocks: snap}
		}

		// Step 8: band empty -> no further alignment can be found under k
		// (a prefix alignment already recorded still stands).
		if lastBlock < firstBlock {
			state = Exhausted
			if cfg.CaptureTrace {
				trace = trace[:c+1]
			}
			break
		}

		if cfg.StopAtColumn != nil && *cfg.StopAtColumn == c {
			if cfg.CaptureTrace {
				trace = trace[:c+1]
			} else {
				trace = []TraceColumn{{FirstBlock: firstBlock, LastBlock: lastBlock, Blocks: append([]block.Block(nil), blocks[firstBlock:lastBlock+1]...)}}
			}
			break
		}
	}

	if state == Exhausted && !found {
		return Outcome{State: Exhausted, Trace: trace, FinalK: k}, nil
	}

	switch cfg.Mode {
	case Global:
		if lastBlock != maxBlocks-1 {
			return Outcome{State: Exhausted, Trace: trace, FinalK: k}, nil
		}
		score := realLastCellScore(&blocks[lastBlock], w)
		if score > int64(k) {
			return Outcome{State: Exhausted, Trace: trace, FinalK: k}, nil
		}
		return Outcome{
			State:        Found,
			EditDistance: int(score),
			EndLocations: []int{len(cfg.Target) - 1},
			Trace:        trace,
			FinalK:       k,
		}, nil
	default:
		// Extra infix reporting: padding-row cells of the bottom block at
		// the final column. Each padding offset j (1..=w, counting up from
		// the bottom) stands in for the trailing-target-gap-free alignment
		// that completed w-j+1 target columns before the literal final
		// column, since a wildcard padding row is a free diagonal step that
		// "coasts" the completed alignment forward through the rest of the
		// target. The sweep above already reports the real last row at
		// every column, so a position it recorded is skipped here; this
		// adds only positions the per-column reporting does not reach, such
		// as -1. See DESIGN.md for this decision.
		if cfg.Mode == Infix && lastBlock == maxBlocks-1 && w > 0 && len(cfg.Target) > 0 {
			finalCol := len(cfg.Target) - 1
			for j := 1; j <= w; j++ {
				v := blocks[lastBlock].CellValue(bitword.Width - j)
				if v > int64(k) {
					continue
				}
				pos := finalCol - w + j - 1
				recorded := false
				for _, e := range endLocations {
					recorded = recorded || e == pos
				}
				if recorded {
					continue
				}
				switch {
				case v < bestScore:
					bestScore = v
					endLocations = []int{pos}
					found = true
				case v == bestScore:
					endLocations = append(endLocations, pos)
				}
			}
		}
		if !found {
			return Outcome{State: Exhausted, Trace: trace, FinalK: k}, nil
		}
		return Outcome{
			State:        Found,
			EditDistance: int(bestScore),
			EndLocations: endLocations,
			Trace:        trace,
			FinalK:       k,
		}, nil
	}
}

// Run executes the dynamic-k retry loop described in the engine's common
// state: if k is negative ("unset"), start at k=Width and double on
// Exhausted until a solution is found or k has grown past the point where a
// solution is guaranteed (max(|query|, |target|)). If k is non-negative, Run
// executes a single fixed-k sweep.
func Run(cfg RunConfig) (Outcome, error) {
	if cfg.K >= 0 {
		return Sweep(cfg)
	}

	ceiling := bitword.Max(cfg.QueryLen, len(cfg.Target))
	k := bitword.Width
	for {
		attempt := cfg
		attempt.K = k
		out, err := Sweep(attempt)
		if err != nil {
			return out, err
		}
		if out.State == Found || k >= ceiling {
			return out, nil
		}
		k *= 2
	}
}

func realLastCellScore(blk *block.Block, w int) int64 {
	if w == 0 {
		return blk.Score
	}
	return blk.CellValue(bitword.Width - 1 - w)
}

func lastRowOf(b, maxBlocks, queryLen int) int {
	if b == maxBlocks-1 {
		return queryLen - 1
	}
	return (b+1)*bitword.Width - 1
}

func blockLastLocalRow(b, maxBlocks, w int) int {
	if b == maxBlocks-1 {
		return bitword.Width - 1 - w
	}
	return bitword.Width - 1
}

// blockCertainlyAboveK is the cheap, block-terminal-score test used by the
// per-column band contraction (steps 4 and 5): a block is certainly above k
// if even its lowest possible cell value exceeds k (conservatively bounded
// by score - (Width-1)), or, in global mode, if even its row nearest to
// column c is further from the diagonal than k allows.
func blockCertainlyAboveK(blk *block.Block, k int, mode Mode, b, c, maxBlocks, queryLen int) bool {
	if blk.Score >= int64(k)+bitword.Width {
		return true
	}
	if mode == Global {
		first, last := b*bitword.Width, lastRowOf(b, maxBlocks, queryLen)
		dist := 0
		if c < first {
			dist = first - c
		} else if c > last {
			dist = c - last
		}
		if dist > k {
			return true
		}
	}
	return false
}

// blockAllCellsAboveK is the expensive, per-cell test used by strong
// reduction: a block is prunable only if every one of its real cells is
// certainly above k.
func blockAllCellsAboveK(blk *block.Block, k int, mode Mode, b, c, maxBlocks, w int) bool {
	hiLocal := blockLastLocalRow(b, maxBlocks, w)
	base := b * bitword.Width
	for i := 0; i <= hiLocal; i++ {
		v := blk.CellValue(i)
		above := v > int64(k)
		if mode == Global && !above {
			if bitword.Abs(base+i-c) > k {
				above = true
			}
		}
		if !above {
			return false
		}
	}
	return true
}

