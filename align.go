package align

import (
	"errors"
	"fmt"

	"github.com/thesyncim/edalign/internal/alphabet"
	"github.com/thesyncim/edalign/internal/dp"
	"github.com/thesyncim/edalign/internal/profile"
	"github.com/thesyncim/edalign/internal/trace"
)

// Align runs the bit-parallel banded DP engine over query and target per
// cfg and returns the computed Result.
//
// Empty sequences are handled directly rather than through the DP engine:
// an empty query trivially costs len(target) insertions in Global mode (or
// 0 in Prefix/Infix, since an unconsumed target is free there), and an
// empty target always costs len(query) deletions regardless of mode, since
// all three modes require the query to be fully consumed.
func Align(cfg Config, query, target []byte) (Result, error) {
	if len(query) == 0 {
		return alignEmptyQuery(cfg, target), nil
	}
	if len(target) == 0 {
		return alignEmptyTarget(cfg, query), nil
	}

	tr := alphabet.Build(query, target)
	eq := alphabet.NewEquality(tr.Alphabet, toAlphabetPairs(cfg.AddedEqualities))
	peq := profile.Build(tr.Query, eq)

	out, err := dp.Run(dp.RunConfig{
		Peq:      peq,
		QueryLen: len(tr.Query),
		Target:   tr.Target,
		Mode:     toDPMode(cfg.Mode),
		K:        cfg.K,
	})
	if err != nil {
		return Result{}, wrapDPErr("run", err)
	}

	result := Result{AlphabetLength: tr.Len()}
	if out.State != dp.Found {
		return result, nil
	}

	distance := out.EditDistance
	result.EditDistance = &distance
	result.EndLocations = out.EndLocations

	if cfg.Task >= Locations {
		result.StartLocations = recoverStarts(cfg.Mode, tr, eq, out)
	}

	if cfg.Task >= Path && len(out.EndLocations) > 0 {
		alignment, err := reconstructPath(peq, tr, out.EndLocations[0], result.StartLocations[0])
		if err != nil {
			return Result{}, wrapDPErr("reconstruct path", err)
		}
		result.Alignment = alignment
	}

	return result, nil
}

// wrapDPErr translates an internal/dp error into the align package's own
// sentinel at the public API boundary, per the documented error contract;
// other dp errors pass through unwrapped with context on which stage
// produced them.
func wrapDPErr(stage string, err error) error {
	if errors.Is(err, dp.ErrInvalidConfiguration) {
		return fmt.Errorf("align: %s: %w", stage, ErrInvalidConfiguration)
	}
	return fmt.Errorf("align: %s: %w", stage, err)
}

func alignEmptyQuery(cfg Config, target []byte) Result {
	result := Result{AlphabetLength: distinctByteCount(nil, target)}
	if cfg.Mode == Global {
		distance := len(target)
		result.EditDistance = &distance
		result.EndLocations = []int{len(target) - 1}
	} else {
		distance := 0
		result.EditDistance = &distance
		result.EndLocations = []int{-1}
	}
	if cfg.Task >= Locations {
		result.StartLocations = []int{0}
	}
	if cfg.Task >= Path {
		if cfg.Mode == Global {
			result.Alignment = convertOps(trace.Walk(nil, 0, len(target)))
		} else {
			result.Alignment = []EditOp{}
		}
	}
	return result
}

func alignEmptyTarget(cfg Config, query []byte) Result {
	result := Result{AlphabetLength: distinctByteCount(query, nil)}
	distance := len(query)
	result.EditDistance = &distance
	result.EndLocations = []int{-1}
	if cfg.Task >= Locations {
		result.StartLocations = []int{0}
	}
	if cfg.Task >= Path {
		result.Alignment = convertOps(trace.Walk(nil, len(query), 0))
	}
	return result
}

func distinctByteCount(query, target []byte) int {
	return alphabet.Build(query, target).Len()
}

func recoverStarts(mode Mode, tr alphabet.Transform, eq *alphabet.Equality, out dp.Outcome) []int {
	if mode != Infix {
		starts := make([]int, len(out.EndLocations))
		return starts
	}

	reversedQuery := make([]int, len(tr.Query))
	for i, v := range tr.Query {
		reversedQuery[len(tr.Query)-1-i] = v
	}
	reversedPeq := profile.Build(reversedQuery, eq)
	starts, _ := dp.RecoverInfixStarts(reversedPeq, len(tr.Query), tr.Target, out.EndLocations, out.FinalK)
	return starts
}

// reconstructPath runs a second global-mode pass (per §4.7's prerequisite)
// over the substring target[start..=end] with trace capture enabled, then
// walks the retained trace backward to recover the edit operation sequence
// for the first (start, end) pair. end == -1 marks the degenerate infix
// case (§4.6's open question), which is not treated as a distinct
// alignment: no path is reconstructed for it.
func reconstructPath(peq *profile.Table, tr alphabet.Transform, end, start int) ([]EditOp, error) {
	if end < 0 {
		return nil, nil
	}
	substring := tr.Target[start : end+1]
	out, err := dp.Sweep(dp.RunConfig{
		Peq:          peq,
		QueryLen:     len(tr.Query),
		Target:       substring,
		Mode:         dp.Global,
		K:            len(substring) + len(tr.Query), // wide enough to guarantee completion
		CaptureTrace: true,
	})
	if err != nil {
		return nil, err
	}
	if out.State != dp.Found {
		return nil, nil
	}
	return convertOps(trace.Walk(out.Trace, len(tr.Query), len(substring))), nil
}

func convertOps(ops []trace.EditOp) []EditOp {
	out := make([]EditOp, len(ops))
	for i, op := range ops {
		out[i] = EditOp(op)
	}
	return out
}

func toDPMode(m Mode) dp.Mode {
	switch m {
	case Prefix:
		return dp.Prefix
	case Infix:
		return dp.Infix
	default:
		return dp.Global
	}
}

func toAlphabetPairs(pairs []Pair) []alphabet.Pair {
	if pairs == nil {
		return nil
	}
	out := make([]alphabet.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = alphabet.Pair{First: p.First, Second: p.Second}
	}
	return out
}
