// Package align implements a bit-parallel, banded dynamic-programming
// sequence alignment engine computing Levenshtein edit distance between a
// query and a target byte sequence.
//
// The engine follows Myers' 1999 bit-vector algorithm combined with
// Ukkonen's banding: each column of the edit-distance matrix is processed as
// a stack of fixed-width word blocks, and the active band of blocks expands
// and contracts against a running error threshold k as the sweep proceeds.
// It requires no cgo dependencies.
//
// # Alignment modes
//
// Three modes share one kernel:
//   - Global (Needleman-Wunsch): both the query and the target are fully
//     aligned end to end.
//   - Prefix (semi-global, SHW): the query aligns from the target's start;
//     a trailing, unaligned suffix of the target is free.
//   - Infix (semi-global, HW): the query may align anywhere inside the
//     target; both a leading and a trailing unaligned region are free.
//
// # Tasks
//
// Distance computes only the edit distance and end positions. Locations
// additionally recovers start positions: in Infix mode via a second,
// reversed semi-global pass; Global and Prefix alignments start at 0.
// Path additionally reconstructs the edit operation sequence via a second
// global pass and backward traceback over retained block state.
//
// Use DefaultConfig for a Global/Distance run with dynamic-k doubling, and
// Align to run it.
package align
