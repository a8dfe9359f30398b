// Package alphabet implements the alphabet transform and equality table that
// precede the banded DP sweep: mapping raw sequence bytes to dense indices
// and building the equivalence relation those indices are compared under.
package alphabet

// MaxSymbols is the largest alphabet the engine supports (one byte can take
// at most 256 distinct values).
const MaxSymbols = 256

// Transform is the result of running the alphabet transform over a
// (query, target) pair: the ordered alphabet plus both sequences re-expressed
// as alphabet indices.
type Transform struct {
	// Alphabet holds the distinct bytes seen, in first-appearance order
	// across query then target.
	Alphabet []byte
	// Query and Target are the original sequences re-expressed as indices
	// into Alphabet.
	Query  []int
	Target []int
}

// Len returns the alphabet size A.
func (t Transform) Len() int {
	return len(t.Alphabet)
}

// Build scans query then target left to right, discovering the alphabet in
// insertion order and re-expressing both sequences as alphabet indices.
//
// Scan order (query first, then target) is load-bearing: it determines the
// alphabet's contents deterministically and thus the PEQ table built from it.
func Build(query, target []byte) Transform {
	var indexOf [MaxSymbols]int
	var present [MaxSymbols]bool
	alpha := make([]byte, 0, MaxSymbols)

	transform := func(seq []byte) []int {
		out := make([]int, len(seq))
		for i, c := range seq {
			if !present[c] {
				present[c] = true
				indexOf[c] = len(alpha)
				alpha = append(alpha, c)
			}
			out[i] = indexOf[c]
		}
		return out
	}

	q := transform(query)
	tgt := transform(target)

	return Transform{Alphabet: alpha, Query: q, Target: tgt}
}
