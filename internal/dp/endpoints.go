package dp

import "github.com/thesyncim/edalign/internal/profile"

// RecoverInfixStarts implements the §4.6 endpoint-recovery rule for infix
// mode: for each forward end position, run a second semi-global (prefix) DP
// with the query reversed over the target prefix ending at that position,
// reversed, so the reversed alignment is anchored at that end position, and
// take the *last* reported end of the reversed pass (biasing toward
// substitutions over leading insertions) to compute the original start
// position.
//
// reversedPeq must be the PEQ table built from the reversed query (and the
// same equality table). target is the forward, un-reversed transformed
// target. k is the edit distance already found by the forward pass.
//
// The returned degenerate flags mark positions where the forward end
// location was -1 (query would start before the target): per the reference
// design this is an unresolved edge case, recorded here as start = 0.
func RecoverInfixStarts(reversedPeq *profile.Table, queryLen int, target []int, endLocations []int, k int) ([]int, []bool) {
	starts := make([]int, len(endLocations))
	degenerate := make([]bool, len(endLocations))

	for i, e := range endLocations {
		if e < 0 {
			starts[i] = 0
			degenerate[i] = true
			continue
		}

		suffix := target[:e+1]
		reversed := make([]int, len(suffix))
		for j, v := range suffix {
			reversed[len(suffix)-1-j] = v
		}

		out, err := Sweep(RunConfig{
			Peq:      reversedPeq,
			QueryLen: queryLen,
			Target:   reversed,
			Mode:     Prefix,
			K:        k,
		})
		if err != nil || out.State != Found || len(out.EndLocations) == 0 {
			// Query never fits within k over this target prefix; only reachable if
			// the forward pass and this reverse pass disagree, which would
			// indicate a logic error upstream. Fall back to the degenerate
			// start rather than panicking on inconsistent input.
			starts[i] = 0
			degenerate[i] = true
			continue
		}

		er := out.EndLocations[len(out.EndLocations)-1]
		starts[i] = e - er
	}

	return starts, degenerate
}
