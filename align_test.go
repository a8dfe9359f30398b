package align_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thesyncim/edalign"
)

func intPtr(v int) *int { return &v }

// Scenario 1.
func TestAlignGlobalDistance(t *testing.T) {
	cfg := align.DefaultConfig()
	got, err := align.Align(cfg, []byte("ACT"), []byte("CGT"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 2 {
		t.Fatalf("edit distance = %v, want 2", got.EditDistance)
	}
	if diff := cmp.Diff([]int{2}, got.EndLocations); diff != "" {
		t.Errorf("end locations mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 2.
func TestAlignPrefixDistance(t *testing.T) {
	cfg := align.Config{K: -1, Mode: align.Prefix, Task: align.Distance}
	got, err := align.Align(cfg, []byte("AACT"), []byte("AACTGGC"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
	if diff := cmp.Diff([]int{3}, got.EndLocations); diff != "" {
		t.Errorf("end locations mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 3.
func TestAlignInfixLocations(t *testing.T) {
	cfg := align.Config{K: -1, Mode: align.Infix, Task: align.Locations}
	got, err := align.Align(cfg, []byte("ACT"), []byte("CGACTGAC"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
	if diff := cmp.Diff([]int{4}, got.EndLocations); diff != "" {
		t.Errorf("end locations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, got.StartLocations); diff != "" {
		t.Errorf("start locations mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 4.
func TestAlignGlobalPath(t *testing.T) {
	cfg := align.Config{K: -1, Mode: align.Global, Task: align.Path}
	got, err := align.Align(cfg, []byte("ACGT"), []byte("ACGT"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
	want := []align.EditOp{align.Match, align.Match, align.Match, align.Match}
	if diff := cmp.Diff(want, got.Alignment); diff != "" {
		t.Errorf("alignment mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 5.
func TestAlignEmptyQuery(t *testing.T) {
	global, err := align.Align(align.Config{K: -1, Mode: align.Global, Task: align.Distance}, nil, []byte("ABC"))
	if err != nil {
		t.Fatal(err)
	}
	if global.EditDistance == nil || *global.EditDistance != 3 {
		t.Fatalf("global edit distance = %v, want 3", global.EditDistance)
	}
	if diff := cmp.Diff([]int{2}, global.EndLocations); diff != "" {
		t.Errorf("global end locations mismatch (-want +got):\n%s", diff)
	}

	for _, mode := range []align.Mode{align.Prefix, align.Infix} {
		got, err := align.Align(align.Config{K: -1, Mode: mode, Task: align.Distance}, nil, []byte("ABC"))
		if err != nil {
			t.Fatal(err)
		}
		if got.EditDistance == nil || *got.EditDistance != 0 {
			t.Fatalf("mode %v: edit distance = %v, want 0", mode, got.EditDistance)
		}
		if diff := cmp.Diff([]int{-1}, got.EndLocations); diff != "" {
			t.Errorf("mode %v: end locations mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

// Scenario 6.
func TestAlignLongIdentical(t *testing.T) {
	s := ""
	for i := 0; i < 10; i++ {
		s += "AGGATACA"
	}
	got, err := align.Align(align.DefaultConfig(), []byte(s), []byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
}

// Scenario 7.
func TestAlignAddedEquality(t *testing.T) {
	cfg := align.Config{
		K:               -1,
		Mode:            align.Global,
		Task:            align.Distance,
		AddedEqualities: []align.Pair{{First: 'A', Second: 'T'}, {First: 'T', Second: 'A'}},
	}
	got, err := align.Align(cfg, []byte("AT"), []byte("TA"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
}

func TestAlignEmptyTarget(t *testing.T) {
	for _, mode := range []align.Mode{align.Global, align.Prefix, align.Infix} {
		got, err := align.Align(align.Config{K: -1, Mode: mode, Task: align.Path}, []byte("ACT"), nil)
		if err != nil {
			t.Fatal(err)
		}
		if got.EditDistance == nil || *got.EditDistance != 3 {
			t.Fatalf("mode %v: edit distance = %v, want 3", mode, got.EditDistance)
		}
		if diff := cmp.Diff([]int{-1}, got.EndLocations); diff != "" {
			t.Errorf("mode %v: end locations mismatch (-want +got):\n%s", mode, diff)
		}
		want := []align.EditOp{align.Delete, align.Delete, align.Delete}
		if diff := cmp.Diff(want, got.Alignment); diff != "" {
			t.Errorf("mode %v: alignment mismatch (-want +got):\n%s", mode, diff)
		}
	}
}

func TestAlignIdentityLaw(t *testing.T) {
	q := []byte("banana")
	got, err := align.Align(align.Config{K: -1, Mode: align.Global, Task: align.Path}, q, q)
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance == nil || *got.EditDistance != 0 {
		t.Fatalf("edit distance = %v, want 0", got.EditDistance)
	}
	if diff := cmp.Diff([]int{len(q) - 1}, got.EndLocations); diff != "" {
		t.Errorf("end locations mismatch (-want +got):\n%s", diff)
	}
	for i, op := range got.Alignment {
		if op != align.Match {
			t.Errorf("op[%d] = %v, want Match", i, op)
		}
	}
}

func TestAlignSymmetryOfDistance(t *testing.T) {
	q, tgt := []byte("kitten"), []byte("sitting")
	forward, err := align.Align(align.DefaultConfig(), q, tgt)
	if err != nil {
		t.Fatal(err)
	}
	backward, err := align.Align(align.DefaultConfig(), tgt, q)
	if err != nil {
		t.Fatal(err)
	}
	if *forward.EditDistance != *backward.EditDistance {
		t.Errorf("distance(q,t) = %d, distance(t,q) = %d, want equal", *forward.EditDistance, *backward.EditDistance)
	}
}

func TestAlignDynamicKMatchesFixedK(t *testing.T) {
	q, tgt := []byte("kitten"), []byte("sitting")
	dynamic, err := align.Align(align.DefaultConfig(), q, tgt)
	if err != nil {
		t.Fatal(err)
	}
	fixed, err := align.Align(align.Config{K: *dynamic.EditDistance, Mode: align.Global, Task: align.Distance}, q, tgt)
	if err != nil {
		t.Fatal(err)
	}
	if fixed.EditDistance == nil || *fixed.EditDistance != *dynamic.EditDistance {
		t.Errorf("fixed-k distance = %v, want %d", fixed.EditDistance, *dynamic.EditDistance)
	}
}

func TestAlignAlphabetSize(t *testing.T) {
	got, err := align.Align(align.DefaultConfig(), []byte("aab"), []byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if got.AlphabetLength != 3 {
		t.Errorf("alphabet length = %d, want 3", got.AlphabetLength)
	}
}

func TestAlignNoSolution(t *testing.T) {
	got, err := align.Align(align.Config{K: 0, Mode: align.Global, Task: align.Distance}, []byte("AAAA"), []byte("CCCC"))
	if err != nil {
		t.Fatal(err)
	}
	if got.EditDistance != nil {
		t.Errorf("edit distance = %v, want nil (no solution within k=0)", got.EditDistance)
	}
}
