package profile

import (
	"strings"
	"testing"

	"github.com/thesyncim/edalign/internal/alphabet"
	"github.com/thesyncim/edalign/internal/bitword"
)

func TestBuildWildcardRow(t *testing.T) {
	tr := alphabet.Build([]byte("ACGT"), []byte("ACGT"))
	eq := alphabet.NewEquality(tr.Alphabet, nil)
	table := Build(tr.Query, eq)

	for b := 0; b < table.MaxBlocks(); b++ {
		if w := table.Word(tr.Len(), b); w != ^bitword.Word(0) {
			t.Errorf("wildcard row block %d = %#x, want all-ones", b, w)
		}
	}
}

func TestBuildKnownQuery(t *testing.T) {
	// Matches the reference design's worked example: "AGGATACA" x 10.
	query := strings.Repeat("AGGATACA", 10)
	tr := alphabet.Build([]byte(query), []byte(query))
	eq := alphabet.NewEquality(tr.Alphabet, nil)
	table := Build(tr.Query, eq)

	if got, want := table.MaxBlocks(), bitword.CeilDivWidth(len(query)); got != want {
		t.Fatalf("MaxBlocks() = %d, want %d", got, want)
	}
	if table.PadWidth != table.MaxBlocks()*bitword.Width-len(query) {
		t.Errorf("PadWidth = %d, want %d", table.PadWidth, table.MaxBlocks()*bitword.Width-len(query))
	}
}

func TestBuildPaddingIsWildcard(t *testing.T) {
	query := []byte("ACGTA") // 5 chars, one block with 59 padding rows
	tr := alphabet.Build(query, query)
	eq := alphabet.NewEquality(tr.Alphabet, nil)
	table := Build(tr.Query, eq)

	if table.MaxBlocks() != 1 {
		t.Fatalf("MaxBlocks() = %d, want 1", table.MaxBlocks())
	}
	// Every real symbol's word must have all padding-row bits set (rows 5..63).
	for s := 0; s < tr.Len(); s++ {
		w := table.Word(s, 0)
		for i := len(query); i < bitword.Width; i++ {
			if w&(bitword.Word(1)<<uint(i)) == 0 {
				t.Errorf("symbol %d: padding row %d not set in %#x", s, i, w)
			}
		}
	}
}
