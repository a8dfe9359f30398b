package align

import (
	"fmt"
	"strings"
)

// CIGARStyle selects which single-character codes FormatCIGAR emits for
// each edit operation. See http://samtools.github.io/hts-specs/SAMv1.pdf
// and http://drive5.com/usearch/manual/cigar.html.
type CIGARStyle int

const (
	// Standard uses 'M' for both match and mismatch, 'I' for insertion,
	// 'D' for deletion.
	Standard CIGARStyle = iota
	// Extended uses '=' for match, 'X' for mismatch, 'I' for insertion,
	// 'D' for deletion.
	Extended
)

// FormatCIGAR run-length encodes an edit operation sequence into a CIGAR
// string. This is a pure formatting layer over an already-computed
// Result.Alignment; the core alignment engine never produces or consumes
// CIGAR strings itself.
func FormatCIGAR(ops []EditOp, style CIGARStyle) string {
	if len(ops) == 0 {
		return ""
	}

	var b strings.Builder
	run := 1
	for i := 1; i <= len(ops); i++ {
		if i < len(ops) && cigarCode(ops[i], style) == cigarCode(ops[i-1], style) {
			run++
			continue
		}
		fmt.Fprintf(&b, "%d%c", run, cigarCode(ops[i-1], style))
		run = 1
	}
	return b.String()
}

func cigarCode(op EditOp, style CIGARStyle) byte {
	switch op {
	case Match:
		if style == Extended {
			return '='
		}
		return 'M'
	case Mismatch:
		if style == Extended {
			return 'X'
		}
		return 'M'
	case Insert:
		return 'I'
	case Delete:
		return 'D'
	default:
		return '?'
	}
}
