// errors.go defines public error types for the align package.

package align

import "errors"

// Public error types for the alignment operation.
var (
	// ErrInvalidConfiguration indicates that a Config requested two
	// mutually exclusive DP capture strategies (full trace capture and a
	// stop-at-column snapshot) in the same call.
	ErrInvalidConfiguration = errors.New("align: invalid configuration: trace capture and stop position both requested")

	// ErrNotRepresentable indicates that an internal signed/unsigned width
	// conversion would overflow. Only reachable with a narrower-than-64-bit
	// Word and pathologically long sequences; the reference Word width is
	// 64 bits, so this is not reachable through the public API today.
	ErrNotRepresentable = errors.New("align: score not representable in configured word width")
)
