package align

// Mode selects which alignment boundary rules the engine enforces.
type Mode int

const (
	// Global (Needleman-Wunsch) aligns both sequences end to end.
	Global Mode = iota
	// Prefix (SHW) anchors the query to the target's start; a trailing
	// unaligned suffix of the target is free.
	Prefix
	// Infix (HW) allows the query to align anywhere inside the target.
	Infix
)

// Task selects how much of the result to compute. Each tier does strictly
// more work than the one before it.
type Task int

const (
	// Distance computes only EditDistance and EndLocations.
	Distance Task = iota
	// Locations additionally recovers StartLocations.
	Locations
	// Path additionally reconstructs the Alignment edit operation sequence
	// for the first (start, end) pair.
	Path
)

// Pair is a user-supplied equivalence between two raw bytes, applied on top
// of the identity relation when building the equality table.
type Pair struct {
	First, Second byte
}

// Config configures a single Align call.
type Config struct {
	// K is the error threshold. A negative value enables dynamic-k
	// doubling (starting at the word width and doubling on failure);
	// a non-negative value runs once at that fixed threshold.
	K int
	// Mode selects Global, Prefix, or Infix.
	Mode Mode
	// Task selects how much of the result to compute.
	Task Task
	// AddedEqualities are extra (byte, byte) equivalences layered on top
	// of byte identity. Pairs referencing bytes absent from either
	// sequence are silently dropped.
	AddedEqualities []Pair
}

// DefaultConfig returns a Config for a Global/Distance run with dynamic-k
// doubling, mirroring the teacher's DefaultDecoderConfig constructor
// pattern: a plain value built by a function, not a parsed config file.
func DefaultConfig() Config {
	return Config{K: -1, Mode: Global, Task: Distance}
}
