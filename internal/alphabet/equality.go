package alphabet

// Equality is a square boolean relation over alphabet indices: identity plus
// any user-supplied extra equivalences. Index A (one past the alphabet) is
// reserved for the wildcard symbol, which has no backing byte.
type Equality struct {
	alphabet []byte
	matrix   []bool // len(alphabet) x len(alphabet), row-major
}

// Pair is a user-supplied equivalence between two raw bytes.
type Pair struct {
	First, Second byte
}

// NewEquality builds the equality table for alphabet, starting from the
// identity relation and applying added pairs whose endpoints both appear in
// the alphabet. Pairs referencing bytes outside the alphabet are silently
// dropped: this is the caller's configuration, not an error.
//
// Writes are not forced symmetric: added is applied exactly as given, one
// direction at a time, matching the reference semantics.
func NewEquality(alphabet []byte, added []Pair) *Equality {
	n := len(alphabet)
	e := &Equality{
		alphabet: alphabet,
		matrix:   make([]bool, n*n),
	}
	for i := 0; i < n; i++ {
		e.matrix[i*n+i] = true
	}

	indexOf := make(map[byte]int, n)
	for i, b := range alphabet {
		indexOf[b] = i
	}

	for _, p := range added {
		x, xok := indexOf[p.First]
		y, yok := indexOf[p.Second]
		if !xok || !yok {
			continue
		}
		e.matrix[x*n+y] = true
	}
	return e
}

// Len returns the alphabet size A (not counting the wildcard symbol).
func (e *Equality) Len() int {
	return len(e.alphabet)
}

// AreEqual reports whether symbol indices a and b are considered equivalent.
// The wildcard index (Len()) is equal to everything.
func (e *Equality) AreEqual(a, b int) bool {
	n := e.Len()
	if a == n || b == n {
		return true
	}
	return e.matrix[a*n+b]
}

// Symbol returns the byte at alphabet index i and true, or (0, false) if i is
// the wildcard index.
func (e *Equality) Symbol(i int) (byte, bool) {
	if i < 0 || i >= e.Len() {
		return 0, false
	}
	return e.alphabet[i], true
}
