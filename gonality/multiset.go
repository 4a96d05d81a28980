// Multiset enumeration: combinations with repetition over canonical vertex
// indices, emitted in lexicographic (nondecreasing) order.
package gonality

// multisets enumerates all nondecreasing k-tuples over [0, n) one at a time.
// The zero tuple (all entries 0) comes first; successors follow the odometer
// rule: bump the rightmost entry below n−1 and level everything after it.
type multisets struct {
	n, k int
	comb []int
	done bool
}

// newMultisets prepares the enumerator positioned before the first tuple.
// Requires n >= 1 and k >= 1.
func newMultisets(n, k int) *multisets {
	return &multisets{n: n, k: k}
}

// next returns the next tuple and true, or nil and false when exhausted.
// The returned slice is reused between calls; callers must not retain it.
func (m *multisets) next() ([]int, bool) {
	if m.done {
		return nil, false
	}
	if m.comb == nil {
		m.comb = make([]int, m.k) // first tuple: all zeros
		return m.comb, true
	}

	// Find the rightmost position that can still grow.
	i := m.k - 1
	for i >= 0 && m.comb[i] == m.n-1 {
		i--
	}
	if i < 0 {
		m.done = true
		return nil, false
	}

	// Bump it and reset the suffix to the same value, keeping the tuple
	// nondecreasing and the order lexicographic.
	next := m.comb[i] + 1
	for j := i; j < m.k; j++ {
		m.comb[j] = next
	}

	return m.comb, true
}

// labelsFor converts a tuple of canonical indices into dense divisor labels:
// the multiplicity of each index, zero elsewhere.
func labelsFor(comb []int, n int) []int64 {
	labels := make([]int64, n)
	for _, i := range comb {
		labels[i]++
	}

	return labels
}
