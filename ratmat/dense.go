// SPDX-License-Identifier: MIT

// Package ratmat: Dense is the concrete row-major rational matrix.
// Elements are stored as *big.Rat in a flat slice for cache friendliness;
// every element is owned by the matrix — At returns copies and Set stores
// copies, so callers can never alias internal state.
package ratmat

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rational values.
// r is rows, c is columns, and data holds r*c non-nil *big.Rat elements.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, entries never nil
}

// NewDense creates an r×c Dense matrix initialized to exact zeros.
// Returns ErrBadShape unless rows > 0 and cols > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice; each entry owns its own zero value
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// The returned value is independent of matrix storage; mutating it does not
// affect the matrix. Complexity: O(1) plus one big.Rat copy.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
// Returns ErrNilValue for a nil v, ErrOutOfRange for bad indices.
// Complexity: O(1) plus one big.Rat copy.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilValue)
	}
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) rational copies.
func (m *Dense) Clone() *Dense {
	copyData := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		copyData[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c) string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// NewVec allocates a rational vector of length n, initialized to exact zeros.
// Returns nil for n <= 0.
func NewVec(n int) []*big.Rat {
	if n <= 0 {
		return nil
	}
	v := make([]*big.Rat, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// CloneVec returns a deep copy of x. Nil entries become exact zeros so the
// copy never carries nil rationals.
func CloneVec(x []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(x))
	for i, v := range x {
		if v == nil {
			out[i] = new(big.Rat)
			continue
		}
		out[i] = new(big.Rat).Set(v)
	}

	return out
}
