package ratmat_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chipfire/ratmat"
)

// tridiagonal builds the n×n path-graph Laplacian, a representative
// singular system for the solver.
func tridiagonal(n int) *ratmat.Dense {
	m, _ := ratmat.NewDense(n, n)
	for i := 0; i < n; i++ {
		deg := int64(2)
		if i == 0 || i == n-1 {
			deg = 1
		}
		_ = m.Set(i, i, big.NewRat(deg, 1))
		if i > 0 {
			_ = m.Set(i, i-1, big.NewRat(-1, 1))
		}
		if i < n-1 {
			_ = m.Set(i, i+1, big.NewRat(-1, 1))
		}
	}

	return m
}

func BenchmarkSolveRight_Tridiagonal16(b *testing.B) {
	a := tridiagonal(16)
	// Zero-sum right-hand side keeps the singular system consistent.
	rhs := ratmat.NewVec(16)
	rhs[0].SetInt64(15)
	for i := 1; i < 16; i++ {
		rhs[i].SetInt64(-1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ratmat.SolveRight(a, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInImage_Tridiagonal16(b *testing.B) {
	a := tridiagonal(16)
	rhs := ratmat.NewVec(16)
	rhs[0].SetInt64(1)
	rhs[15].SetInt64(-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ratmat.InImage(a, rhs); err != nil {
			b.Fatal(err)
		}
	}
}
