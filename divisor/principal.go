// Principality: a divisor is principal iff it is chip-firing-equivalent to
// the zero divisor, iff its label vector lies in the column space of the
// graph Laplacian over the rationals.
package divisor

import (
	"math/big"

	"github.com/katalvlaran/chipfire/ratmat"
)

// IsPrincipal reports whether d lies in the image of the Laplacian.
//
// The test is exact: the integer labels are lifted to rationals and decided
// by ratmat.InImage (rank of the augmented matrix). Image vectors of the
// Laplacian always sum to zero, so a divisor of nonzero degree is never
// principal; that falls out of the rank test without a special case.
//
// Complexity: O(V³) rational operations.
func (d *Divisor) IsPrincipal() (bool, error) {
	vec := make([]*big.Rat, len(d.labels))
	for i, c := range d.labels {
		vec[i] = new(big.Rat).SetInt64(c)
	}

	return ratmat.InImage(d.graph.Laplacian(), vec)
}
