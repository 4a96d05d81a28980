// Package chipfire computes structural invariants of finite weighted graphs
// under divisor theory — the combinatorial analogue of algebraic-curve
// divisor theory built on the chip-firing game.
//
// 🚀 What is chipfire?
//
//	An exact-arithmetic library that brings together:
//		• Core primitives: immutable weighted multigraphs with a canonical
//		  vertex order and a rational Laplacian
//		• Divisor algebra: chip configurations, effectiveness, principality,
//		  chip-firing and borrowing moves
//		• Reduction engine: semi-reduction via an exact-rational Laplacian
//		  solve, then Dhar's burning fixpoint to the unique v-reduced form
//		• Gonality search: iterative deepening over vertex multisets until a
//		  winning divisor is found
//
// ✨ Why choose chipfire?
//
//   - Exact by construction – big-rational linear algebra, no floats anywhere
//   - Deterministic – fixed iteration orders, reproducible witnesses
//   - Immutable values – graphs and divisors never mutate after construction,
//     so they are safe to share across goroutines
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under six subpackages:
//
//	core/     — immutable Graph type, Laplacian, connectivity, equality
//	ratmat/   — exact rational dense matrices: solve & image-membership
//	divisor/  — Divisor values and the chip-firing move
//	dhar/     — semi-reduction and the burning-algorithm reduction loop
//	gonality/ — iterative-deepening gonality search
//	builder/  — deterministic graph fixtures (paths, cycles, K_n, bananas)
//
// Quick ASCII example — the triangle has gonality 2:
//
//	    1
//	   / \
//	  2───3
//
//	g, _ := builder.Cycle(3)
//	res, _ := gonality.Search(g)
//	fmt.Println(res.Degree) // 2
package chipfire
