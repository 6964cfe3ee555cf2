package generate

import (
	"math"
	"math/rand"

	"github.com/mearman/graphbox/gspec"
)

// maxEdges returns the maximum number of simple edges a graph of n nodes can
// hold: n*(n-1) directed, n*(n-1)/2 undirected.
func maxEdges(n int, directed bool) int {
	if n < 2 {
		return 0
	}
	if directed {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

// targetEdgeCount picks an edge count within the band the density spec
// describes for density: sparse ~ O(n), moderate ~ Theta(n log n), dense ~
// Theta(n^2). Validators accept bands, not exact counts, so any value
// within the documented band is a valid generator choice.
func targetEdgeCount(n int, directed bool, density gspec.Density, rng *rand.Rand) int {
	maxE := maxEdges(n, directed)
	if maxE == 0 {
		return 0
	}

	var lo, hi int
	switch density {
	case gspec.Sparse:
		lo, hi = n-1, 2*n
		// For small/mid n, 2*n can exceed half of maxE (e.g. n=8 undirected:
		// maxE=28, 2n=16, ratio=0.57), overshooting validateDensity's sparse
		// threshold. Cap at maxE/2 so a sparse draw can never cross the band
		// validateDensity checks against.
		if cap := maxE / 2; hi > cap {
			hi = cap
		}
	case gspec.Moderate:
		nlogn := int(float64(n) * math.Log2(float64(n+1)))
		lo, hi = nlogn, nlogn*2
	case gspec.Dense:
		lo = int(0.7 * float64(maxE))
		hi = maxE
	default:
		lo, hi = n-1, maxE
	}

	if lo < 0 {
		lo = 0
	}
	if hi > maxE {
		hi = maxE
	}
	if lo > hi {
		lo = hi
	}
	if hi == lo {
		return hi
	}
	return lo + rng.Intn(hi-lo+1)
}
