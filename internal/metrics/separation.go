// Package metrics computes separation-quality figures from synthesized
// peaks. Values are descriptive, derived from the Gaussian peak parameters
// rather than re-fit from the noisy trace.
package metrics

import (
	"math"

	"github.com/lfarias/cesim/internal/signal"
)

// PlateCount returns the theoretical plate number N = (tm/sigma)².
// Returns 0 for a degenerate zero-width peak.
func PlateCount(p signal.Peak) float64 {
	if p.Sigma <= 0 {
		return 0
	}
	r := p.MigrationTime / p.Sigma
	return r * r
}

// Resolution returns the separation between two Gaussian peaks using 4-sigma
// base widths: Rs = |tm2 - tm1| / (2(sigma1 + sigma2)). Rs >= 1.5 is
// conventionally baseline-resolved.
func Resolution(a, b signal.Peak) float64 {
	denom := 2 * (a.Sigma + b.Sigma)
	if denom <= 0 {
		return 0
	}
	return math.Abs(b.MigrationTime-a.MigrationTime) / denom
}
