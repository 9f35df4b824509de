package metrics

import (
	"math"
	"testing"

	"github.com/lfarias/cesim/internal/signal"
)

func TestPlateCount(t *testing.T) {
	p := signal.Peak{MigrationTime: 10.0, Sigma: 0.5}

	n := PlateCount(p)
	if math.Abs(n-400.0) > 1e-9 {
		t.Errorf("expected 400 plates, got %f", n)
	}

	if PlateCount(signal.Peak{MigrationTime: 10.0}) != 0 {
		t.Error("zero-width peak should report zero plates")
	}
}

func TestResolution(t *testing.T) {
	a := signal.Peak{MigrationTime: 5.0, Sigma: 0.5}
	b := signal.Peak{MigrationTime: 9.0, Sigma: 0.5}

	rs := Resolution(a, b)
	if math.Abs(rs-2.0) > 1e-9 {
		t.Errorf("expected Rs 2.0, got %f", rs)
	}

	// Symmetric in argument order.
	if Resolution(b, a) != rs {
		t.Error("resolution should not depend on argument order")
	}

	// Overlapping peaks resolve poorly.
	c := signal.Peak{MigrationTime: 5.2, Sigma: 0.5}
	if Resolution(a, c) >= 1.5 {
		t.Error("near-coincident peaks should not be baseline-resolved")
	}
}
