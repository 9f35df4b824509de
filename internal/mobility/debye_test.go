package mobility

import (
	"errors"
	"math"
	"testing"

	"github.com/lfarias/cesim/internal/electro"
)

func TestDebyeLengthMagnitude(t *testing.T) {
	env := electro.DefaultEnvironment()
	env.IonicStrengthMM = 10.0

	lambda := DebyeLength(env)

	// A 10 mM 1:1 aqueous buffer at 25 °C screens over roughly 3 nm.
	if lambda < 2e-9 || lambda > 4e-9 {
		t.Errorf("expected Debye length near 3 nm, got %g m", lambda)
	}
}

func TestDebyeHuckelIonicStrengthMonotonic(t *testing.T) {
	m := NewDebyeHuckel()
	a := gallicAcid()

	env := electro.DefaultEnvironment()
	prev := math.Inf(1)
	for _, ionic := range []float64{10, 25, 50, 100, 150, 200} {
		env.IonicStrengthMM = ionic
		mu, err := m.Mobility(a, env)
		if err != nil {
			t.Fatalf("ionic strength %g: %v", ionic, err)
		}
		if math.Abs(mu) >= prev {
			t.Fatalf("|mobility| should strictly decrease with ionic strength: %g mM gave %g", ionic, mu)
		}
		prev = math.Abs(mu)
	}
}

func TestDebyeHuckelSignAndScale(t *testing.T) {
	m := NewDebyeHuckel()
	env := electro.DefaultEnvironment()

	mu, err := m.Mobility(gallicAcid(), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mu >= 0 {
		t.Errorf("anion should migrate with negative mobility, got %g", mu)
	}

	// Stokes mobility of a sub-nm monoanion lands in the 1e-8 m²/V·s decade.
	if math.Abs(mu) < 1e-9 || math.Abs(mu) > 1e-7 {
		t.Errorf("mobility magnitude out of expected decade: %g", mu)
	}
}

func TestDebyeHuckelScreeningBelowUnscreened(t *testing.T) {
	m := NewDebyeHuckel()
	a := gallicAcid()
	env := electro.DefaultEnvironment()

	mu, err := m.Mobility(a, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eta := electro.PascalSeconds(env.ViscosityCP)
	unscreened := (a.Charge * ElementaryCharge) / (6 * math.Pi * eta * a.HydrodynamicRadius)

	if math.Abs(mu) >= math.Abs(unscreened) {
		t.Errorf("screened mobility %g should be smaller in magnitude than Stokes %g", mu, unscreened)
	}
}

func TestDebyeHuckelDomainErrors(t *testing.T) {
	m := NewDebyeHuckel()
	env := electro.DefaultEnvironment()

	a := gallicAcid()
	a.HydrodynamicRadius = 0
	if _, err := m.Mobility(a, env); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("zero radius: expected domain error, got %v", err)
	}

	env.ViscosityCP = 0
	if _, err := m.Mobility(gallicAcid(), env); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("zero viscosity: expected domain error, got %v", err)
	}

	env = electro.DefaultEnvironment()
	env.IonicStrengthMM = 0
	if _, err := m.Mobility(gallicAcid(), env); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("zero ionic strength: expected domain error, got %v", err)
	}
}
