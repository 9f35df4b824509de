package mobility

import (
	"errors"
	"math"
	"testing"

	"github.com/lfarias/cesim/internal/electro"
)

func TestStokesEOFSignFollowsEffectiveCharge(t *testing.T) {
	m := NewStokesEOF()
	env := electro.DefaultEnvironment()
	env.PH = 4.0 // EOF term is small here; electrophoretic term dominates

	anion := gallicAcid()
	mu, err := m.Mobility(anion, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mu >= 0 {
		t.Errorf("anion mobility should be negative, got %g", mu)
	}

	cation := gallicAcid()
	cation.Charge = 1
	mu, err = m.Mobility(cation, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mu <= 0 {
		t.Errorf("cation mobility should be positive, got %g", mu)
	}
}

func TestStokesEOFTermDecomposition(t *testing.T) {
	m := NewStokesEOF()
	a := gallicAcid()
	env := electro.DefaultEnvironment()

	mu, err := m.Mobility(a, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eta := electro.PascalSeconds(env.ViscosityCP)
	charge := EffectiveCharge(a.Charge, env.PH)
	muEP := (charge * FaradayConstant) / (6 * math.Pi * eta * a.HydrodynamicRadius)
	zeta := -0.04 * (env.PH - 3)
	muEO := (env.RelativePermittivity * zeta * 1e-3) / (4 * math.Pi * eta)

	if math.Abs(mu-(muEP+muEO)) > math.Abs(mu)*1e-12 {
		t.Errorf("expected %g, got %g", muEP+muEO, mu)
	}
}

func TestStokesEOFMagnitudeFadesWithPH(t *testing.T) {
	m := NewStokesEOF()
	a := gallicAcid()
	env := electro.DefaultEnvironment()

	// The dissociation curve shrinks the effective charge roughly tenfold
	// per pH unit past 7, so |mobility| falls monotonically.
	prev := math.Inf(1)
	for ph := 4.0; ph <= 10.0; ph += 0.5 {
		env.PH = ph
		mu, err := m.Mobility(a, env)
		if err != nil {
			t.Fatalf("pH %.1f: %v", ph, err)
		}
		if math.Abs(mu) >= prev {
			t.Fatalf("|mobility| should decrease with pH: %.1f gave %g after %g", ph, mu, prev)
		}
		prev = math.Abs(mu)
	}
}

func TestStokesEOFDomainErrors(t *testing.T) {
	m := NewStokesEOF()
	env := electro.DefaultEnvironment()

	a := gallicAcid()
	a.HydrodynamicRadius = -1e-10
	if _, err := m.Mobility(a, env); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("negative radius: expected domain error, got %v", err)
	}

	env.ViscosityCP = -0.5
	if _, err := m.Mobility(gallicAcid(), env); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("negative viscosity: expected domain error, got %v", err)
	}
}
