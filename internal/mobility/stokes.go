package mobility

import (
	"math"

	"github.com/lfarias/cesim/internal/electro"
)

// StokesEOF sums a Stokes-Einstein electrophoretic term with an
// electroosmotic flow term. The wall zeta potential is a linear surrogate
// in pH; the effective charge follows a simplified dissociation curve.
type StokesEOF struct {
	Policy ChargePolicy
}

func NewStokesEOF() *StokesEOF {
	return &StokesEOF{Policy: ChargeExplicit}
}

func (m *StokesEOF) Name() string { return "stokes" }

func (m *StokesEOF) Mobility(a electro.Analyte, env electro.Environment) (float64, error) {
	if err := checkViscosity(env); err != nil {
		return 0, err
	}
	if err := checkRadius(a); err != nil {
		return 0, err
	}
	if err := checkTemperature(env); err != nil {
		return 0, err
	}

	base, err := ResolveCharge(m.Policy, a, env)
	if err != nil {
		return 0, err
	}

	eta := electro.PascalSeconds(env.ViscosityCP)
	charge := EffectiveCharge(base, env.PH)

	muEP := (charge * FaradayConstant) / (6 * math.Pi * eta * a.HydrodynamicRadius)

	zeta := -0.04 * (env.PH - 3)
	muEO := (env.RelativePermittivity * zeta * 1e-3) / (4 * math.Pi * eta)

	return muEP + muEO, nil
}
