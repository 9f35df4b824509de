package mobility

import (
	"github.com/lfarias/cesim/internal/electro"
)

// chargeMassScale folds the variant's historical 1e5 display factor under
// the 1e8 practical-units convention, so the model reports SI like the rest
// of the package.
const chargeMassScale = 1e-3

// ChargeMass is the lowest-fidelity model: mobility proportional to the
// charge-to-mass ratio with linear pH and temperature corrections. It
// ignores viscosity, radius, and ionic strength entirely.
type ChargeMass struct {
	// Policy selects how the base charge is obtained.
	Policy ChargePolicy
}

func NewChargeMass() *ChargeMass {
	return &ChargeMass{Policy: ChargeExplicit}
}

func (m *ChargeMass) Name() string { return "chargemass" }

func (m *ChargeMass) Mobility(a electro.Analyte, env electro.Environment) (float64, error) {
	if a.Mass <= 0 {
		return 0, &electro.DomainError{Quantity: "mass", Value: a.Mass, Reason: "must be positive"}
	}
	if err := checkTemperature(env); err != nil {
		return 0, err
	}

	charge, err := ResolveCharge(m.Policy, a, env)
	if err != nil {
		return 0, err
	}

	phFactor := 1 + 0.1*(env.PH-7)
	tempFactor := 1 + 0.02*(env.TemperatureCelsius-25)

	return (charge / a.Mass) * phFactor * tempFactor * chargeMassScale, nil
}
