package mobility

import (
	"math"

	"github.com/lfarias/cesim/internal/electro"
)

// DebyeHuckel attenuates the Stokes mobility by an ionic-strength screening
// factor: raising the ionic strength shrinks the Debye length relative to
// the particle radius and monotonically reduces |mobility|.
//
// Some historical variants also multiplied by exp(298.15/T - 1) with no
// physical justification; that term is omitted here. Temperature enters
// through the Debye length only.
type DebyeHuckel struct {
	Policy ChargePolicy
}

func NewDebyeHuckel() *DebyeHuckel {
	return &DebyeHuckel{Policy: ChargeExplicit}
}

func (m *DebyeHuckel) Name() string { return "debye" }

func (m *DebyeHuckel) Mobility(a electro.Analyte, env electro.Environment) (float64, error) {
	if err := checkViscosity(env); err != nil {
		return 0, err
	}
	if err := checkRadius(a); err != nil {
		return 0, err
	}
	if err := checkTemperature(env); err != nil {
		return 0, err
	}
	if env.IonicStrengthMM <= 0 {
		return 0, &electro.DomainError{Quantity: "ionic strength", Value: env.IonicStrengthMM, Reason: "must be positive"}
	}

	charge, err := ResolveCharge(m.Policy, a, env)
	if err != nil {
		return 0, err
	}

	eta := electro.PascalSeconds(env.ViscosityCP)
	stokes := (charge * ElementaryCharge) / (6 * math.Pi * eta * a.HydrodynamicRadius)

	lambda := DebyeLength(env)
	screening := 1 / (1 + a.HydrodynamicRadius/lambda)

	return stokes * screening, nil
}

// DebyeLength returns the electrostatic screening length of the buffer in
// meters.
func DebyeLength(env electro.Environment) float64 {
	eps := VacuumPermittivity * env.RelativePermittivity
	temp := electro.Kelvin(env.TemperatureCelsius)
	ionic := electro.MolesPerCubicMeter(env.IonicStrengthMM)

	return math.Sqrt(eps * BoltzmannConstant * temp /
		(ElementaryCharge * ElementaryCharge * ionic * AvogadroConstant))
}
