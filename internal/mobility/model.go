package mobility

import (
	"fmt"
	"sort"

	"github.com/lfarias/cesim/internal/electro"
)

// Model computes the apparent electrophoretic mobility of one analyte under
// the given buffer conditions. The result is SI (m²/V·s), signed; identical
// inputs always yield identical output.
type Model interface {
	Name() string
	Mobility(a electro.Analyte, env electro.Environment) (float64, error)
}

var variants = map[string]func() Model{
	"chargemass": func() Model { return NewChargeMass() },
	"stokes":     func() Model { return NewStokesEOF() },
	"debye":      func() Model { return NewDebyeHuckel() },
}

// New returns the model variant registered under name.
func New(name string) (Model, error) {
	fn, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown mobility model: %s", name)
	}
	return fn(), nil
}

// ApplyPolicy sets the charge policy on a model that supports one.
func ApplyPolicy(m Model, policy ChargePolicy) {
	switch t := m.(type) {
	case *ChargeMass:
		t.Policy = policy
	case *StokesEOF:
		t.Policy = policy
	case *DebyeHuckel:
		t.Policy = policy
	}
}

// Variants lists the registered model names, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkTemperature(env electro.Environment) error {
	if env.TemperatureCelsius <= electro.AbsoluteZeroCelsius {
		return &electro.DomainError{
			Quantity: "temperature",
			Value:    env.TemperatureCelsius,
			Reason:   "below absolute zero",
		}
	}
	return nil
}

func checkViscosity(env electro.Environment) error {
	if env.ViscosityCP <= 0 {
		return &electro.DomainError{
			Quantity: "viscosity",
			Value:    env.ViscosityCP,
			Reason:   "must be positive",
		}
	}
	return nil
}

func checkRadius(a electro.Analyte) error {
	if a.HydrodynamicRadius <= 0 {
		return &electro.DomainError{
			Quantity: "hydrodynamic radius",
			Value:    a.HydrodynamicRadius,
			Reason:   "must be positive",
		}
	}
	return nil
}
