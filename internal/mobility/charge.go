package mobility

import (
	"fmt"
	"math"

	"github.com/lfarias/cesim/internal/electro"
)

// ChargePolicy names how an analyte's base charge is obtained. The sign
// heuristics change migration order, so the choice is always explicit:
// nothing in this package infers a charge silently.
type ChargePolicy string

const (
	// ChargeExplicit uses the charge supplied on the analyte.
	ChargeExplicit ChargePolicy = "explicit"

	// ChargeFromPH assumes anionic species in alkaline buffer: -1 above
	// pH 7, +1 otherwise.
	ChargeFromPH ChargePolicy = "from-ph"

	// ChargeFromMass assumes heavier species carry negative charge: -1
	// above 120 g/mol, +1 otherwise.
	ChargeFromMass ChargePolicy = "from-mass"
)

// ChargePolicies lists the valid policy names.
func ChargePolicies() []ChargePolicy {
	return []ChargePolicy{ChargeExplicit, ChargeFromPH, ChargeFromMass}
}

// ResolveCharge applies the policy and returns the base charge in
// elementary-charge units.
func ResolveCharge(policy ChargePolicy, a electro.Analyte, env electro.Environment) (float64, error) {
	switch policy {
	case ChargeExplicit, "":
		return a.Charge, nil
	case ChargeFromPH:
		if env.PH > 7 {
			return -1, nil
		}
		return 1, nil
	case ChargeFromMass:
		if a.Mass > 120 {
			return -1, nil
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown charge policy: %s", policy)
	}
}

// EffectiveCharge models a simplified dissociation equilibrium: the charge
// magnitude decays monotonically as pH rises past 7.
func EffectiveCharge(baseCharge, pH float64) float64 {
	return baseCharge / (1 + math.Pow(10, pH-7))
}
