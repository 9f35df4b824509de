package mobility

import (
	"math"
	"testing"

	"github.com/lfarias/cesim/internal/electro"
)

func TestResolveCharge(t *testing.T) {
	a := electro.Analyte{Charge: -2, Mass: 170.12}

	tests := []struct {
		policy   ChargePolicy
		ph       float64
		mass     float64
		expected float64
	}{
		{ChargeExplicit, 7.0, 170.12, -2},
		{ChargeFromPH, 8.0, 170.12, -1},
		{ChargeFromPH, 6.0, 170.12, 1},
		{ChargeFromPH, 7.0, 170.12, 1},
		{ChargeFromMass, 7.0, 302.23, -1},
		{ChargeFromMass, 7.0, 60.05, 1},
	}

	for _, tt := range tests {
		a.Mass = tt.mass
		env := electro.Environment{PH: tt.ph}
		got, err := ResolveCharge(tt.policy, a, env)
		if err != nil {
			t.Fatalf("policy %s: %v", tt.policy, err)
		}
		if got != tt.expected {
			t.Errorf("policy %s (pH %.1f, mass %.2f): expected %g, got %g",
				tt.policy, tt.ph, tt.mass, tt.expected, got)
		}
	}
}

func TestResolveChargeUnknownPolicy(t *testing.T) {
	_, err := ResolveCharge("guess", electro.Analyte{}, electro.Environment{})
	if err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestEffectiveChargeDissociation(t *testing.T) {
	// At pH 7 exactly half the base charge remains.
	if got := EffectiveCharge(-1, 7.0); math.Abs(got-(-0.5)) > 1e-12 {
		t.Errorf("expected -0.5 at pH 7, got %g", got)
	}

	// Magnitude decreases monotonically with rising pH.
	prev := math.Abs(EffectiveCharge(-1, 2.0))
	for ph := 2.5; ph <= 10.0; ph += 0.5 {
		cur := math.Abs(EffectiveCharge(-1, ph))
		if cur >= prev {
			t.Fatalf("charge magnitude should strictly decrease: pH %.1f gave %g after %g", ph, cur, prev)
		}
		prev = cur
	}
}
