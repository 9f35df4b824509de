package electro

import (
	"errors"
	"math"
	"testing"
)

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"kelvin", Kelvin(25.0), 298.15},
		{"pascal seconds", PascalSeconds(0.89), 0.00089},
		{"meters", Meters(50.0), 0.5},
		{"volts", Volts(15.0), 15000.0},
		{"moles per cubic meter", MolesPerCubicMeter(50.0), 50.0},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-12 {
			t.Errorf("%s: expected %g, got %g", tt.name, tt.expected, tt.got)
		}
	}
}

func TestPracticalMobilityRoundTrip(t *testing.T) {
	si := -5.879e-6
	practical := PracticalMobility(si)

	if math.Abs(practical-(-587.9)) > 1e-9 {
		t.Errorf("expected -587.9 practical, got %f", practical)
	}

	back := FromPractical(practical)
	if math.Abs(back-si) > math.Abs(si)*1e-12 {
		t.Errorf("round trip drifted: %g -> %g", si, back)
	}
}

func TestGeometryValidate(t *testing.T) {
	g := DefaultGeometry()
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry should be valid: %v", err)
	}

	bad := []Geometry{
		{VoltageKV: 0, CapillaryLengthCM: 50},
		{VoltageKV: -5, CapillaryLengthCM: 50},
		{VoltageKV: 15, CapillaryLengthCM: 0},
		{VoltageKV: 15, CapillaryLengthCM: -10},
	}
	for _, g := range bad {
		err := g.Validate()
		if err == nil {
			t.Errorf("geometry %+v should be rejected", g)
			continue
		}
		if !errors.Is(err, ErrDomain) {
			t.Errorf("geometry %+v: error should match ErrDomain, got %v", g, err)
		}
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{Quantity: "mass", Value: 0, Reason: "must be positive"}
	if err.Error() == "" {
		t.Error("expected non-empty message")
	}

	var de *DomainError
	if !errors.As(error(err), &de) {
		t.Error("errors.As should recover *DomainError")
	}
}
