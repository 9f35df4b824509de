package electro

// Analyte holds the physicochemical properties of one dissolved molecule.
type Analyte struct {
	ID   string
	Name string

	// Charge is the base (unionized) charge in elementary-charge units.
	Charge float64

	// Mass is the molecular weight in g/mol.
	Mass float64

	// HydrodynamicRadius is the Stokes radius in meters.
	HydrodynamicRadius float64

	// LambdaMax is the absorption maximum in nm, carried for reporting.
	LambdaMax float64
}

// Environment holds buffer conditions shared by every analyte in a run.
type Environment struct {
	PH                   float64
	TemperatureCelsius   float64
	ViscosityCP          float64
	IonicStrengthMM      float64
	RelativePermittivity float64
}

// DefaultEnvironment returns aqueous buffer conditions at 25 °C.
func DefaultEnvironment() Environment {
	return Environment{
		PH:                   7.0,
		TemperatureCelsius:   25.0,
		ViscosityCP:          0.89,
		IonicStrengthMM:      50.0,
		RelativePermittivity: 78.5,
	}
}

// Geometry describes the capillary and the applied field.
type Geometry struct {
	VoltageKV         float64
	CapillaryLengthCM float64
}

// DefaultGeometry returns a 50 cm capillary at 15 kV.
func DefaultGeometry() Geometry {
	return Geometry{VoltageKV: 15.0, CapillaryLengthCM: 50.0}
}

// Validate checks the geometry invariants; both quantities are used as
// denominators downstream.
func (g Geometry) Validate() error {
	if g.VoltageKV <= 0 {
		return &DomainError{Quantity: "voltage", Value: g.VoltageKV, Reason: "must be positive"}
	}
	if g.CapillaryLengthCM <= 0 {
		return &DomainError{Quantity: "capillary length", Value: g.CapillaryLengthCM, Reason: "must be positive"}
	}
	return nil
}
