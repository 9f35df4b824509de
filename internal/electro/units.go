package electro

// AbsoluteZeroCelsius is the lower bound for valid temperatures.
const AbsoluteZeroCelsius = -273.15

// practicalScale converts SI mobility (m²/V·s) to the practical display
// units used by the historical tooling. Presentation only.
const practicalScale = 1e8

// Kelvin converts a Celsius temperature to Kelvin.
func Kelvin(celsius float64) float64 {
	return celsius + 273.15
}

// PascalSeconds converts a viscosity in centipoise to Pa·s.
func PascalSeconds(cP float64) float64 {
	return cP * 1e-3
}

// Meters converts a capillary length in centimeters to meters.
func Meters(cm float64) float64 {
	return cm * 1e-2
}

// Volts converts an applied voltage in kilovolts to volts.
func Volts(kV float64) float64 {
	return kV * 1e3
}

// MolesPerCubicMeter converts an ionic strength in millimolar to mol/m³.
// The two are numerically identical; the function exists so the conversion
// is named rather than silently absent.
func MolesPerCubicMeter(mM float64) float64 {
	return mM
}

// PracticalMobility converts an SI mobility to practical display units.
func PracticalMobility(si float64) float64 {
	return si * practicalScale
}

// FromPractical converts a practical-unit mobility back to SI.
func FromPractical(practical float64) float64 {
	return practical / practicalScale
}
