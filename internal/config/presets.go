package config

import "sort"

// Presets are named starting points for common separation conditions.
var Presets = map[string]*Config{
	"default": Default(),
	"acidic": {
		Model:     "stokes",
		Policy:    "explicit",
		Molecules: []string{"gallic-acid", "ascorbic-acid"},
		Buffer: BufferConfig{
			PH: 3.5, TemperatureC: 25.0, ViscosityCP: 0.89,
			IonicMM: 50.0, Permittivity: 78.5,
		},
		Capillary: CapillaryConfig{VoltageKV: 20.0, LengthCM: 50.0},
	},
	"alkaline": {
		Model:     "stokes",
		Policy:    "explicit",
		Molecules: []string{"gallic-acid", "quercetin", "ascorbic-acid"},
		Buffer: BufferConfig{
			PH: 9.0, TemperatureC: 25.0, ViscosityCP: 0.89,
			IonicMM: 50.0, Permittivity: 78.5,
		},
		Capillary: CapillaryConfig{VoltageKV: 15.0, LengthCM: 60.0},
	},
	"high-salt": {
		Model:     "debye",
		Policy:    "explicit",
		Molecules: []string{"gallic-acid", "quercetin"},
		Buffer: BufferConfig{
			PH: 7.0, TemperatureC: 25.0, ViscosityCP: 1.1,
			IonicMM: 200.0, Permittivity: 78.5,
		},
		Capillary: CapillaryConfig{VoltageKV: 10.0, LengthCM: 40.0},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
