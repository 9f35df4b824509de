package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lfarias/cesim/internal/catalog"
	"github.com/lfarias/cesim/internal/electro"
	"github.com/lfarias/cesim/internal/signal"
)

// Config is one full simulation description, loadable from YAML.
type Config struct {
	Model     string          `yaml:"model"`
	Policy    string          `yaml:"charge_policy"`
	Molecules []string        `yaml:"molecules"`
	Analytes  []AnalyteConfig `yaml:"analytes"`
	Buffer    BufferConfig    `yaml:"buffer"`
	Capillary CapillaryConfig `yaml:"capillary"`
	Synthesis SynthesisConfig `yaml:"synthesis"`
}

// AnalyteConfig describes a molecule inline, for species not in the
// built-in catalog. Radius is in nanometers, the bench convention.
type AnalyteConfig struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Charge    float64 `yaml:"charge"`
	Mass      float64 `yaml:"mass"`
	RadiusNM  float64 `yaml:"radius_nm"`
	LambdaMax float64 `yaml:"lambda_max"`
}

type BufferConfig struct {
	PH           float64 `yaml:"ph" json:"ph"`
	TemperatureC float64 `yaml:"temperature_c" json:"temperature_c"`
	ViscosityCP  float64 `yaml:"viscosity_cp" json:"viscosity_cp"`
	IonicMM      float64 `yaml:"ionic_strength_mm" json:"ionic_strength_mm"`
	Permittivity float64 `yaml:"permittivity" json:"permittivity"`
}

type CapillaryConfig struct {
	VoltageKV float64 `yaml:"voltage_kv" json:"voltage_kv"`
	LengthCM  float64 `yaml:"length_cm" json:"length_cm"`
}

type SynthesisConfig struct {
	Samples   int     `yaml:"samples"`
	Margin    float64 `yaml:"margin"`
	Width     string  `yaml:"width"`
	Amplitude string  `yaml:"amplitude"`
	Noise     bool    `yaml:"noise"`
	Seed      int64   `yaml:"seed"`
}

// Default mirrors the historical application's defaults: gallic acid and
// quercetin in aqueous buffer, 15 kV over 50 cm.
func Default() *Config {
	return &Config{
		Model:     "stokes",
		Policy:    "explicit",
		Molecules: []string{"gallic-acid", "quercetin"},
		Buffer: BufferConfig{
			PH:           7.0,
			TemperatureC: 25.0,
			ViscosityCP:  0.89,
			IonicMM:      50.0,
			Permittivity: 78.5,
		},
		Capillary: CapillaryConfig{VoltageKV: 15.0, LengthCM: 50.0},
		Synthesis: SynthesisConfig{
			Samples:   1000,
			Margin:    1.5,
			Width:     string(signal.WidthFractional),
			Amplitude: string(signal.AmpConstant),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveAnalytes merges catalog lookups with inline analytes, preserving
// declaration order: catalog molecules first, then inline entries.
func (c *Config) ResolveAnalytes() ([]electro.Analyte, error) {
	out := make([]electro.Analyte, 0, len(c.Molecules)+len(c.Analytes))

	for _, id := range c.Molecules {
		a, err := catalog.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	for _, ac := range c.Analytes {
		if ac.ID == "" {
			return nil, fmt.Errorf("inline analyte missing id")
		}
		out = append(out, electro.Analyte{
			ID:                 ac.ID,
			Name:               ac.Name,
			Charge:             ac.Charge,
			Mass:               ac.Mass,
			HydrodynamicRadius: ac.RadiusNM * 1e-9,
			LambdaMax:          ac.LambdaMax,
		})
	}

	return out, nil
}

// Environment converts the buffer block to the pipeline's value type.
func (c *Config) Environment() electro.Environment {
	return electro.Environment{
		PH:                   c.Buffer.PH,
		TemperatureCelsius:   c.Buffer.TemperatureC,
		ViscosityCP:          c.Buffer.ViscosityCP,
		IonicStrengthMM:      c.Buffer.IonicMM,
		RelativePermittivity: c.Buffer.Permittivity,
	}
}

// Geometry converts the capillary block to the pipeline's value type.
func (c *Config) Geometry() electro.Geometry {
	return electro.Geometry{
		VoltageKV:         c.Capillary.VoltageKV,
		CapillaryLengthCM: c.Capillary.LengthCM,
	}
}

// Options converts the synthesis block, falling back to defaults for
// unset fields.
func (c *Config) Options() signal.Options {
	opts := signal.DefaultOptions()
	if c.Synthesis.Samples > 0 {
		opts.Samples = c.Synthesis.Samples
	}
	if c.Synthesis.Margin > 1 {
		opts.Margin = c.Synthesis.Margin
	}
	if c.Synthesis.Width != "" {
		opts.Width = signal.WidthMode(c.Synthesis.Width)
	}
	if c.Synthesis.Amplitude != "" {
		opts.Amplitude = signal.AmplitudeMode(c.Synthesis.Amplitude)
	}
	opts.Noise = c.Synthesis.Noise
	opts.Seed = c.Synthesis.Seed
	return opts
}
