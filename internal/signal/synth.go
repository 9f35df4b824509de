// Package signal turns mobilities into migration times and synthesizes the
// detector trace: one Gaussian peak per analyte, summed on a shared time
// axis, optionally with additive noise.
package signal

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lfarias/cesim/internal/electro"
)

// Peak-shape constants. widthFraction reproduces the historical
// exp(-(t-tm)²/(0.1·tm²)) trace, i.e. sigma = sqrt(0.05)·tm.
const (
	baseAmplitude = 100.0
	noiseSigma    = 0.5
)

var widthFraction = math.Sqrt(0.05)

// WidthMode selects how peak width is derived.
type WidthMode string

const (
	// WidthFractional sets sigma proportional to migration time.
	WidthFractional WidthMode = "fractional"
	// WidthMass broadens peaks with molecular weight.
	WidthMass WidthMode = "mass"
)

// AmplitudeMode selects how peak height is derived.
type AmplitudeMode string

const (
	// AmpConstant gives every peak the same height.
	AmpConstant AmplitudeMode = "constant"
	// AmpMass attenuates heavier species (diffusion-broadening surrogate).
	AmpMass AmplitudeMode = "mass"
)

// Options controls curve synthesis. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Samples   int
	Margin    float64
	Width     WidthMode
	Amplitude AmplitudeMode
	Noise     bool
	Seed      int64
}

// DefaultOptions matches the historical trace: 1000 samples over 1.5x the
// slowest migration time, fractional widths, constant amplitude, no noise.
func DefaultOptions() Options {
	return Options{
		Samples:   1000,
		Margin:    1.5,
		Width:     WidthFractional,
		Amplitude: AmpConstant,
	}
}

// Source is one analyte's contribution to the trace.
type Source struct {
	ID       string
	Mobility float64 // SI, signed
	Mass     float64 // g/mol, used by the mass-dependent shape modes
}

// Peak describes one synthesized peak.
type Peak struct {
	MigrationTime float64
	Amplitude     float64
	Sigma         float64
}

// Electropherogram is the synthesized intensity-vs-time trace.
type Electropherogram struct {
	Times     []float64
	Intensity []float64
	Peaks     map[string]Peak
}

// MigrationTime returns the seconds an analyte takes to traverse the
// capillary. Drift speed is |mobility| times the applied voltage; the sign
// of the mobility encodes direction, which the single-detector geometry
// does not distinguish.
func MigrationTime(mobilitySI float64, geom electro.Geometry) (float64, error) {
	if err := geom.Validate(); err != nil {
		return 0, err
	}
	if mobilitySI == 0 {
		return 0, &electro.DomainError{Quantity: "mobility", Value: 0, Reason: "analyte never reaches the detector"}
	}
	return electro.Meters(geom.CapillaryLengthCM) / (math.Abs(mobilitySI) * electro.Volts(geom.VoltageKV)), nil
}

// Synthesize builds the combined trace for the given sources. Source order
// does not affect the result; peaks are keyed by source ID. Noise, when
// enabled, perturbs only the summed curve, never the reported peaks.
func Synthesize(sources []Source, geom electro.Geometry, opts Options) (*Electropherogram, error) {
	if len(sources) == 0 {
		return nil, electro.ErrEmptyInput
	}
	if opts.Samples < 2 {
		return nil, &electro.DomainError{Quantity: "samples", Value: float64(opts.Samples), Reason: "need at least 2"}
	}
	if opts.Margin <= 1 {
		return nil, &electro.DomainError{Quantity: "margin", Value: opts.Margin, Reason: "must exceed 1"}
	}

	peaks := make(map[string]Peak, len(sources))
	maxTime := 0.0
	for _, src := range sources {
		tm, err := MigrationTime(src.Mobility, geom)
		if err != nil {
			return nil, err
		}
		peaks[src.ID] = Peak{
			MigrationTime: tm,
			Amplitude:     amplitude(opts.Amplitude, src.Mass),
			Sigma:         sigma(opts.Width, tm, src.Mass),
		}
		if tm > maxTime {
			maxTime = tm
		}
	}

	eg := &Electropherogram{
		Times:     linspace(0, opts.Margin*maxTime, opts.Samples),
		Intensity: make([]float64, opts.Samples),
		Peaks:     peaks,
	}

	ids := make([]string, 0, len(peaks))
	for id := range peaks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := peaks[id]
		for i, t := range eg.Times {
			d := t - p.MigrationTime
			eg.Intensity[i] += p.Amplitude * math.Exp(-d*d/(2*p.Sigma*p.Sigma))
		}
	}

	if opts.Noise {
		rng := rand.New(rand.NewSource(opts.Seed))
		for i := range eg.Intensity {
			eg.Intensity[i] += rng.NormFloat64() * noiseSigma
		}
	}

	return eg, nil
}

func sigma(mode WidthMode, migrationTime, mass float64) float64 {
	if mode == WidthMass {
		return 0.5 + mass/500
	}
	return widthFraction * migrationTime
}

func amplitude(mode AmplitudeMode, mass float64) float64 {
	if mode == AmpMass {
		return baseAmplitude * math.Exp(-mass/300)
	}
	return baseAmplitude
}

func linspace(from, to float64, n int) []float64 {
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}
