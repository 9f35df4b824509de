// Package simulate composes the mobility model and the signal synthesizer
// into the one-way pipeline: analytes -> mobilities -> migration times ->
// electropherogram. Runs are pure functions of their inputs; nothing is
// retried, cached, or persisted here.
package simulate

import (
	"github.com/lfarias/cesim/internal/electro"
	"github.com/lfarias/cesim/internal/mobility"
	"github.com/lfarias/cesim/internal/signal"
)

// AnalyteResult pairs one analyte with its computed quantities. Mobility is
// SI; use electro.PracticalMobility at presentation boundaries.
type AnalyteResult struct {
	Analyte       electro.Analyte
	Mobility      float64
	MigrationTime float64
	PeakAmplitude float64
}

// Run is one complete simulation: per-analyte results in caller-supplied
// order plus the combined detector trace.
type Run struct {
	Results []AnalyteResult
	Curve   *signal.Electropherogram
}

// Simulate computes every analyte's mobility under model, then synthesizes
// the combined trace. Analytes are independent and computed concurrently;
// results keep the input order. The first analyte failure aborts the run.
func Simulate(model mobility.Model, analytes []electro.Analyte, env electro.Environment, geom electro.Geometry, opts signal.Options) (*Run, error) {
	if len(analytes) == 0 {
		return nil, electro.ErrEmptyInput
	}

	mobilities := make([]float64, len(analytes))
	errs := make([]error, len(analytes))

	parallelFor(len(analytes), func(i int) {
		mobilities[i], errs[i] = model.Mobility(analytes[i], env)
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sources := make([]signal.Source, len(analytes))
	for i, a := range analytes {
		sources[i] = signal.Source{ID: a.ID, Mobility: mobilities[i], Mass: a.Mass}
	}

	curve, err := signal.Synthesize(sources, geom, opts)
	if err != nil {
		return nil, err
	}

	run := &Run{
		Results: make([]AnalyteResult, len(analytes)),
		Curve:   curve,
	}
	for i, a := range analytes {
		peak := curve.Peaks[a.ID]
		run.Results[i] = AnalyteResult{
			Analyte:       a,
			Mobility:      mobilities[i],
			MigrationTime: peak.MigrationTime,
			PeakAmplitude: peak.Amplitude,
		}
	}

	return run, nil
}
