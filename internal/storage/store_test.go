package storage

import (
	"math"
	"testing"

	"github.com/lfarias/cesim/internal/config"
	"github.com/lfarias/cesim/internal/mobility"
	"github.com/lfarias/cesim/internal/simulate"
)

func sampleRun(t *testing.T) (*config.Config, *simulate.Run) {
	t.Helper()

	cfg := config.Default()
	analytes, err := cfg.ResolveAnalytes()
	if err != nil {
		t.Fatalf("resolve analytes: %v", err)
	}

	model, err := mobility.New(cfg.Model)
	if err != nil {
		t.Fatalf("model: %v", err)
	}

	run, err := simulate.Simulate(model, analytes, cfg.Environment(), cfg.Geometry(), cfg.Options())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	return cfg, run
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, run := sampleRun(t)

	runID, err := st.Save(cfg, run)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if meta.Model != cfg.Model {
		t.Errorf("expected model %s, got %s", cfg.Model, meta.Model)
	}
	if len(meta.Analytes) != len(run.Results) {
		t.Fatalf("expected %d analyte records, got %d", len(run.Results), len(meta.Analytes))
	}
	for i, rec := range meta.Analytes {
		if rec.ID != run.Results[i].Analyte.ID {
			t.Errorf("record %d: expected %s, got %s", i, run.Results[i].Analyte.ID, rec.ID)
		}
		if math.Abs(rec.MigrationTime-run.Results[i].MigrationTime) > 1e-12 {
			t.Errorf("record %d: migration time drifted", i)
		}
	}
}

func TestLoadCurve(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, run := sampleRun(t)
	runID, err := st.Save(cfg, run)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	times, intensity, err := st.LoadCurve(runID)
	if err != nil {
		t.Fatalf("load curve: %v", err)
	}

	if len(times) != len(run.Curve.Times) || len(intensity) != len(run.Curve.Intensity) {
		t.Fatalf("curve length mismatch: %d/%d vs %d", len(times), len(intensity), len(run.Curve.Times))
	}
	for i := range times {
		if math.Abs(times[i]-run.Curve.Times[i]) > 1e-12 {
			t.Fatalf("times drifted at %d", i)
		}
		if math.Abs(intensity[i]-run.Curve.Intensity[i]) > 1e-12 {
			t.Fatalf("intensity drifted at %d", i)
		}
	}
}

func TestListEmptyAndMissing(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}
