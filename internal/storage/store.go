package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/lfarias/cesim/internal/config"
	"github.com/lfarias/cesim/internal/electro"
	"github.com/lfarias/cesim/internal/simulate"
)

// Store persists simulation runs under a data directory, one subdirectory
// per run holding metadata.json and curve.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// AnalyteRecord is one analyte's results as persisted. Mobility is stored
// in practical units, the convention of the historical tooling.
type AnalyteRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MobilityPractical float64 `json:"mobility_practical"`
	MigrationTime     float64 `json:"migration_time_s"`
	PeakAmplitude     float64 `json:"peak_amplitude"`
}

// RunMetadata describes one persisted run.
type RunMetadata struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Model     string                 `json:"model"`
	Policy    string                 `json:"charge_policy"`
	Buffer    config.BufferConfig    `json:"buffer"`
	Capillary config.CapillaryConfig `json:"capillary"`
	Noise     bool                   `json:"noise"`
	Seed      int64                  `json:"seed"`
	Analytes  []AnalyteRecord        `json:"analytes"`
}

// Save writes the run and returns its generated ID.
func (s *Store) Save(cfg *config.Config, run *simulate.Run) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Model:     cfg.Model,
		Policy:    cfg.Policy,
		Buffer:    cfg.Buffer,
		Capillary: cfg.Capillary,
		Noise:     cfg.Synthesis.Noise,
		Seed:      cfg.Synthesis.Seed,
		Analytes:  make([]AnalyteRecord, 0, len(run.Results)),
	}
	for _, r := range run.Results {
		meta.Analytes = append(meta.Analytes, AnalyteRecord{
			ID:                r.Analyte.ID,
			Name:              r.Analyte.Name,
			MobilityPractical: electro.PracticalMobility(r.Mobility),
			MigrationTime:     r.MigrationTime,
			PeakAmplitude:     r.PeakAmplitude,
		})
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeCurve(runDir, run); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeCurve(runDir string, run *simulate.Run) error {
	f, err := os.Create(filepath.Join(runDir, "curve.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time_s", "intensity"}); err != nil {
		return err
	}
	for i := range run.Curve.Times {
		row := []string{
			strconv.FormatFloat(run.Curve.Times[i], 'g', -1, 64),
			strconv.FormatFloat(run.Curve.Intensity[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadCurve reads one run's synthesized trace.
func (s *Store) LoadCurve(runID string) (times, intensity []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "curve.csv"))
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue // header
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("run %s row %d: %w", runID, i, err)
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("run %s row %d: %w", runID, i, err)
		}
		times = append(times, t)
		intensity = append(intensity, v)
	}

	return times, intensity, nil
}
