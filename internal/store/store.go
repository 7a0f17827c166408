// Package store persists run metadata and Lyapunov measurements under
// a data directory, one subdirectory per run. Rendered images are
// deliberately not persisted.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/supermattydomain/AttractorCanvas/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	System     string             `json:"system"`
	Params     map[string]float64 `json:"params"`
	Timestamp  time.Time          `json:"timestamp"`
	CentreX    float64            `json:"centre_x"`
	CentreY    float64            `json:"centre_y"`
	Zoom       float64            `json:"zoom"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Budget     int                `json:"budget"`
	Iterations int                `json:"iterations"`
	Outcome    string             `json:"outcome"`
	Lyapunov   float64            `json:"lyapunov"`
	Samples    int                `json:"samples"`
	PixelsLit  int                `json:"pixels_lit"`
}

// Save writes the finished run's metadata and per-slice Lyapunov
// history, returning the run ID.
func (s *Store) Save(e *engine.Engine) (string, error) {
	sys := e.CurrentSystem()
	runID := fmt.Sprintf("%s_%d", sys.Name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	est, _ := e.LyapunovEstimate()
	view := e.Viewport()
	meta := RunMetadata{
		ID:         runID,
		System:     sys.Name,
		Params:     e.CurrentParams(),
		Timestamp:  time.Now(),
		CentreX:    view.Centre.X,
		CentreY:    view.Centre.Y,
		Zoom:       view.Zoom,
		Width:      view.Width,
		Height:     view.Height,
		Budget:     e.IterationBudget(),
		Iterations: e.IterationIndex(),
		Outcome:    e.Outcome().String(),
		Lyapunov:   est,
		Samples:    e.LyapunovSamples(),
		PixelsLit:  e.Buffer().Lit(),
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

	if err := s.saveHistory(runDir, e.EstimateHistory()); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) saveHistory(runDir string, history []float64) error {
	csvFile, err := os.Create(filepath.Join(runDir, "lyapunov.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"slice", "estimate"}); err != nil {
		return err
	}
	for i, v := range history {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, ent.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
