package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/anneal/internal/anneal"
)

var (
	// ErrNonFinite indicates a cost or metric that JSON cannot represent.
	ErrNonFinite = errors.New("storage: cannot persist non-finite value")

	// ErrRunNotFound indicates no run directory exists for the given id.
	ErrRunNotFound = errors.New("storage: run not found")
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
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
	ID          string             `json:"id"`
	Objective   string             `json:"objective"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	A           float64            `json:"a"`
	B           float64            `json:"b"`
	Kmax        int                `json:"kmax"`
	Initial     anneal.Point       `json:"initial"`
	InitialCost float64            `json:"initial_cost"`
	Final       anneal.Point       `json:"final"`
	FinalCost   float64            `json:"final_cost"`
	Accepted    int                `json:"accepted"`
	Improved    int                `json:"improved"`
	Uphill      int                `json:"uphill"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(objective string, seed int64, cfg anneal.Config, result *anneal.Result) (string, error) {
	if err := checkFinite(result); err != nil {
		return "", err
	}

	runID := fmt.Sprintf("%s_%s", objective, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Objective:   objective,
		Timestamp:   time.Now(),
		Seed:        seed,
		A:           cfg.A,
		B:           cfg.B,
		Kmax:        cfg.Kmax,
		Initial:     result.Initial,
		InitialCost: result.InitialCost,
		Final:       result.Final,
		FinalCost:   result.FinalCost,
		Accepted:    result.Accepted,
		Improved:    result.Improved,
		Uphill:      result.Uphill,
		Metrics:     result.Metrics,
	}

	if err := writeRun(runDir, meta, result.Trajectory); err != nil {
		return "", err
	}

	return runID, nil
}

// writeRun writes both run files and removes runDir if either fails, so a
// half-written run never shows up in List.
func writeRun(runDir string, meta RunMetadata, trajectory []float64) (err error) {
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return err
	}
	if err := metaFile.Close(); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, trajectoryFile))
	if err != nil {
		return err
	}

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"iteration", "cost"}); err != nil {
		csvFile.Close()
		return err
	}
	for k, c := range trajectory {
		row := []string{strconv.Itoa(k), strconv.FormatFloat(c, 'g', -1, 64)}
		if err := w.Write(row); err != nil {
			csvFile.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		csvFile.Close()
		return err
	}
	return csvFile.Close()
}

func checkFinite(result *anneal.Result) error {
	if !result.Initial.IsValid() {
		return fmt.Errorf("%w: initial point is %s", ErrNonFinite, result.Initial)
	}
	if !result.Final.IsValid() {
		return fmt.Errorf("%w: final point is %s", ErrNonFinite, result.Final)
	}

	values := map[string]float64{
		"initial cost": result.InitialCost,
		"final cost":   result.FinalCost,
	}
	for name, v := range result.Metrics {
		values["metric "+name] = v
	}
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrNonFinite, name, v)
		}
	}
	return nil
}

// List returns every readable run, oldest first.
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
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
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) ([]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []float64{}, nil
	}

	trajectory := make([]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		c, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", trajectoryFile, i+1, err)
		}
		trajectory = append(trajectory, c)
	}

	return trajectory, nil
}
