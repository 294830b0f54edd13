package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/odelab/internal/compare"
	"github.com/san-kum/odelab/internal/ode"
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
	ID            string    `json:"id"`
	Model         string    `json:"model"`
	Timestamp     time.Time `json:"timestamp"`
	X0            float64   `json:"x0"`
	Y0            float64   `json:"y0"`
	XEnd          float64   `json:"xend"`
	Steps         int       `json:"steps"`
	H             float64   `json:"h"`
	Tol           float64   `json:"tol"`
	MaxErr        float64   `json:"max_err"`
	MaxErrX       float64   `json:"max_err_x"`
	FinalFixed    float64   `json:"final_fixed"`
	FinalAdaptive float64   `json:"final_adaptive"`
	OracleSteps   int       `json:"oracle_steps"`
}

// Save writes one run directory: metadata.json, fixed.csv, oracle.csv and
// error.csv. It returns the generated run id.
func (s *Store) Save(meta RunMetadata, fixed, oracle *ode.Trajectory, rep *compare.Report) (string, error) {
	runID := fmt.Sprintf("%s_%s", meta.Model, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	if err := writeTrajectoryCSV(filepath.Join(runDir, "fixed.csv"), fixed); err != nil {
		return "", err
	}
	if err := writeTrajectoryCSV(filepath.Join(runDir, "oracle.csv"), oracle); err != nil {
		return "", err
	}

	errFile, err := os.Create(filepath.Join(runDir, "error.csv"))
	if err != nil {
		return "", err
	}
	defer errFile.Close()

	w := csv.NewWriter(errFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "abs_err"}); err != nil {
		return "", err
	}
	for i := range rep.Xs {
		row := []string{
			strconv.FormatFloat(rep.Xs[i], 'g', -1, 64),
			strconv.FormatFloat(rep.AbsErr[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeTrajectoryCSV(path string, tr *ode.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range tr.Xs {
		row := []string{
			strconv.FormatFloat(tr.Xs[i], 'g', -1, 64),
			strconv.FormatFloat(tr.Ys[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads fixed.csv or oracle.csv back as a trajectory.
func (s *Store) LoadTrajectory(runID, name string) (*ode.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name+".csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := ode.NewTrajectory(len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		tr.Append(x, y)
	}

	return tr, nil
}

// LoadError reads error.csv back as (grid, abs error) slices.
func (s *Store) LoadError(runID string) ([]float64, []float64, error) {
	tr, err := s.LoadTrajectory(runID, "error")
	if err != nil {
		return nil, nil, err
	}
	return tr.Xs, tr.Ys, nil
}
