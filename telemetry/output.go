package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pawmark/garden/config"
)

// PoseRow is one agent's pose in a periodic best-effort snapshot. An
// external persistence collaborator can replay these to restore a scene.
type PoseRow struct {
	Tick    int64   `csv:"tick"`
	AgentID uint32  `csv:"agent_id"`
	Species string  `csv:"species"`
	X       float32 `csv:"x"`
	Z       float32 `csv:"z"`
	Yaw     float32 `csv:"yaw"`
	Mode    string  `csv:"mode"`
	Affinity float32 `csv:"affinity"`
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File
	poseFile  *os.File

	statsHeaderWritten bool
	poseHeaderWritten  bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	f, err = os.Create(filepath.Join(dir, "poses.csv"))
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating poses.csv: %w", err)
	}
	om.poseFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// WritePoses appends one pose snapshot to poses.csv.
func (om *OutputManager) WritePoses(rows []PoseRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}

	if !om.poseHeaderWritten {
		if err := gocsv.Marshal(rows, om.poseFile); err != nil {
			return fmt.Errorf("writing poses: %w", err)
		}
		om.poseHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.poseFile); err != nil {
		return fmt.Errorf("writing poses: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if err := om.statsFile.Close(); err != nil {
		firstErr = err
	}
	if err := om.poseFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
