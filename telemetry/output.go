package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/tanks/config"
)

// OutputManager writes run output: tank.csv, perf.csv and a config.yaml
// snapshot.
type OutputManager struct {
	dir      string
	tankFile *os.File
	perfFile *os.File

	// Track if headers have been written
	tankHeaderWritten bool
	perfHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "tank.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating tank.csv: %w", err)
	}
	om.tankFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.tankFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTank appends a trajectory sample to tank.csv.
func (om *OutputManager) WriteTank(s TankSample) error {
	if om == nil {
		return nil
	}
	if err := appendCSV(om.tankFile, &om.tankHeaderWritten, []TankSample{s}); err != nil {
		return fmt.Errorf("writing tank sample: %w", err)
	}
	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int32) error {
	if om == nil {
		return nil
	}
	if err := appendCSV(om.perfFile, &om.perfHeaderWritten, []PerfStatsCSV{stats.ToCSV(frame)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// appendCSV writes records, with a header only on the first call.
func appendCSV[T any](f *os.File, headerWritten *bool, records []T) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.tankFile, om.perfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
