// Package dataset generates labeled feature vectors for training activity
// classifiers from simulated IMU streams.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/features"
	"github.com/cwbudde/algo-imu/imu"
)

// Row is one labeled feature vector. Label is the activity's position in
// Config.Activities.
type Row struct {
	Features features.Vector
	Label    int
	Activity imu.Activity
}

// Config controls dataset generation.
type Config struct {
	Processor       core.ProcessorConfig
	SamplesPerClass int
	Activities      []imu.Activity

	SimulatorOptions []imu.Option
	ExtractorOptions []features.Option
}

// DefaultConfig returns 1000 rows per class of sitting and walking at
// 100 Hz with a 64-sample window.
func DefaultConfig() Config {
	return Config{
		Processor:       core.DefaultProcessorConfig(),
		SamplesPerClass: 1000,
		Activities:      []imu.Activity{imu.Sitting, imu.Walking},
	}
}

// Validate reports whether cfg can be generated.
func (cfg Config) Validate() error {
	if err := cfg.Processor.Validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if cfg.SamplesPerClass <= 0 {
		return fmt.Errorf("dataset: samples per class must be > 0: %d", cfg.SamplesPerClass)
	}
	if len(cfg.Activities) == 0 {
		return errors.New("dataset: no activities")
	}
	for _, a := range cfg.Activities {
		if !a.Valid() {
			return fmt.Errorf("dataset: %w: %d", imu.ErrUnknownActivity, int(a))
		}
	}
	return nil
}

// Generate runs one simulator through every activity in turn. Before the
// rows of each activity are recorded, the window is refilled with
// WindowSize samples of that activity so no row mixes two activities.
func Generate(cfg Config) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sim, err := imu.New(cfg.Processor.SampleRate, imu.Sitting.String(), cfg.SimulatorOptions...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	ext, err := features.NewExtractor(cfg.Processor.WindowSize, cfg.Processor.SampleRate, cfg.ExtractorOptions...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	rows := make([]Row, 0, len(cfg.Activities)*cfg.SamplesPerClass)
	for label, activity := range cfg.Activities {
		sim.SetActivity(activity)

		for range cfg.Processor.WindowSize {
			sim.Advance()
			ext.AddSample(sim.Acceleration(), sim.Gyroscope())
		}

		for range cfg.SamplesPerClass {
			sim.Advance()
			ext.AddSample(sim.Acceleration(), sim.Gyroscope())
			rows = append(rows, Row{
				Features: ext.ComputeFeatures(),
				Label:    label,
				Activity: activity,
			})
		}
	}

	return rows, nil
}

// ClassCounts returns the number of rows per activity.
func ClassCounts(rows []Row) map[imu.Activity]int {
	counts := make(map[imu.Activity]int)
	for _, r := range rows {
		counts[r.Activity]++
	}
	return counts
}

// Header returns the CSV column names.
func Header() []string {
	return append(features.Names[:], "Label")
}

// WriteCSV writes rows with a header line to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}

	record := make([]string, features.NumFeatures+1)
	for i, r := range rows {
		for j, v := range r.Features {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[features.NumFeatures] = strconv.Itoa(r.Label)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}
	return nil
}
