package dataset

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-imu/dsp/core"
	"github.com/cwbudde/algo-imu/features"
)

// Standardizer maps feature vectors to per-feature z-scores. Features differ
// by orders of magnitude (spectral energy versus variance), so classifiers
// train on standardized vectors.
type Standardizer struct {
	Mean features.Vector
	Std  features.Vector
}

// Fit computes the population mean and standard deviation of every feature
// column.
func Fit(rows []Row) (Standardizer, error) {
	if len(rows) == 0 {
		return Standardizer{}, errors.New("dataset: cannot fit standardizer on zero rows")
	}

	var s Standardizer
	col := make([]float64, len(rows))
	for j := range features.NumFeatures {
		for i, r := range rows {
			col[i] = r.Features[j]
		}
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
	}
	return s, nil
}

// Transform returns the z-scores of v. Constant features map to 0.
func (s Standardizer) Transform(v features.Vector) features.Vector {
	var out features.Vector
	for j := range v {
		if core.NearlyEqual(s.Std[j], 0, 0) {
			continue
		}
		out[j] = (v[j] - s.Mean[j]) / s.Std[j]
	}
	return out
}
