package timedataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMonotonic       = errors.New("time index is not monotonic")
	ErrDatasetLenMismatch = errors.New("time index has a different length than observations")
)

// TimeDataset represents a time series storing a strictly increasing time index and values.
// Both must be of the same length.
type TimeDataset struct {
	X Index
	Y []float64
}

// NewUnivariateDataset returns an instance of a TimeDataset for the values in y, indexed by
// period number starting at 0.
func NewUnivariateDataset(y []float64) (*TimeDataset, error) {
	return NewDataset(GenerateIndex(len(y)), y)
}

// NewDataset returns an instance of a TimeDataset given an index and value slice. The index
// must be strictly increasing. Both slices are copied.
func NewDataset(x, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"time index has length of %d, but values has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
	}

	xSeries := make(Index, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	td := &TimeDataset{
		X: xSeries,
		Y: ySeries,
	}

	return td, nil
}

// Len returns the number of observations
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.X)
}

func (td *TimeDataset) Copy() *TimeDataset {
	xSeries := make(Index, len(td.X))
	ySeries := make([]float64, len(td.X))
	copy(xSeries, td.X)
	copy(ySeries, td.Y)
	return &TimeDataset{
		X: xSeries,
		Y: ySeries,
	}
}

// DropNan returns a new dataset without the observations that are missing, represented by NaN
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}
	x := make(Index, 0, len(td.X))
	y := make([]float64, 0, len(td.Y))
	for i := 0; i < len(td.X); i++ {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		x = append(x, td.X[i])
		y = append(y, td.Y[i])
	}
	return &TimeDataset{
		X: x,
		Y: y,
	}
}
