package timedataset

import (
	"errors"
	"math"
)

var ErrCannotInferStep = errors.New("cannot infer step from index with less than 2 points")

// Index is the independent variable of a time series, typically the period number of each
// observation.
type Index []float64

// GenerateIndex returns the period numbers 0, 1, ..., n-1
func GenerateIndex(n int) Index {
	x := make(Index, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, float64(i))
	}
	return x
}

func (x Index) Start() float64 {
	if len(x) < 1 {
		return 0
	}
	return x[0]
}

func (x Index) End() float64 {
	if len(x) < 1 {
		return 0
	}
	return x[len(x)-1]
}

// EstimateStep returns the most common difference between consecutive index values. Ties are
// broken by the smallest step.
func (x Index) EstimateStep() (float64, error) {
	if len(x) < 2 {
		return 0, ErrCannotInferStep
	}

	steps := make(map[float64]int)
	for i := 1; i < len(x); i++ {
		delta := x[i] - x[i-1]
		steps[delta] += 1
	}

	var maxCnt int
	minStep := math.Inf(1)

	for delta, cnt := range steps {
		if cnt > maxCnt || (cnt == maxCnt && delta < minStep) {
			maxCnt = cnt
			minStep = delta
		}
	}
	return minStep, nil
}

// Horizon returns the next n index values after the end of the index spaced by step
func (x Index) Horizon(n int, step float64) Index {
	return Horizon(x.End(), n, step)
}

// Horizon returns the n index values following end spaced by step
func Horizon(end float64, n int, step float64) Index {
	if n < 1 {
		return Index{}
	}
	h := make(Index, 0, n)
	for i := 0; i < n; i++ {
		h = append(h, end+step*float64(i+1))
	}
	return h
}
