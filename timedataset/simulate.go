package timedataset

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// MaskWithIndexRange zeroes out values whose index falls outside of [start, end]
func (s Series) MaskWithIndexRange(start, end float64, x []float64) Series {
	n := len(s)
	for i := 0; i < n; i++ {
		if x[i] < start || x[i] > end {
			s[i] = 0.0
		}
	}
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLineY returns intercept + slope*x for every x
func GenerateLineY(x []float64, intercept, slope float64) Series {
	y := make([]float64, 0, len(x))
	for _, xi := range x {
		y = append(y, intercept+slope*xi)
	}
	return Series(y)
}

// GenerateNoise returns n samples of zero mean gaussian noise with standard deviation scale
func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

// GenerateChange returns a series that is 0 before chpt and bias + slope*(x-chpt) afterwards
func GenerateChange(x []float64, chpt, bias, slope float64) Series {
	n := len(x)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if x[i] >= chpt {
			y[i] = bias + slope*(x[i]-chpt)
		}
	}
	return Series(y)
}
