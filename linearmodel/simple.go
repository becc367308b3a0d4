// Package linearmodel fits a straight line to paired observations by ordinary least squares
// and evaluates the fit.
package linearmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Simple is a fitted single variable linear model, y ~ intercept + slope*x. It is only produced
// by fitting (or restoring a previous fit) and is never modified afterwards, so copies may be
// shared freely across goroutines.
type Simple struct {
	intercept float64
	slope     float64
}

// Fit computes the closed form least squares intercept and slope for the paired observations
// x and y. x and y must be non-empty and of the same length, otherwise ErrInvalidInput is
// returned. If x has no spread, e.g. a single point or all values identical, the normal
// equations are singular and ErrDegenerateInput is returned.
func Fit(x, y []float64) (Simple, error) {
	if err := validate(x, y); err != nil {
		return Simple{}, err
	}

	n := float64(len(x))
	sumX := floats.Sum(x)
	sumY := floats.Sum(y)
	sumX2 := floats.Dot(x, x)
	sumXY := floats.Dot(x, y)

	denom, err := denominator(n, sumX, sumX2)
	if err != nil {
		return Simple{}, err
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	return newSimple(intercept, slope)
}

// Restore rebuilds a model from the coefficients of a previous fit. Coefficients must be finite.
func Restore(intercept, slope float64) (Simple, error) {
	return newSimple(intercept, slope)
}

func newSimple(intercept, slope float64) (Simple, error) {
	if !isFinite(intercept) || !isFinite(slope) {
		return Simple{}, fmt.Errorf(
			"non-finite coefficients, intercept %g and slope %g, %w",
			intercept, slope, ErrDegenerateInput,
		)
	}
	return Simple{intercept: intercept, slope: slope}, nil
}

func validate(x, y []float64) error {
	if len(x) != len(y) || len(x) == 0 {
		return fmt.Errorf("x has length of %d and y has length of %d, %w", len(x), len(y), ErrInvalidInput)
	}
	return nil
}

// denominator of the closed form slope, n*sum(x^2) - sum(x)^2. Zero means all x are identical.
func denominator(n, sumX, sumX2 float64) (float64, error) {
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, fmt.Errorf("all x values identical or insufficient spread, %w", ErrDegenerateInput)
	}
	return denom, nil
}

// Intercept returns the predicted value at x = 0
func (s Simple) Intercept() float64 {
	return s.intercept
}

// Slope returns the change in the predicted value per unit increase of x
func (s Simple) Slope() float64 {
	return s.slope
}

// Predict returns intercept + slope*x. Any x is accepted including values outside of the
// fitted range.
func (s Simple) Predict(x float64) float64 {
	return s.intercept + s.slope*x
}

// PredictAll evaluates Predict for every point in x.
func (s Simple) PredictAll(x []float64) []float64 {
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = s.Predict(xi)
	}
	return res
}

// Residuals returns y - Predict(x) per observation. Panics if x and y have different lengths.
func (s Simple) Residuals(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic(errSliceLenMismatch)
	}
	res := s.PredictAll(x)
	floats.SubTo(res, y, res)
	return res
}

// RSquared computes the coefficient of determination of the model against x and y, where 1.0
// is a perfect fit and 0 is no better than the mean of y. If all y are identical the total sum
// of squares is zero and the result is non-finite, which callers should read as undefined.
// Panics if x and y have different lengths.
func (s Simple) RSquared(x, y []float64) float64 {
	if len(x) != len(y) {
		panic(errSliceLenMismatch)
	}
	return stat.RSquaredFrom(s.PredictAll(x), y, nil)
}

// MSE computes the mean squared error of the model against x and y. A score of 0 means a
// perfect fit. Panics if x and y have different lengths.
func (s Simple) MSE(x, y []float64) float64 {
	res := s.Residuals(x, y)
	return floats.Dot(res, res) / float64(len(res))
}

// String formats the model as a line equation
func (s Simple) String() string {
	return fmt.Sprintf("y ~ %.4f + %.4fx", s.intercept, s.slope)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
