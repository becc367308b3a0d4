package trend

import (
	"math"
	"testing"

	"github.com/aouyang1/go-trend/linearmodel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAPE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  float64
		err       error
	}{
		"length mismatch": {
			predicted: []float64{1, 2},
			actual:    []float64{1},
			err:       ErrResLenMismatch,
		},
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  0.0,
		},
		"ten percent": {
			predicted: []float64{1.1, 2.2, 2.7},
			actual:    []float64{1, 2, 3},
			expected:  0.1,
		},
		"skip zero and nan actual": {
			predicted: []float64{1.1, 5, 5, 2.2},
			actual:    []float64{1, 0, math.NaN(), 2},
			expected:  0.05,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := MAPE(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected, res, 1e-9)
		})
	}
}

func TestNewScores(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{2, 3, 5, 7, 11}
	model, err := linearmodel.Fit(x, y)
	require.Nil(t, err)

	scores, err := NewScores(model, x, y)
	require.Nil(t, err)
	assert.InDelta(t, 0.56, scores.MSE, 1e-9)
	assert.InDelta(t, 0.9453125, scores.R2, 1e-9)
	assert.InDelta(t, 0.1717056277, scores.MAPE, 1e-9)
	assert.True(t, scores.RSquaredDefined())

	_, err = NewScores(model, x, y[:4])
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestScoresConstantSeries(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{5, 5, 5}
	model, err := linearmodel.Fit(x, y)
	require.Nil(t, err)

	scores, err := NewScores(model, x, y)
	require.Nil(t, err)
	assert.Equal(t, 0.0, scores.MSE)
	assert.Equal(t, 0.0, scores.MAPE)
	assert.True(t, math.IsNaN(scores.R2))
	assert.False(t, scores.RSquaredDefined())

	var nilScores *Scores
	assert.False(t, nilScores.RSquaredDefined())
}

func TestScoresJSON(t *testing.T) {
	testData := map[string]struct {
		scores   Scores
		expected string
	}{
		"finite": {
			scores:   Scores{MSE: 0.5, MAPE: 0.25, R2: 0.75},
			expected: `{"mean_squared_error":0.5,"mean_average_percent_error":0.25,"r_squared":0.75}`,
		},
		"undefined r-squared": {
			scores:   Scores{MSE: 0, MAPE: 0, R2: math.NaN()},
			expected: `{"mean_squared_error":0,"mean_average_percent_error":0,"r_squared":null}`,
		},
		"infinite r-squared": {
			scores:   Scores{MSE: 1, MAPE: 0, R2: math.Inf(-1)},
			expected: `{"mean_squared_error":1,"mean_average_percent_error":0,"r_squared":null}`,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			out, err := json.Marshal(td.scores)
			require.Nil(t, err)
			assert.JSONEq(t, td.expected, string(out))

			var next Scores
			require.Nil(t, json.Unmarshal(out, &next))
			assert.Equal(t, td.scores.MSE, next.MSE)
			assert.Equal(t, td.scores.MAPE, next.MAPE)
			if isFinite(td.scores.R2) {
				assert.Equal(t, td.scores.R2, next.R2)
			} else {
				assert.True(t, math.IsNaN(next.R2))
			}
		})
	}
}
