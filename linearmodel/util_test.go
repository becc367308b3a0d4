package linearmodel

import (
	"testing"

	"github.com/aouyang1/go-trend/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fitFunc func(x, y []float64) (Simple, error)

func testModel(t *testing.T, fit fitFunc, x, y []float64, intercept, slope, tol float64) Simple {
	model, err := fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol, "intercept")
	assert.InDelta(t, slope, model.Slope(), tol, "slope")

	assert.InDelta(t, 1.0, model.RSquared(x, y), tol, "r-squared")
	assert.InDelta(t, 0.0, model.MSE(x, y), tol, "mse")
	return model
}

func generateBenchData(n int) ([]float64, []float64) {
	x := timedataset.GenerateIndex(n)
	y := timedataset.GenerateConstY(n, 98.3).
		Add(timedataset.GenerateLineY(x, 0.0, 0.25)).
		Add(timedataset.GenerateNoise(n, 3.2))
	return x, y
}
