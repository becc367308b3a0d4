package linearmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitQR(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		x         []float64
		y         []float64
		intercept float64
		slope     float64
	}{
		"time index": {
			x:         []float64{0, 1, 2, 3, 4},
			y:         []float64{2, 5, 8, 11, 14},
			intercept: 2.0,
			slope:     3.0,
		},
		"uneven spacing": {
			x:         []float64{0, 3, 9, 12, 15},
			y:         []float64{10, -2, -26, -38, -50},
			intercept: 10.0,
			slope:     -4.0,
		},
		"two points": {
			x:         []float64{1, 3},
			y:         []float64{1.5, 2.5},
			intercept: 1.0,
			slope:     0.5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			testModel(t, FitQR, td.x, td.y, td.intercept, td.slope, tol)
			testModel(t, Fit, td.x, td.y, td.intercept, td.slope, tol)
		})
	}
}

func TestFitQRMatchesClosedForm(t *testing.T) {
	x, y := generateBenchData(500)

	closed, err := Fit(x, y)
	require.Nil(t, err)

	qr, err := FitQR(x, y)
	require.Nil(t, err)

	assert.InDelta(t, closed.Intercept(), qr.Intercept(), 1e-6, "intercept")
	assert.InDelta(t, closed.Slope(), qr.Slope(), 1e-9, "slope")
	assert.InDelta(t, closed.MSE(x, y), qr.MSE(x, y), 1e-6, "mse")
}

func BenchmarkFitQR(b *testing.B) {
	x, y := generateBenchData(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FitQR(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
