package linearmodel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	mat_ "github.com/aouyang1/go-trend/mat"
)

// FitQR computes the same least squares line as Fit, but solves for the coefficients using QR
// factorization of the [1 x] design matrix instead of the closed form sums. Input checks and
// returned errors are the same as Fit.
func FitQR(x, y []float64) (Simple, error) {
	if err := validate(x, y); err != nil {
		return Simple{}, err
	}

	// QR needs at least as many observations as coefficients, which the zero spread check
	// guarantees
	if _, err := denominator(float64(len(x)), floats.Sum(x), floats.Dot(x, x)); err != nil {
		return Simple{}, err
	}

	design := mat_.NewDesignMatrix(x)
	_, n := design.Dims()

	yT := mat.NewDense(1, len(y), y)

	qr := new(mat.QR)
	qr.Factorize(design)

	q := new(mat.Dense)
	r := new(mat.Dense)

	qr.QTo(q)
	qr.RTo(r)
	yq := new(mat.Dense)
	yq.Mul(yT, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	return newSimple(c[0], c[1])
}
