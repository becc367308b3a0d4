package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrColMismatch = errors.New("column size mismatch")

// NewDenseFromArray builds a dense matrix from a slice of rows. All rows must have the same
// length.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewDesignMatrix returns the len(x) by 2 matrix [1 x] where the constant first column
// carries the intercept.
func NewDesignMatrix(x []float64) *mat.Dense {
	rows := make([][]float64, len(x))
	for i, xi := range x {
		rows[i] = []float64{1.0, xi}
	}

	// rows are always of length 2
	mx, _ := NewDenseFromArray(rows)
	return mx
}
