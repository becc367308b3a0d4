package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *Options
		err      error
		expected *Options
	}{
		"nil": {nil, nil, NewDefaultOptions()},
		"empty solver": {
			&Options{HorizonCnt: 5}, nil,
			&Options{Solver: SolverClosedForm, HorizonCnt: 5},
		},
		"qr": {
			&Options{Solver: SolverQR}, nil,
			&Options{Solver: SolverQR},
		},
		"unknown solver": {
			&Options{Solver: "gradient_descent"}, ErrUnknownSolver, nil,
		},
		"negative horizon": {
			&Options{HorizonCnt: -1}, ErrNegativeHorizon, nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestOptionsValidateDoesNotModifyInput(t *testing.T) {
	opt := &Options{}
	_, err := opt.Validate()
	require.Nil(t, err)
	assert.Equal(t, &Options{}, opt)
}
