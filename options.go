package trend

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-trend/linearmodel"
)

var (
	ErrUnknownSolver   = errors.New("unknown solver")
	ErrNegativeHorizon = errors.New("horizon count cannot be negative")
)

// DefaultHorizonCnt is the number of periods forecasted when none is requested
const DefaultHorizonCnt = 3

// Solver selects how the least squares coefficients are computed
type Solver string

const (
	SolverClosedForm Solver = "closed_form"
	SolverQR         Solver = "qr"
)

func (s Solver) fitFunc() (func(x, y []float64) (linearmodel.Simple, error), error) {
	switch s {
	case SolverClosedForm:
		return linearmodel.Fit, nil
	case SolverQR:
		return linearmodel.FitQR, nil
	default:
		return nil, fmt.Errorf("%q, %w", s, ErrUnknownSolver)
	}
}

// Options configures the solver used to fit the trend and the default number of periods to
// forecast.
type Options struct {
	Solver     Solver `json:"solver"`
	HorizonCnt int    `json:"horizon_count"`
}

// NewDefaultOptions returns the closed form solver forecasting 3 periods
func NewDefaultOptions() *Options {
	return &Options{
		Solver:     SolverClosedForm,
		HorizonCnt: DefaultHorizonCnt,
	}
}

// Validate returns a validated copy of the options. Defaults are used for nil options or an
// empty solver.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}

	opt := *o
	if opt.Solver == "" {
		opt.Solver = SolverClosedForm
	}
	if _, err := opt.Solver.fitFunc(); err != nil {
		return nil, err
	}
	if opt.HorizonCnt < 0 {
		return nil, fmt.Errorf("got %d, %w", opt.HorizonCnt, ErrNegativeHorizon)
	}
	return &opt, nil
}
