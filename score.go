package trend

import (
	"errors"
	"fmt"
	"math"

	"github.com/aouyang1/go-trend/linearmodel"
	"github.com/goccy/go-json"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit scores. R2 is NaN or infinite when the actual values are constant.
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores of the model against the index x and actual values y
func NewScores(model linearmodel.Simple, x, y []float64) (*Scores, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("expected %d, but got %d, %w", len(y), len(x), ErrResLenMismatch)
	}

	mape, err := MAPE(model.PredictAll(x), y)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}

	return &Scores{
		MSE:  model.MSE(x, y),
		MAPE: mape,
		R2:   model.RSquared(x, y),
	}, nil
}

// MAPE calculates the mean average percent error. This is the same as sum(abs((y-yhat)/y)).
// A score of 0 means a perfect match with no errors.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}

// RSquaredDefined reports whether R2 is a finite value
func (s *Scores) RSquaredDefined() bool {
	return s != nil && isFinite(s.R2)
}

// scoresJSON is the wire format of Scores. JSON has no NaN or Inf so those are written as null.
type scoresJSON struct {
	MSE  *float64 `json:"mean_squared_error"`
	MAPE *float64 `json:"mean_average_percent_error"`
	R2   *float64 `json:"r_squared"`
}

func (s Scores) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoresJSON{
		MSE:  finiteOrNil(s.MSE),
		MAPE: finiteOrNil(s.MAPE),
		R2:   finiteOrNil(s.R2),
	})
}

func (s *Scores) UnmarshalJSON(data []byte) error {
	var sj scoresJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	s.MSE = valueOrNaN(sj.MSE)
	s.MAPE = valueOrNaN(sj.MAPE)
	s.R2 = valueOrNaN(sj.R2)
	return nil
}

func finiteOrNil(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
