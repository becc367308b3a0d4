// Package trend fits a least squares line through a univariate time series and forecasts it
// forward over future periods.
package trend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aouyang1/go-trend/linearmodel"
	"github.com/aouyang1/go-trend/timedataset"
	"github.com/go-echarts/go-echarts/v2/components"
)

var (
	ErrNotFitted        = errors.New("trend has not been fit")
	ErrEmptyTimeDataset = errors.New("no timedataset or uninitialized")
	ErrNoOptionsInModel = errors.New("no options set in model")
	ErrNonPositiveStep  = errors.New("index step must be positive")
)

// Trend fits a linear trend model and can be used to generate forecasts. A Trend is not safe for
// concurrent use while fitting.
type Trend struct {
	opt *Options

	model     linearmodel.Simple
	fitted    bool
	lastIndex float64
	step      float64
	scores    *Scores

	fitTrainingData *timedataset.TimeDataset
	fitResults      *Results
	residual        []float64
}

// New creates a new instance of a Trend using the provided options. If no options are provided
// a default is used.
func New(opt *Options) (*Trend, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid trend options, %w", err)
	}
	return &Trend{
		opt: opt,
	}, nil
}

// NewFromModel creates a new instance of Trend from a pre-existing model. This should be generated
// from a previous call to Model().
func NewFromModel(model Model) (*Trend, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	opt, err := model.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid model options, %w", err)
	}
	if !(model.Step > 0) {
		return nil, fmt.Errorf("got step of %g, %w", model.Step, ErrNonPositiveStep)
	}

	lm, err := linearmodel.Restore(model.Intercept, model.Slope)
	if err != nil {
		return nil, fmt.Errorf("unable to load linear model, %w", err)
	}

	tr := &Trend{
		opt:       opt,
		model:     lm,
		fitted:    true,
		lastIndex: model.LastIndex,
		step:      model.Step,
	}
	if model.Scores != nil {
		scores := *model.Scores
		tr.scores = &scores
	}
	return tr, nil
}

// Fit fits the trend to the values in y, indexed by period number 0, 1, ..., len(y)-1
func (tr *Trend) Fit(y []float64) error {
	td, err := timedataset.NewUnivariateDataset(y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	return tr.fit(td)
}

// FitXY fits the trend to the values in y observed at the strictly increasing index x
func (tr *Trend) FitXY(x, y []float64) error {
	td, err := timedataset.NewDataset(x, y)
	if err != nil {
		return fmt.Errorf("unable to create training dataset, %w", err)
	}
	return tr.fit(td)
}

func (tr *Trend) fit(td *timedataset.TimeDataset) error {
	n := td.Len()
	td = td.DropNan()
	if dropped := n - td.Len(); dropped > 0 {
		slog.Debug("dropped missing observations before fitting", "dropped", dropped, "remaining", td.Len())
	}

	fitFunc, err := tr.opt.Solver.fitFunc()
	if err != nil {
		return err
	}
	model, err := fitFunc(td.X, td.Y)
	if err != nil {
		return fmt.Errorf("unable to fit trend, %w", err)
	}

	// a successful fit has at least two distinct index values
	step, err := td.X.EstimateStep()
	if err != nil {
		return fmt.Errorf("unable to infer forecast step, %w", err)
	}

	scores, err := NewScores(model, td.X, td.Y)
	if err != nil {
		return fmt.Errorf("unable to score trend fit, %w", err)
	}
	if !scores.RSquaredDefined() {
		slog.Warn("r-squared is undefined for a constant series", "r_squared", scores.R2, "observations", td.Len())
	}

	tr.model = model
	tr.fitted = true
	tr.lastIndex = td.X.End()
	tr.step = step
	tr.scores = scores
	tr.fitTrainingData = td
	tr.residual = model.Residuals(td.X, td.Y)

	x := make([]float64, td.Len())
	copy(x, td.X)
	tr.fitResults = &Results{
		X:        x,
		Forecast: model.PredictAll(x),
	}
	return nil
}

// Predict generates the trend value for every index in x
func (tr *Trend) Predict(x []float64) (*Results, error) {
	if !tr.fitted {
		return nil, ErrNotFitted
	}
	xCopy := make([]float64, len(x))
	copy(xCopy, x)
	return &Results{
		X:        xCopy,
		Forecast: tr.model.PredictAll(xCopy),
	}, nil
}

// Forecast predicts the given number of periods following the end of the training index, spaced
// by the most common step of the training index. If periods is 0 the horizon count from the
// options is used.
func (tr *Trend) Forecast(periods int) (*Results, error) {
	if periods < 0 {
		return nil, fmt.Errorf("got %d periods, %w", periods, ErrNegativeHorizon)
	}
	if periods == 0 {
		periods = tr.opt.HorizonCnt
	}
	if !tr.fitted {
		return nil, ErrNotFitted
	}
	return tr.Predict(timedataset.Horizon(tr.lastIndex, periods, tr.step))
}

// LinearModel returns the underlying fit linear model
func (tr *Trend) LinearModel() linearmodel.Simple {
	return tr.model
}

// Intercept returns the intercept of the trend fit
func (tr *Trend) Intercept() float64 {
	return tr.model.Intercept()
}

// Slope returns the change of the trend per unit of the index
func (tr *Trend) Slope() float64 {
	return tr.model.Slope()
}

// ModelEq returns a string representation of the fit model, y ~ b + mx
func (tr *Trend) ModelEq() (string, error) {
	if !tr.fitted {
		return "", ErrNotFitted
	}
	return tr.model.String(), nil
}

// Scores returns the fit scores against the training data
func (tr *Trend) Scores() *Scores {
	return tr.scores
}

// Residuals returns the difference between the training data and the trend fit
func (tr *Trend) Residuals() []float64 {
	return tr.residual
}

// TrainingData returns the training data used to fit the current trend model
func (tr *Trend) TrainingData() *timedataset.TimeDataset {
	return tr.fitTrainingData
}

// FitResults returns the trend values over the training index
func (tr *Trend) FitResults() *Results {
	return tr.fitResults
}

// Model generates a serializeable representation of the options, coefficients and scores.
func (tr *Trend) Model() (Model, error) {
	if !tr.fitted {
		return Model{}, ErrNotFitted
	}
	opt := *tr.opt
	m := Model{
		Options:   &opt,
		Intercept: tr.model.Intercept(),
		Slope:     tr.model.Slope(),
		LastIndex: tr.lastIndex,
		Step:      tr.step,
	}
	if tr.scores != nil {
		scores := *tr.scores
		m.Scores = &scores
	}
	return m, nil
}

// PlotOpts sets the number of periods to forecast in the plot. By default the horizon count of the
// trend options is used.
type PlotOpts struct {
	HorizonCnt int
}

// PlotFit uses the Apache Echarts library to render an html page showing the training data with
// the fit and forecast, and the fit residual
func (tr *Trend) PlotFit(w io.Writer, opt *PlotOpts) error {
	td := tr.TrainingData()
	if td == nil || td.Len() == 0 {
		return ErrEmptyTimeDataset
	}

	var horizonCnt int
	if opt != nil {
		horizonCnt = opt.HorizonCnt
	}
	forecastRes, err := tr.Forecast(horizonCnt)
	if err != nil {
		return fmt.Errorf("unable to forecast horizon, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		LineFit(td, tr.fitResults, forecastRes),
		LineXSeries(
			"Trend Residual",
			[]string{"Residual"},
			td.X,
			[][]float64{tr.residual},
		),
	)
	return page.Render(w)
}
