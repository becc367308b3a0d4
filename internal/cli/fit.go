package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	trend "github.com/aouyang1/go-trend"
	"github.com/aouyang1/go-trend/linearmodel"
	"github.com/spf13/cobra"
)

// FitOptions holds the flags of the fit command.
type FitOptions struct {
	ConfigPath string
	Periods    int
	Solver     string
	Index      []float64
	Plot       string
}

// NewFitCommand creates the fit command.
func NewFitCommand(rootOpts *RootOptions) *cobra.Command {
	fitOpts := &FitOptions{}

	cmd := &cobra.Command{
		Use:   "fit [values...]",
		Short: "Fit a linear trend and forecast future periods",
		Long: `Fit a least squares line through the given values and forecast the periods that
follow. Values are indexed 0, 1, ..., n-1 unless --index is set. Without any values
the sample series 2 3 5 7 11 is used. Use -- before values that start with a minus sign.

Values and flags may also come from a YAML config file. Flags and arguments override it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(rootOpts, fitOpts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&fitOpts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&fitOpts.Periods, "periods", "p", trend.DefaultHorizonCnt, "number of future periods to forecast")
	cmd.Flags().StringVar(&fitOpts.Solver, "solver", string(trend.SolverClosedForm), "least squares solver (closed_form|qr)")
	cmd.Flags().Float64SliceVar(&fitOpts.Index, "index", nil, "strictly increasing index of the values (default 0..n-1)")
	cmd.Flags().StringVar(&fitOpts.Plot, "plot", "", "write an html plot of the fit and forecast to this path")

	return cmd
}

func runFit(opts *RootOptions, fitOpts *FitOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	cfg, err := resolveConfig(fitOpts, args, cmd)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return outputFitError(formatter, exitErr.Code, exitErr.Message, exitErr.Err)
		}
		return outputFitError(formatter, ExitCommandError, ErrCodeConfig, err)
	}

	tr, err := trend.New(cfg.Options())
	if err != nil {
		return outputFitError(formatter, ExitCommandError, ErrCodeConfig, err)
	}

	if cfg.Index == nil {
		err = tr.Fit(cfg.Values)
	} else {
		err = tr.FitXY(cfg.Index, cfg.Values)
	}
	if err != nil {
		code := ErrCodeInvalidInput
		if errors.Is(err, linearmodel.ErrDegenerateInput) {
			code = ErrCodeDegenerateInput
		}
		return outputFitError(formatter, ExitFailure, code, err)
	}
	slog.Debug("fit trend", "observations", tr.TrainingData().Len(), "solver", cfg.Solver)

	forecast, err := tr.Forecast(cfg.Periods)
	if err != nil {
		return outputFitError(formatter, ExitCommandError, ErrCodeConfig, err)
	}
	model, err := tr.Model()
	if err != nil {
		return outputFitError(formatter, ExitFailure, ErrCodeInvalidInput, err)
	}

	if cfg.Plot != "" {
		if err := writePlot(tr, cfg); err != nil {
			return outputFitError(formatter, ExitCommandError, ErrCodeOutput, err)
		}
		slog.Info("wrote trend plot", "path", cfg.Plot)
	}

	if err := formatter.Report(Report{Model: model, Forecast: forecast}); err != nil {
		return WrapExitError(ExitCommandError, ErrCodeOutput, err)
	}
	return nil
}

// resolveConfig layers the config file, then changed flags, then positional values.
func resolveConfig(fitOpts *FitOptions, args []string, cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()
	if fitOpts.ConfigPath != "" {
		var err error
		cfg, err = LoadConfig(fitOpts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, ErrCodeConfig, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("periods") {
		if fitOpts.Periods < 0 {
			return nil, WrapExitError(ExitCommandError, ErrCodeConfig,
				fmt.Errorf("got %d periods, %w", fitOpts.Periods, ErrNegativePeriods))
		}
		cfg.Periods = fitOpts.Periods
	}
	if flags.Changed("solver") {
		cfg.Solver = fitOpts.Solver
	}
	if flags.Changed("index") {
		cfg.Index = fitOpts.Index
	}
	if flags.Changed("plot") {
		cfg.Plot = fitOpts.Plot
	}

	if len(args) > 0 {
		values, err := parseValues(args)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, ErrCodeInvalidInput, err)
		}
		cfg.Values = values
	}
	return cfg, nil
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q, %w", arg, linearmodel.ErrInvalidInput)
		}
		values = append(values, v)
	}
	return values, nil
}

func writePlot(tr *trend.Trend, cfg *Config) error {
	f, err := os.Create(cfg.Plot)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	if err := tr.PlotFit(f, &trend.PlotOpts{HorizonCnt: cfg.Periods}); err != nil {
		f.Close()
		return fmt.Errorf("unable to render plot, %w", err)
	}
	return f.Close()
}

func outputFitError(formatter *OutputFormatter, exitCode int, code string, err error) error {
	_ = formatter.Error(code, err.Error())
	return WrapExitError(exitCode, code, err)
}
