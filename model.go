package trend

import (
	"fmt"
	"io"
	"strconv"
)

// Model represents a serializeable format of a fit trend storing the options, coefficients,
// the end of the training index, and the fit scores. It can be used to initialize a new Trend
// for immediate predictions skipping the training step.
type Model struct {
	Options   *Options `json:"options"`
	Intercept float64  `json:"intercept"`
	Slope     float64  `json:"slope"`
	LastIndex float64  `json:"last_index"`
	Step      float64  `json:"step"`
	Scores    *Scores  `json:"scores,omitempty"`
}

func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sTrend:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}

	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "%s%sSolver: %s\n", prefix, indentExpand(indent, 1), m.Options.Solver); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sLast Index: %s    Step: %s\n",
		prefix, indentExpand(indent, 1),
		strconv.FormatFloat(m.LastIndex, 'f', -1, 64),
		strconv.FormatFloat(m.Step, 'f', -1, 64),
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%sIntercept: %.4f    Slope: %.4f\n",
		prefix, indentExpand(indent, 1),
		m.Intercept,
		m.Slope,
	); err != nil {
		return err
	}

	if m.Scores != nil {
		if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, indentExpand(indent, 0)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sMAPE: %.4f    MSE: %.4f    R2: %.4f\n",
			prefix, indentExpand(indent, 1),
			m.Scores.MAPE,
			m.Scores.MSE,
			m.Scores.R2,
		); err != nil {
			return err
		}
	}
	return nil
}
