package trend

import (
	"fmt"
	"io"
	"strconv"
)

// Results holds the predicted value for every requested index
type Results struct {
	X        []float64 `json:"index"`
	Forecast []float64 `json:"forecast"`
}

// TablePrint writes each index and its predicted value rounded to 4 decimal places
func (r *Results) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sForecast:\n", prefix, indentExpand(indent, 0)); err != nil {
		return err
	}
	if r == nil {
		return nil
	}
	for i := 0; i < len(r.X); i++ {
		if _, err := fmt.Fprintf(w, "%s%st=%s: %.4f\n",
			prefix, indentExpand(indent, 1),
			strconv.FormatFloat(r.X[i], 'f', -1, 64), r.Forecast[i]); err != nil {
			return err
		}
	}
	return nil
}
