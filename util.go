package trend

import (
	"math"

	"github.com/aouyang1/go-trend/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineXSeries generates an echart multi-line chart for some arbitrary index/value combination. The
// input y is a slice of series that must have the same length as the input index. NaN values are
// left out of the chart.
func LineXSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))

	filteredX := make([]float64, 0, len(x))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			if math.IsNaN(y[i][j]) {
				continue
			}
			if i == 0 {
				filteredX = append(filteredX, x[j])
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(filteredX)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineFit generates an echart line chart of the training data along with the fit over the
// training index followed by the forecast over the horizon.
func LineFit(trainingData *timedataset.TimeDataset, fitRes, forecastRes *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Trend Fit",
			},
		),
	)

	x := make([]float64, 0, len(fitRes.X)+len(forecastRes.X))
	x = append(x, fitRes.X...)
	x = append(x, forecastRes.X...)

	lineDataActual := make([]opts.LineData, 0, len(trainingData.Y))
	for _, y := range trainingData.Y {
		lineDataActual = append(lineDataActual, opts.LineData{Value: y})
	}

	lineDataTrend := make([]opts.LineData, 0, len(x))
	for _, y := range fitRes.Forecast {
		lineDataTrend = append(lineDataTrend, opts.LineData{Value: y})
	}
	for _, y := range forecastRes.Forecast {
		lineDataTrend = append(lineDataTrend, opts.LineData{Value: y})
	}

	line.SetXAxis(x).
		AddSeries("Actual", lineDataActual).
		AddSeries("Trend", lineDataTrend)
	return line
}

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}
