package render

import (
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/minegrid/utils/floatutils"
)

// Parameters of the low-pass filter drawn over the raw returns
const (
	LowpassSpread = 0.25
	LowpassTaps   = 29
)

// RewardChart writes an HTML line chart of the return of every episode
// in history to w, together with a low-pass filtered version of the
// same series that shows the trend of training.
func RewardChart(w io.Writer, history []float64) error {
	episodes := make([]string, len(history))
	for i := range history {
		episodes[i] = strconv.Itoa(i + 1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Return per episode",
			Subtitle: strconv.Itoa(len(history)) + " episodes",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "return"}),
	)

	smoothed := floatutils.Lowpass(history, LowpassSpread, LowpassTaps)
	line.SetXAxis(episodes).
		AddSeries("return", lineData(history)).
		AddSeries("low-pass", lineData(smoothed))

	if err := line.Render(w); err != nil {
		return errors.Wrap(err, "rewardChart")
	}
	return nil
}

// SaveRewardChart writes a RewardChart into the HTML file filename
func SaveRewardChart(filename string, history []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "saveRewardChart")
	}

	if err := RewardChart(file, history); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func lineData(series []float64) []opts.LineData {
	items := make([]opts.LineData, len(series))
	for i, v := range series {
		items[i] = opts.LineData{Value: v}
	}
	return items
}
