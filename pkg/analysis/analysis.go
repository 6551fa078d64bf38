// Package analysis computes descriptive summaries of datasets and prints
// them as formatted reports.
package analysis

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/brianbland/statcharts/pkg/dataset"
	"github.com/brianbland/statcharts/pkg/stats"
)

// Summary contains the descriptive statistics of one series.
type Summary struct {
	Label      string
	Units      string
	Size       int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	Mean       float64
	StdDev     float64
	LowerFence float64
	UpperFence float64
	Outliers   []float64
}

// Fit contains a least-squares regression over one point series.
type Fit struct {
	Title     string
	Size      int
	Slope     float64
	Intercept float64
}

// Summarize computes the descriptive statistics of a series.
func Summarize(series *dataset.Series) (Summary, error) {
	values := series.Values()

	q1, err := stats.Quartile(values, stats.FirstQuartile)
	if err != nil {
		return Summary{}, fmt.Errorf("summary of %q: %w", series.Label(), err)
	}
	q3, err := stats.Quartile(values, stats.ThirdQuartile)
	if err != nil {
		return Summary{}, fmt.Errorf("summary of %q: %w", series.Label(), err)
	}
	lower, upper, err := stats.TukeyFences(values, q1, q3, q3-q1)
	if err != nil {
		return Summary{}, fmt.Errorf("summary of %q: %w", series.Label(), err)
	}

	return Summary{
		Label:      series.Label(),
		Units:      series.Units(),
		Size:       series.Len(),
		Min:        series.Min(),
		Q1:         q1,
		Median:     series.Median(),
		Q3:         q3,
		Max:        series.Max(),
		Mean:       mean(values),
		StdDev:     stdDev(values),
		LowerFence: lower,
		UpperFence: upper,
		Outliers:   stats.Outliers(values, lower, upper),
	}, nil
}

// FitPoints fits a least-squares line over the first two dimensions of a
// point series.
func FitPoints(series *dataset.PointSeries) (Fit, error) {
	slope, intercept, err := stats.LinearRegression(series.Dim(0).Values(), series.Dim(1).Values())
	if err != nil {
		return Fit{}, fmt.Errorf("fit of %q: %w", series.Title(), err)
	}
	return Fit{
		Title:     series.Title(),
		Size:      series.Len(),
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// WriteSummaries prints a formatted report of series summaries.
func WriteSummaries(w io.Writer, summaries []Summary) {
	fmt.Fprintf(w, "\n"+strings.Repeat("=", 80)+"\n")
	fmt.Fprintf(w, "DESCRIPTIVE STATISTICS SUMMARY\n")
	fmt.Fprintf(w, strings.Repeat("=", 80)+"\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Series\tN\tMin\tQ1\tMedian\tQ3\tMax\tMean\tStd Dev\tOutliers")

	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\t%d\n",
			s.Label, s.Size, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean, s.StdDev, len(s.Outliers))
	}
	tw.Flush()

	for _, s := range summaries {
		if len(s.Outliers) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nOutliers in %s (outside %.3g - %.3g):", s.Label, s.LowerFence, s.UpperFence)
		for _, v := range s.Outliers {
			fmt.Fprintf(w, " %.3g", v)
		}
		fmt.Fprintln(w)
	}
}

// WriteFits prints a formatted report of regression fits.
func WriteFits(w io.Writer, fits []Fit) {
	fmt.Fprintf(w, "\n"+strings.Repeat("-", 60)+"\n")
	fmt.Fprintf(w, "LEAST-SQUARES FITS\n")
	fmt.Fprintf(w, strings.Repeat("-", 60)+"\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Series\tN\tSlope\tIntercept")
	for _, f := range fits {
		fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\n", f.Title, f.Size, f.Slope, f.Intercept)
	}
	tw.Flush()
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	m := mean(values)
	var sumSquares float64
	for _, v := range values {
		diff := v - m
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}
