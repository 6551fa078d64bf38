// Package stats provides the descriptive statistics used by boxplots and
// best-fit lines: medians, quartiles, Tukey fences, outlier detection and
// ordinary least-squares regression.
//
// All functions are pure and safe for concurrent use. Input slices are never
// modified; sorting happens on internal copies.
package stats

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyInput indicates a statistic was requested over no values.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch indicates two paired datasets differ in length.
	ErrLengthMismatch = errors.New("dataset length mismatch")

	// ErrDegenerateInput indicates input with no variance where variance is
	// required (e.g. all-identical x values in a regression).
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNoValueAboveThreshold indicates the whisker search found no data
	// value above the lower Tukey bound.
	ErrNoValueAboveThreshold = errors.New("no value above threshold")

	// ErrIndexOutOfRange indicates the quartile rank formula produced an
	// index outside the dataset, which happens for datasets too small to
	// split into quarters.
	ErrIndexOutOfRange = errors.New("quartile index out of range")
)

// QuartileKind selects which quartile Quartile computes.
type QuartileKind int

const (
	FirstQuartile QuartileKind = 1
	ThirdQuartile QuartileKind = 3
)

// Median returns the median of values: the middle element for odd lengths,
// the mean of the two central elements for even lengths.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, fmt.Errorf("median: %w", ErrEmptyInput)
	}

	sorted := sortedCopy(values)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Quartile returns the first or third quartile of values using a rank-based
// split on k = (n-1)/4. When (n-1) is divisible by 4 the quartiles are the
// values at ranks k and 3k; otherwise each is the mean of the two values
// straddling its rank. This intentionally differs from the textbook
// linear-interpolation method and must not be "corrected": downstream
// consumers rely on these exact index rules.
func Quartile(values []float64, which QuartileKind) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, fmt.Errorf("quartile: %w", ErrEmptyInput)
	}
	if which != FirstQuartile && which != ThirdQuartile {
		return 0, fmt.Errorf("quartile: unknown quartile kind %d", which)
	}

	sorted := sortedCopy(values)
	k := (n - 1) / 4

	if (n-1)%4 == 0 {
		idx := k
		if which == ThirdQuartile {
			idx = 3 * k
		}
		if idx < 0 || idx >= n {
			return 0, fmt.Errorf("quartile: rank %d for %d values: %w", idx, n, ErrIndexOutOfRange)
		}
		return sorted[idx], nil
	}

	lo := k
	if which == ThirdQuartile {
		lo = 3 * k
	}
	if lo < 0 || lo+1 >= n {
		return 0, fmt.Errorf("quartile: ranks %d,%d for %d values: %w", lo, lo+1, n, ErrIndexOutOfRange)
	}
	return (sorted[lo] + sorted[lo+1]) / 2, nil
}

// TukeyFences locates the whisker endpoints for a boxplot: the smallest data
// value above q1 - 1.5*iqr and the largest data value at or below
// q3 + 1.5*iqr. The two searches degrade differently on purpose: when every
// value sits at or below the lower bound the search fails with
// ErrNoValueAboveThreshold, while an upper bound below the entire dataset
// falls back to the dataset minimum.
func TukeyFences(values []float64, q1, q3, iqr float64) (lower, upper float64, err error) {
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("tukey fences: %w", ErrEmptyInput)
	}

	sorted := sortedCopy(values)
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	lower, err = smallestAbove(sorted, lowerBound)
	if err != nil {
		return 0, 0, fmt.Errorf("tukey fences: %w", err)
	}
	upper = largestAtOrBelow(sorted, upperBound)
	return lower, upper, nil
}

// smallestAbove returns the first value strictly greater than bound.
func smallestAbove(sorted []float64, bound float64) (float64, error) {
	for _, v := range sorted {
		if v > bound {
			return v, nil
		}
	}
	return 0, ErrNoValueAboveThreshold
}

// largestAtOrBelow returns the last value not exceeding bound, or the
// dataset minimum when every value exceeds it.
func largestAtOrBelow(sorted []float64, bound float64) float64 {
	for i, v := range sorted {
		if v > bound {
			if i == 0 {
				return sorted[0]
			}
			return sorted[i-1]
		}
	}
	return sorted[len(sorted)-1]
}

// Outliers returns every value strictly outside [lower, upper], preserving
// input order.
func Outliers(values []float64, lower, upper float64) []float64 {
	var outliers []float64
	for _, v := range values {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}
	return outliers
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares.
func LinearRegression(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("linear regression: %d x values vs %d y values: %w",
			len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return 0, 0, fmt.Errorf("linear regression: %w", ErrEmptyInput)
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i, x := range xs {
		sumX += x
		sumY += ys[i]
		sumXY += x * ys[i]
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, fmt.Errorf("linear regression: all x values identical: %w", ErrDegenerateInput)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY*sumXX - sumX*sumXY) / denom
	return slope, intercept, nil
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
