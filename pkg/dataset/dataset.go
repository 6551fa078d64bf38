// Package dataset holds the data model charts consume: single-dimension
// Series and N-aligned PointSeries. Both are validated at construction and
// immutable afterwards.
package dataset

import (
	"errors"
	"fmt"

	"github.com/brianbland/statcharts/pkg/stats"
)

var (
	// ErrEmptySeries indicates a series with no values.
	ErrEmptySeries = errors.New("series has no values")

	// ErrLengthMismatch indicates point-series dimensions of unequal length.
	ErrLengthMismatch = errors.New("dimension length mismatch")

	// ErrTooFewDimensions indicates a point series with fewer than two
	// dimensions.
	ErrTooFewDimensions = errors.New("point series needs at least two dimensions")
)

// Series is an ordered, labeled sequence of numeric values. The median is
// computed once at construction; because the values are copied in and only
// handed back as copies, the snapshot can never drift from the data.
type Series struct {
	values []float64
	label  string
	units  string
	median float64
}

// NewSeries copies values into an immutable series. It fails on empty input.
func NewSeries(label, units string, values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("series %q: %w", label, ErrEmptySeries)
	}

	median, err := stats.Median(values)
	if err != nil {
		return nil, fmt.Errorf("series %q: %w", label, err)
	}

	copied := make([]float64, len(values))
	copy(copied, values)

	return &Series{
		values: copied,
		label:  label,
		units:  units,
		median: median,
	}, nil
}

// Len returns the number of values.
func (s *Series) Len() int { return len(s.values) }

// Label returns the series label.
func (s *Series) Label() string { return s.label }

// Units returns the unit string.
func (s *Series) Units() string { return s.units }

// Median returns the median snapshot taken at construction.
func (s *Series) Median() float64 { return s.median }

// Value returns the value at index i.
func (s *Series) Value(i int) float64 { return s.values[i] }

// Values returns a copy of the value sequence.
func (s *Series) Values() []float64 {
	copied := make([]float64, len(s.values))
	copy(copied, s.values)
	return copied
}

// Min returns the smallest value.
func (s *Series) Min() float64 {
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value.
func (s *Series) Max() float64 {
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// PointSeries aligns two or more equal-length series so that index i across
// all dimensions forms one point in the Cartesian product of dimensions.
type PointSeries struct {
	dims  []*Series
	title string
}

// NewPointSeries validates the dimensions and returns the point series.
func NewPointSeries(title string, dims ...*Series) (*PointSeries, error) {
	if len(dims) < 2 {
		return nil, fmt.Errorf("point series %q has %d dimension(s): %w", title, len(dims), ErrTooFewDimensions)
	}
	for i, dim := range dims {
		if dim.Len() != dims[0].Len() {
			return nil, fmt.Errorf("point series %q: dimension 0 has %d values but dimension %d has %d: %w",
				title, dims[0].Len(), i, dim.Len(), ErrLengthMismatch)
		}
	}

	copied := make([]*Series, len(dims))
	copy(copied, dims)

	return &PointSeries{dims: copied, title: title}, nil
}

// Title returns the point-series title.
func (p *PointSeries) Title() string { return p.title }

// NumDimensions returns the number of aligned series.
func (p *PointSeries) NumDimensions() int { return len(p.dims) }

// Len returns the number of points.
func (p *PointSeries) Len() int { return p.dims[0].Len() }

// Dim returns the series for dimension i.
func (p *PointSeries) Dim(i int) *Series { return p.dims[i] }

// Point returns the i-th coordinate across all dimensions.
func (p *PointSeries) Point(i int) []float64 {
	point := make([]float64, len(p.dims))
	for d, dim := range p.dims {
		point[d] = dim.Value(i)
	}
	return point
}

// Points returns one tuple per index across all dimensions, in input order.
func (p *PointSeries) Points() [][]float64 {
	points := make([][]float64, p.Len())
	for i := range points {
		points[i] = p.Point(i)
	}
	return points
}
