package dataset_test

import (
	"errors"
	"testing"

	"github.com/brianbland/statcharts/pkg/dataset"
)

func TestNewSeriesRejectsEmpty(t *testing.T) {
	_, err := dataset.NewSeries("empty", "", nil)
	if !errors.Is(err, dataset.ErrEmptySeries) {
		t.Errorf("Expected ErrEmptySeries, got %v", err)
	}
}

func TestSeriesCopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	series, err := dataset.NewSeries("test", "units", values)
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	values[0] = 99
	if series.Value(0) != 1 {
		t.Errorf("Mutating the input slice changed the series: %v", series.Value(0))
	}

	copied := series.Values()
	copied[1] = -1
	if series.Value(1) != 2 {
		t.Errorf("Mutating a returned copy changed the series: %v", series.Value(1))
	}
}

func TestSeriesMedianSnapshot(t *testing.T) {
	series, err := dataset.NewSeries("test", "", []float64{5, 1, 3})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	if series.Median() != 3 {
		t.Errorf("Expected median 3, got %v", series.Median())
	}
}

func TestSeriesMinMax(t *testing.T) {
	series, err := dataset.NewSeries("test", "", []float64{4, -2, 9, 0})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	if series.Min() != -2 {
		t.Errorf("Expected min -2, got %v", series.Min())
	}
	if series.Max() != 9 {
		t.Errorf("Expected max 9, got %v", series.Max())
	}
}

func TestNewPointSeriesRejectsSingleDimension(t *testing.T) {
	only, err := dataset.NewSeries("x", "", []float64{1, 2})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	_, err = dataset.NewPointSeries("points", only)
	if !errors.Is(err, dataset.ErrTooFewDimensions) {
		t.Errorf("Expected ErrTooFewDimensions, got %v", err)
	}
}

func TestNewPointSeriesRejectsLengthMismatch(t *testing.T) {
	xs, err := dataset.NewSeries("x", "", []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	ys, err := dataset.NewSeries("y", "", []float64{1, 2})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	_, err = dataset.NewPointSeries("points", xs, ys)
	if !errors.Is(err, dataset.ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestPointSeriesTuples(t *testing.T) {
	xs, err := dataset.NewSeries("x", "", []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	ys, err := dataset.NewSeries("y", "", []float64{10, 20, 30})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	zs, err := dataset.NewSeries("z", "", []float64{7, 8, 9})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}

	points, err := dataset.NewPointSeries("points", xs, ys, zs)
	if err != nil {
		t.Fatalf("NewPointSeries failed: %v", err)
	}

	if points.NumDimensions() != 3 || points.Len() != 3 {
		t.Fatalf("Unexpected shape: %d dims, %d points", points.NumDimensions(), points.Len())
	}

	tuple := points.Point(1)
	expected := []float64{2, 20, 8}
	for i, v := range expected {
		if tuple[i] != v {
			t.Errorf("Point(1)[%d]: expected %v, got %v", i, v, tuple[i])
		}
	}

	all := points.Points()
	if len(all) != 3 {
		t.Fatalf("Expected 3 tuples, got %d", len(all))
	}
	if all[2][0] != 3 || all[2][1] != 30 || all[2][2] != 9 {
		t.Errorf("Unexpected last tuple: %v", all[2])
	}
}
