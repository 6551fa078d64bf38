package surface_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/brianbland/statcharts/pkg/surface"
)

func TestRGBValidatesComponents(t *testing.T) {
	c, err := surface.RGB(10, 20, 30)
	if err != nil {
		t.Fatalf("RGB failed: %v", err)
	}
	if c != (surface.Color{R: 10, G: 20, B: 30}) {
		t.Errorf("Unexpected color: %+v", c)
	}

	for _, bad := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 300}} {
		if _, err := surface.RGB(bad[0], bad[1], bad[2]); !errors.Is(err, surface.ErrInvalidColor) {
			t.Errorf("RGB(%v): expected ErrInvalidColor, got %v", bad, err)
		}
	}
}

func TestComplement(t *testing.T) {
	if got := surface.Complement(surface.White); got != (surface.Color{}) {
		t.Errorf("Expected black, got %+v", got)
	}
	if got := surface.Complement(surface.Color{R: 100, G: 150, B: 200}); got != (surface.Color{R: 155, G: 105, B: 55}) {
		t.Errorf("Unexpected complement: %+v", got)
	}
}

func TestDarkenHalvesChannels(t *testing.T) {
	if got := surface.Darken(surface.Color{R: 100, G: 50, B: 255}); got != (surface.Color{R: 50, G: 25, B: 127}) {
		t.Errorf("Unexpected darkened color: %+v", got)
	}
}

func TestRecorderLogsCommands(t *testing.T) {
	r := surface.NewRecorder()
	r.DrawRect(1, 2, 3, 4, surface.White)
	r.DrawLine(0, 0, 10, 10, 2, surface.White)
	r.DrawCircle(5, 5, 3, surface.White, 0)
	r.DrawText("hi", 7, 8, surface.White, 12, 90)

	if len(r.Ops) != 4 {
		t.Fatalf("Expected 4 ops, got %d", len(r.Ops))
	}
	if r.CountKind(surface.OpRect) != 1 || r.CountKind(surface.OpLine) != 1 ||
		r.CountKind(surface.OpCircle) != 1 || r.CountKind(surface.OpText) != 1 {
		t.Errorf("Unexpected op kinds: %+v", r.Ops)
	}

	texts := r.TextOps()
	if len(texts) != 1 || texts[0].Text != "hi" || texts[0].Rotation != 90 {
		t.Errorf("Unexpected text ops: %+v", texts)
	}
}

func TestNewRasterRejectsInvalidSize(t *testing.T) {
	if _, err := surface.NewRaster(0, 100); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := surface.NewRaster(100, -1); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestRasterSavesPNG(t *testing.T) {
	raster, err := surface.NewRaster(100, 80)
	if err != nil {
		t.Fatalf("NewRaster failed: %v", err)
	}

	raster.DrawRect(0, 0, 100, 80, surface.White)
	raster.DrawLine(10, 10, 90, 70, 2, surface.Color{R: 200})
	raster.DrawCircle(50, 40, 10, surface.Color{B: 200}, 0)
	raster.DrawText("label", 50, 40, surface.Color{}, 12, 0)

	var buf bytes.Buffer
	if err := raster.SavePNG(&buf); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	// PNG magic bytes.
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("Output does not look like a PNG (%d bytes)", buf.Len())
	}
}
