package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gridwire/model"
)

func TestExportPNGWritesDecodableImage(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	obj := &model.Object{ID: 1, Shape: model.ShapeRect, StartX: 0, StartY: 0, EndX: 50, EndY: 50}
	d.Objects = append(d.Objects, obj)
	d.Connectors = append(d.Connectors, &model.Connector{
		ID:       "C1",
		Segments: []*model.Segment{{StartX: 0, StartY: 0, EndX: 50, EndY: 0}},
		Junction: []model.Junction{{X: 25, Y: 0}},
	})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := ExportPNG(path, d); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a valid PNG: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Fatalf("got dimensions %dx%d, want positive", cfg.Width, cfg.Height)
	}
}

func TestExportPNGEmptyCanvasDoesNotPanic(t *testing.T) {
	d := model.NewDrawn(10, 10, false)
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := ExportPNG(path, d); err != nil {
		t.Fatalf("ExportPNG on empty canvas: %v", err)
	}
}
