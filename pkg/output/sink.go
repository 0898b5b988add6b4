package output

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// RGBASink collects rendered pixels in an in-memory RGBA image.
// Writes outside the raster are ignored.
type RGBASink struct {
	img *image.RGBA
}

// NewRGBASink creates a sink for a width x height raster
func NewRGBASink(width, height int) *RGBASink {
	return &RGBASink{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *RGBASink) WritePixel(x, y int, r, g, b, a uint8) {
	s.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
}

// Image returns the backing image
func (s *RGBASink) Image() *image.RGBA {
	return s.img
}

// CanvasSink draws rendered pixels onto a gg drawing context,
// so frames can be annotated or composed before saving.
type CanvasSink struct {
	dc *gg.Context
}

// NewCanvasSink creates a canvas for a width x height raster
func NewCanvasSink(width, height int) *CanvasSink {
	return &CanvasSink{dc: gg.NewContext(width, height)}
}

func (s *CanvasSink) WritePixel(x, y int, r, g, b, a uint8) {
	s.dc.SetRGBA255(int(r), int(g), int(b), int(a))
	s.dc.SetPixel(x, y)
}

// NewCanvasSinkFromImage creates a canvas holding a copy of img
func NewCanvasSinkFromImage(img image.Image) *CanvasSink {
	return &CanvasSink{dc: gg.NewContextForImage(img)}
}

// Annotate draws lines of white text in the top left corner, one per row
func (s *CanvasSink) Annotate(lines ...string) {
	s.dc.SetRGB(1, 1, 1)
	lineHeight := s.dc.FontHeight() + 2
	for i, line := range lines {
		s.dc.DrawString(line, 4, 2+lineHeight*float64(i+1))
	}
}

// Context exposes the drawing context
func (s *CanvasSink) Context() *gg.Context {
	return s.dc
}

// Image returns the canvas contents
func (s *CanvasSink) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the canvas to a PNG file
func (s *CanvasSink) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Save writes the canvas to path like Save does. PNG goes through the canvas encoder.
func (s *CanvasSink) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if f != PNG {
		return Save(s.dc.Image(), path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
