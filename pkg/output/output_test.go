package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestRGBASink_WritePixel(t *testing.T) {
	sink := NewRGBASink(4, 3)
	sink.WritePixel(2, 1, 10, 20, 30, 255)
	sink.WritePixel(9, 9, 1, 2, 3, 4) // outside, ignored

	img := sink.Image()
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("Expected written pixel, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("Expected untouched pixel to be zero, got %v", got)
	}
}

func TestCanvasSink_WritePixel(t *testing.T) {
	sink := NewCanvasSink(5, 5)
	sink.WritePixel(1, 3, 200, 100, 50, 255)

	r, g, b, a := sink.Image().At(1, 3).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("Expected (200, 100, 50, 255), got (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
	if sink.Context().Width() != 5 || sink.Context().Height() != 5 {
		t.Errorf("Unexpected canvas size %dx%d", sink.Context().Width(), sink.Context().Height())
	}
}

func TestCanvasSink_SavePNG(t *testing.T) {
	sink := NewCanvasSink(2, 2)
	sink.WritePixel(0, 0, 255, 0, 0, 255)

	path := filepath.Join(t.TempDir(), "canvas.png")
	if err := sink.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestCanvasSink_Annotate(t *testing.T) {
	black := image.NewRGBA(image.Rect(0, 0, 40, 24))
	for i := 3; i < len(black.Pix); i += 4 {
		black.Pix[i] = 255
	}
	sink := NewCanvasSinkFromImage(black)
	sink.Annotate("hi")

	white := 0
	img := sink.Image()
	for y := 0; y < 24; y++ {
		for x := 0; x < 40; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("Expected white text pixels after Annotate")
	}
	if black.Pix[0] != 0 {
		t.Error("Annotate should not modify the source image")
	}
}

func TestCanvasSink_Save(t *testing.T) {
	sink := NewCanvasSink(3, 2)
	sink.WritePixel(1, 1, 0, 0, 255, 255)
	dir := t.TempDir()

	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"png in new directory", filepath.Join(dir, "a", "frame.png"), false},
		{"jpeg", filepath.Join(dir, "frame.jpg"), false},
		{"unsupported", filepath.Join(dir, "frame.webp"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sink.Save(tt.path)
			if tt.expectError {
				if !errors.Is(err, imaging.ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			img, err := imaging.Open(tt.path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Errorf("Expected 3x2, got %v", img.Bounds())
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path        string
		expected    Format
		contentType string
	}{
		{"out.png", imaging.PNG, "image/png"},
		{"out.JPG", imaging.JPEG, "image/jpeg"},
		{"dir/out.jpeg", imaging.JPEG, "image/jpeg"},
		{"out.gif", imaging.GIF, "image/gif"},
		{"out.tif", imaging.TIFF, "image/tiff"},
		{"out.bmp", imaging.BMP, "image/bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := FormatFromPath(tt.path)
			if err != nil {
				t.Fatalf("FormatFromPath: %v", err)
			}
			if f != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, f)
			}
			if ct := ContentType(f); ct != tt.contentType {
				t.Errorf("Expected content type %s, got %s", tt.contentType, ct)
			}
		})
	}

	if _, err := FormatFromPath("out.webp"); !errors.Is(err, imaging.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSave_RoundTripPNG(t *testing.T) {
	sink := NewRGBASink(3, 2)
	sink.WritePixel(2, 1, 12, 34, 56, 255)

	path := filepath.Join(t.TempDir(), "nested", "frame.png")
	if err := Save(sink.Image(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r, g, b, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 12 || g>>8 != 34 || b>>8 != 56 {
		t.Errorf("Unexpected decoded pixel (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.xyz")
	if err := Save(NewRGBASink(1, 1).Image(), path); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("No file should be written for an unsupported extension")
	}
}

func TestEncode(t *testing.T) {
	img := NewRGBASink(4, 4).Image()

	for _, f := range []Format{imaging.PNG, imaging.JPEG, imaging.BMP} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, f); err != nil {
			t.Errorf("Encode %v: %v", f, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Encode %v produced no data", f)
		}
	}
}

func TestUpscale(t *testing.T) {
	sink := NewRGBASink(2, 1)
	sink.WritePixel(0, 0, 255, 0, 0, 255)
	sink.WritePixel(1, 0, 0, 0, 255, 255)

	up := Upscale(sink.Image(), 3)
	if up.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("Unexpected bounds %v", up.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			expected := color.RGBA{255, 0, 0, 255}
			if x >= 3 {
				expected = color.RGBA{0, 0, 255, 255}
			}
			if got := up.RGBAAt(x, y); got != expected {
				t.Errorf("(%d, %d): expected %v, got %v", x, y, expected, got)
			}
		}
	}

	if same := Upscale(sink.Image(), 0); same.Bounds() != sink.Image().Bounds() {
		t.Errorf("Factor below 1 should keep size, got %v", same.Bounds())
	}
}
