package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Format is an output image encoding
type Format = imaging.Format

// Supported encodings
const (
	PNG  = imaging.PNG
	JPEG = imaging.JPEG
	GIF  = imaging.GIF
	TIFF = imaging.TIFF
	BMP  = imaging.BMP
)

// FormatFromExtension resolves "png", ".jpg", "tiff", ... to an encoding
func FormatFromExtension(ext string) (Format, error) {
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return f, fmt.Errorf("output format %q: %w", ext, err)
	}
	return f, nil
}

// FormatFromPath resolves the encoding from a file name's extension
func FormatFromPath(path string) (Format, error) {
	return FormatFromExtension(filepath.Ext(path))
}

// ContentType returns the MIME type of an encoding
func ContentType(f Format) string {
	switch f {
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case TIFF:
		return "image/tiff"
	case BMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Encode writes img to w in the given encoding
func Encode(w io.Writer, img image.Image, f Format) error {
	if err := imaging.Encode(w, img, f); err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the encoding from the extension.
// Missing parent directories are created.
func Save(img image.Image, path string) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping every traced pixel a hard-edged block.
func Upscale(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	if factor < 1 {
		factor = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
