package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/output"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

var (
	ErrInvalidRaster = errors.New("raster dimensions must be positive")
	ErrNilScene      = errors.New("scene must not be nil")
)

// Raytracer drives one frame: one primary ray per pixel, traced synchronously
type Raytracer struct {
	scene      *scene.Scene
	width      int
	height     int
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, width, height int) (*Raytracer, error) {
	if s == nil {
		return nil, ErrNilScene
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidRaster, width, height)
	}
	return &Raytracer{
		scene:      s,
		width:      width,
		height:     height,
		camera:     NewCamera(s.Camera(), width, height),
		integrator: integrator.NewReflectionIntegrator(),
		logger:     NewNopLogger(),
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// SetLogger sets the logger used for frame progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render traces every pixel and writes it to sink exactly once.
// Raster row 0 is the top of the image, so the camera's upward y is flipped.
func (rt *Raytracer) Render(sink core.PixelSink) RenderStats {
	rt.logger.Printf("Rendering %dx%d frame (depth %d, %d shapes)...\n",
		rt.width, rt.height, rt.scene.Depth(), len(rt.scene.Shapes()))

	startTime := time.Now()
	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for x := 0; x < rt.width; x++ {
		for y := 0; y < rt.height; y++ {
			colorVec := rt.integrator.RayColor(rt.camera.GetRay(x, y), rt.scene)
			stats.addPixel(colorVec)

			c := ColorToRGBA(colorVec)
			// Flipped so +Y is up; this sits one row above a height-y layout, keeping row 0 in bounds
			sink.WritePixel(x, rt.height-1-y, c.R, c.G, c.B, c.A)
		}
	}

	stats.finalize(time.Since(startTime))
	rt.logger.Printf("Frame completed in %v\n", stats.Duration)

	return stats
}

// RenderImage renders the frame into a new RGBA image
func (rt *Raytracer) RenderImage() (*image.RGBA, RenderStats) {
	sink := output.NewRGBASink(rt.width, rt.height)
	stats := rt.Render(sink)
	return sink.Image(), stats
}

// ColorToRGBA converts a linear color to 8-bit channels: scaled by 255,
// clamped, and rounded half to even like a canvas byte buffer. Alpha is opaque.
func ColorToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.RoundToEven(max(0, min(255, v*255))))
}
