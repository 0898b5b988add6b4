package renderer

import (
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	ColorAccum       core.Vec3     // Sum of linear pixel colors
	AverageColor     core.Vec3     // Mean linear pixel color
	AverageLuminance float64       // Mean perceptual luminance
	Duration         time.Duration // Wall time spent tracing
}

func (s *RenderStats) addPixel(color core.Vec3) {
	s.ColorAccum = s.ColorAccum.Add(color)
}

func (s *RenderStats) finalize(elapsed time.Duration) {
	s.Duration = elapsed
	if s.TotalPixels > 0 {
		s.AverageColor = s.ColorAccum.Multiply(1.0 / float64(s.TotalPixels))
		s.AverageLuminance = s.AverageColor.Luminance()
	}
}
