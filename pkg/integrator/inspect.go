package integrator

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Inspection describes the first surface a ray meets and how it is shaded
type Inspection struct {
	ShapeIndex       int      // Index into scene.Shapes()
	Hit              core.Hit // Nearest intersection
	Intensity        float64  // Light intensity at the hit, at least the ambient floor
	ReflectionWeight float64  // Share of the direct color when mixed with the reflection
	Color            core.Vec3
}

// Inspect traces ray to its first hit without following reflections for the
// shading terms. Color is the full traced color at the scene depth.
func Inspect(s *scene.Scene, ray core.Ray) (Inspection, bool) {
	index, hit, isHit := NearestHit(s.Shapes(), ray)
	if !isHit {
		return Inspection{ShapeIndex: -1, Color: s.Background()}, false
	}

	intensity := lightIntensity(s.Ambient(), s.Lights(), hit)
	return Inspection{
		ShapeIndex:       index,
		Hit:              hit,
		Intensity:        intensity,
		ReflectionWeight: reflectionWeight(intensity),
		Color:            Trace(s, ray, s.Depth()),
	}, true
}
