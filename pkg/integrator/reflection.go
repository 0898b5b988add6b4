package integrator

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// ReflectionIntegrator shades hits with ambient plus unshadowed point lights
// and blends in one mirror bounce per level, up to the scene depth.
type ReflectionIntegrator struct{}

// NewReflectionIntegrator creates a new reflection integrator
func NewReflectionIntegrator() *ReflectionIntegrator {
	return &ReflectionIntegrator{}
}

// RayColor traces ray with the scene's configured depth
func (ri *ReflectionIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return Trace(s, ray, s.Depth())
}

// Trace returns the color seen along ray, following at most depth-1 reflections.
// ray.Direction must be unit length.
func Trace(s *scene.Scene, ray core.Ray, depth int) core.Vec3 {
	hit, isHit := nearestHit(s.Shapes(), ray)
	if !isHit {
		return s.Background()
	}

	intensity := lightIntensity(s.Ambient(), s.Lights(), hit)
	direct := hit.Color.Multiply(intensity)
	if depth <= 1 {
		return direct
	}

	bounce := ray.Direction.Reflect(hit.Normal)
	reflected := Trace(s, core.NewRay(hit.Point, bounce), depth-1)

	return direct.Mix(reflected, reflectionWeight(intensity))
}

// nearestHit returns the hit closest to the ray origin. On equal distances the earlier shape wins.
func nearestHit(shapes []core.Shape, ray core.Ray) (core.Hit, bool) {
	_, hit, found := NearestHit(shapes, ray)
	return hit, found
}

// NearestHit is nearestHit that also reports the index of the shape that was hit
func NearestHit(shapes []core.Shape, ray core.Ray) (int, core.Hit, bool) {
	var nearest core.Hit
	index := -1

	for i, shape := range shapes {
		hit, isHit := shape.Hit(ray)
		if isHit && (index < 0 || hit.Distance < nearest.Distance) {
			nearest = hit
			index = i
		}
	}

	return index, nearest, index >= 0
}

// lightIntensity folds max over the lights' cosine terms, seeded with the ambient floor.
// There is no distance falloff and no shadow test.
func lightIntensity(ambient float64, lights []core.Vec3, hit core.Hit) float64 {
	intensity := ambient
	for _, light := range lights {
		toLight := light.Subtract(hit.Point).Normalize()
		intensity = math.Max(intensity, toLight.Dot(hit.Normal))
	}
	return intensity
}

// reflectionWeight is the share of the direct term when mixing with the reflected color.
// It stays near 0.5 unless the surface faces a light almost exactly.
func reflectionWeight(intensity float64) float64 {
	return 0.5 + 0.5*math.Pow(intensity, 30)
}
