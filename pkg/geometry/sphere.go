package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// SelfIntersectionEpsilon is the minimum hit distance a shape reports.
// Reflection rays start exactly on a surface and must not hit it again at t≈0.
const SelfIntersectionEpsilon = 0.01

// Sphere represents a solid-colored sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (core.Hit, bool) {
	// Vector from sphere center to ray origin
	v := ray.Origin.Subtract(s.Center)

	// Half the linear coefficient of the quadratic, for a unit direction
	b := -v.Dot(ray.Direction)
	v2 := v.Dot(v)
	r2 := s.Radius * s.Radius

	d2 := b*b - v2 + r2
	if d2 <= 0 {
		return core.Hit{}, false
	}

	// Near root first, then far root (origin inside the sphere)
	sqrtD := math.Sqrt(d2)
	t := b - sqrtD
	if t <= SelfIntersectionEpsilon {
		t = b + sqrtD
		if t <= SelfIntersectionEpsilon {
			return core.Hit{}, false
		}
	}

	point := ray.At(t)
	return core.Hit{
		Point:    point,
		Distance: ray.Origin.DistanceTo(point),
		Normal:   point.Subtract(s.Center).Normalize(),
		Color:    s.Color,
	}, true
}
