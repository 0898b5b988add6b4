package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	Color  core.Vec3
}

// NewPlane creates a new plane
func NewPlane(point, normal, color core.Vec3) (*Plane, error) {
	if normal.Length() == 0 {
		return nil, ErrDegenerateNormal
	}
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Color:  color,
	}, nil
}

// Hit tests if a ray intersects with the plane.
// The plane is two-sided: the reported normal always faces the incoming ray.
func (p *Plane) Hit(ray core.Ray) (core.Hit, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return core.Hit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= SelfIntersectionEpsilon {
		return core.Hit{}, false
	}

	normal := p.Normal
	if denominator > 0 {
		normal = normal.Negate()
	}

	point := ray.At(t)
	return core.Hit{
		Point:    point,
		Distance: ray.Origin.DistanceTo(point),
		Normal:   normal,
		Color:    p.Color,
	}, true
}
