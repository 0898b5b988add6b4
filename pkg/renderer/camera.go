package renderer

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Camera is a pinhole camera looking down +Z from a fixed origin.
// The shorter raster side spans one unit of the image plane at distance 1,
// so the longer side sees further instead of being stretched.
type Camera struct {
	origin core.Vec3
	minDim float64
}

// NewCamera creates a camera for a width x height raster
func NewCamera(origin core.Vec3, width, height int) *Camera {
	return &Camera{
		origin: origin,
		minDim: float64(min(width, height)),
	}
}

// Direction returns the unit direction through raster coordinate (x, y), with y pointing up
func (c *Camera) Direction(x, y int) core.Vec3 {
	return core.NewVec3(
		float64(x)/c.minDim-0.5,
		float64(y)/c.minDim-0.5,
		1.0,
	).Normalize()
}

// GetRay generates the primary ray for raster coordinate (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	return core.NewRay(c.origin, c.Direction(x, y))
}
