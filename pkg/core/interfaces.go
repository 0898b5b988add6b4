package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hit describes the nearest intersection of a ray with a shape
type Hit struct {
	Point    Vec3    // Point of intersection
	Distance float64 // Distance from the ray origin to Point
	Normal   Vec3    // Unit surface normal at Point
	Color    Vec3    // Surface color at Point
}

// Shape is anything a ray can be intersected with.
// Hit reports the nearest intersection in front of the ray origin, or false on a miss.
type Shape interface {
	Hit(ray Ray) (Hit, bool)
}

// PixelSink receives the 8-bit color of each rendered pixel
type PixelSink interface {
	WritePixel(x, y int, r, g, b, a uint8)
}
