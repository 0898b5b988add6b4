package scene

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

const sphereGridSize = 5

// NewSphereGridScene creates a 5x5 grid of rainbow-colored spheres on a dark floor
func NewSphereGridScene() (*Scene, error) {
	floor, err := geometry.NewPlane(core.NewVec3(0, -0.4, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.15, 0.15, 0.15))
	if err != nil {
		return nil, err
	}
	shapes := []core.Shape{floor}

	const spacing = 1.0
	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			hue := float64(i*sphereGridSize+j) / float64(sphereGridSize*sphereGridSize) * 360.0
			center := core.NewVec3(
				(float64(i)-float64(sphereGridSize-1)/2)*spacing,
				0,
				4+float64(j)*spacing,
			)
			sphere, err := geometry.NewSphere(center, 0.4, oklchToRGB(0.7, 0.15, hue))
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, sphere)
		}
	}

	return NewScene(Config{
		Background: Ptr(core.NewVec3(0.05, 0.05, 0.08)),
		Camera:     Ptr(core.NewVec3(0, 1.6, 0)),
		Lights:     []core.Vec3{core.NewVec3(-3, 6, 2)},
		Ambient:    Ptr(0.25),
		Depth:      Ptr(3),
		Shapes:     shapes,
	})
}
