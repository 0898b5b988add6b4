package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// NewDefaultScene creates the default scene: one red unit sphere lit from the upper right
func NewDefaultScene() (*Scene, error) {
	return NewScene(Config{})
}

// NewMirrorsScene creates a scene with three spheres on a gray floor.
// The spheres reflect each other and the floor, which makes the recursion depth visible.
func NewMirrorsScene() (*Scene, error) {
	floor, err := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.6, 0.6, 0.6))
	if err != nil {
		return nil, err
	}

	spheres := []struct {
		center core.Vec3
		radius float64
		color  core.Vec3
	}{
		{core.NewVec3(0, 0, 4), 1, core.NewVec3(0.9, 0.2, 0.2)},
		{core.NewVec3(-2.2, -0.3, 5), 0.7, core.NewVec3(0.2, 0.8, 0.3)},
		{core.NewVec3(2.1, -0.4, 4.5), 0.6, core.NewVec3(0.2, 0.4, 0.9)},
	}

	shapes := []core.Shape{floor}
	for _, s := range spheres {
		sphere, err := geometry.NewSphere(s.center, s.radius, s.color)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, sphere)
	}

	return NewScene(Config{
		Background: Ptr(core.NewVec3(0.1, 0.12, 0.2)),
		Camera:     Ptr(core.NewVec3(0, 0.5, 0)),
		Lights: []core.Vec3{
			core.NewVec3(3, 4, 1),
			core.NewVec3(-4, 3, 2),
		},
		Ambient: Ptr(0.3),
		Depth:   Ptr(4),
		Shapes:  shapes,
	})
}
