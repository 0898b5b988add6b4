package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

var (
	ErrInvalidAmbient = errors.New("ambient must be within [0, 1]")
	ErrInvalidDepth   = errors.New("depth must be at least 1")
	ErrNoLights       = errors.New("scene needs at least one light")
	ErrNilShape       = errors.New("shape must not be nil")
)

// Scene is the immutable input of a render: shapes, point lights, ambient floor,
// background color, camera position and reflection depth.
type Scene struct {
	shapes     []core.Shape
	lights     []core.Vec3
	ambient    float64
	background core.Vec3
	camera     core.Vec3
	depth      int
}

// Config holds the recognised scene options. Nil fields take the value from DefaultConfig.
type Config struct {
	Background *core.Vec3   // Color returned by rays that hit nothing
	Camera     *core.Vec3   // Origin of every primary ray
	Lights     []core.Vec3  // Point light positions
	Ambient    *float64     // Minimum light intensity, in [0, 1]
	Depth      *int         // Maximum number of traced bounces, at least 1
	Shapes     []core.Shape // Objects in the scene
}

// DefaultConfig returns a single red unit sphere in front of the camera, lit from the upper right
func DefaultConfig() Config {
	sphere, _ := geometry.NewSphere(core.NewVec3(0, 0, 3), 1, core.NewVec3(1, 0, 0))
	return Config{
		Background: Ptr(core.NewVec3(0, 0, 0)),
		Camera:     Ptr(core.NewVec3(0, 1, 0)),
		Lights:     []core.Vec3{core.NewVec3(2, 2, 0)},
		Ambient:    Ptr(0.5),
		Depth:      Ptr(3),
		Shapes:     []core.Shape{sphere},
	}
}

// Ptr returns a pointer to v, for filling optional Config fields
func Ptr[T any](v T) *T {
	return &v
}

// withDefaults fills every unset field from DefaultConfig
func (c Config) withDefaults() (Config, error) {
	merged := DefaultConfig()
	if err := copier.CopyWithOption(&merged, &c, copier.Option{IgnoreEmpty: true}); err != nil {
		return Config{}, fmt.Errorf("merge scene defaults: %w", err)
	}
	return merged, nil
}

func (c Config) validate() error {
	if ambient := *c.Ambient; math.IsNaN(ambient) || ambient < 0 || ambient > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidAmbient, ambient)
	}
	if *c.Depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, *c.Depth)
	}
	if len(c.Lights) == 0 {
		return ErrNoLights
	}
	for i, shape := range c.Shapes {
		if shape == nil {
			return fmt.Errorf("shape %d: %w", i, ErrNilShape)
		}
	}
	return nil
}

// NewScene builds a scene from cfg, filling unset options with defaults.
// Malformed configuration is rejected here rather than during rendering.
func NewScene(cfg Config) (*Scene, error) {
	merged, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return &Scene{
		shapes:     append([]core.Shape(nil), merged.Shapes...),
		lights:     append([]core.Vec3(nil), merged.Lights...),
		ambient:    *merged.Ambient,
		background: *merged.Background,
		camera:     *merged.Camera,
		depth:      *merged.Depth,
	}, nil
}

// Shapes returns the scene objects. Callers must not modify the slice.
func (s *Scene) Shapes() []core.Shape { return s.shapes }

// Lights returns the point light positions. Callers must not modify the slice.
func (s *Scene) Lights() []core.Vec3 { return s.lights }

func (s *Scene) Ambient() float64 { return s.ambient }

func (s *Scene) Background() core.Vec3 { return s.background }

func (s *Scene) Camera() core.Vec3 { return s.camera }

// Depth returns the reflection depth; a depth of 1 traces primary rays only.
func (s *Scene) Depth() int { return s.depth }

// Config returns the options that rebuild this scene, for deriving variants
// such as a different reflection depth.
func (s *Scene) Config() Config {
	return Config{
		Background: Ptr(s.background),
		Camera:     Ptr(s.camera),
		Lights:     append([]core.Vec3{}, s.lights...),
		Ambient:    Ptr(s.ambient),
		Depth:      Ptr(s.depth),
		Shapes:     append([]core.Shape{}, s.shapes...),
	}
}
