package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

func TestNewScene_Defaults(t *testing.T) {
	s, err := NewScene(Config{})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	if s.Background() != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black background, got %v", s.Background())
	}
	if s.Camera() != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected camera (0, 1, 0), got %v", s.Camera())
	}
	if s.Ambient() != 0.5 {
		t.Errorf("Expected ambient 0.5, got %v", s.Ambient())
	}
	if s.Depth() != 3 {
		t.Errorf("Expected depth 3, got %d", s.Depth())
	}
	if len(s.Lights()) != 1 || s.Lights()[0] != core.NewVec3(2, 2, 0) {
		t.Errorf("Expected one light at (2, 2, 0), got %v", s.Lights())
	}
	if len(s.Shapes()) != 1 {
		t.Fatalf("Expected one default shape, got %d", len(s.Shapes()))
	}

	sphere, ok := s.Shapes()[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected default shape to be a sphere, got %T", s.Shapes()[0])
	}
	if sphere.Radius != 1 || sphere.Center != core.NewVec3(0, 0, 3) || sphere.Color != core.NewVec3(1, 0, 0) {
		t.Errorf("Unexpected default sphere %+v", sphere)
	}
}

func TestNewScene_OverridesKeepOtherDefaults(t *testing.T) {
	s, err := NewScene(Config{
		Depth:  Ptr(1),
		Lights: []core.Vec3{core.NewVec3(0, 5, 0), core.NewVec3(5, 0, 0)},
	})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	if s.Depth() != 1 {
		t.Errorf("Expected overridden depth 1, got %d", s.Depth())
	}
	if len(s.Lights()) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(s.Lights()))
	}
	if s.Ambient() != 0.5 {
		t.Errorf("Expected default ambient, got %v", s.Ambient())
	}
	if s.Camera() != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected default camera, got %v", s.Camera())
	}
}

func TestNewScene_ExplicitZeroValues(t *testing.T) {
	s, err := NewScene(Config{
		Camera:  Ptr(core.NewVec3(0, 0, 0)),
		Ambient: Ptr(0.0),
	})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	if s.Camera() != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected camera at origin, got %v", s.Camera())
	}
	if s.Ambient() != 0 {
		t.Errorf("Expected ambient 0, got %v", s.Ambient())
	}
}

func TestNewScene_EmptyShapesAllowed(t *testing.T) {
	s, err := NewScene(Config{Shapes: []core.Shape{}})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	if len(s.Shapes()) != 0 {
		t.Errorf("Expected no shapes, got %d", len(s.Shapes()))
	}
}

func TestNewScene_Validation(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected error
	}{
		{"negative ambient", Config{Ambient: Ptr(-0.1)}, ErrInvalidAmbient},
		{"ambient above one", Config{Ambient: Ptr(1.5)}, ErrInvalidAmbient},
		{"NaN ambient", Config{Ambient: Ptr(math.NaN())}, ErrInvalidAmbient},
		{"zero depth", Config{Depth: Ptr(0)}, ErrInvalidDepth},
		{"negative depth", Config{Depth: Ptr(-2)}, ErrInvalidDepth},
		{"empty lights", Config{Lights: []core.Vec3{}}, ErrNoLights},
		{"nil shape", Config{Shapes: []core.Shape{nil}}, ErrNilShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(tt.config)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if s != nil {
				t.Error("Expected nil scene on error")
			}
		})
	}
}

func TestNewScene_CopiesInputSlices(t *testing.T) {
	lights := []core.Vec3{core.NewVec3(1, 1, 1)}
	s, err := NewScene(Config{Lights: lights})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	lights[0] = core.NewVec3(9, 9, 9)
	if s.Lights()[0] != core.NewVec3(1, 1, 1) {
		t.Errorf("Scene should not observe caller mutations, got %v", s.Lights()[0])
	}
}

func TestBuiltinScenes(t *testing.T) {
	for _, b := range builtinScenes {
		t.Run(b.info.ID, func(t *testing.T) {
			s, err := b.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(s.Shapes()) == 0 {
				t.Error("Expected shapes")
			}
			if s.Depth() < 1 {
				t.Errorf("Expected positive depth, got %d", s.Depth())
			}
		})
	}
}

func TestOklchToRGB_InRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 15 {
		c := oklchToRGB(0.7, 0.15, hue)
		if c.Clamp(0, 1) != c {
			t.Errorf("hue %v: color %v outside [0, 1]", hue, c)
		}
	}
}

func TestScene_ConfigRoundTrip(t *testing.T) {
	base, err := NewMirrorsScene()
	if err != nil {
		t.Fatal(err)
	}

	cfg := base.Config()
	cfg.Depth = Ptr(1)
	derived, err := NewScene(cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	if derived.Depth() != 1 {
		t.Errorf("Expected overridden depth 1, got %d", derived.Depth())
	}
	if base.Depth() == 1 {
		t.Error("Base scene should keep its depth")
	}
	if derived.Ambient() != base.Ambient() || derived.Camera() != base.Camera() || derived.Background() != base.Background() {
		t.Error("Derived scene should keep the other options")
	}
	if len(derived.Shapes()) != len(base.Shapes()) || len(derived.Lights()) != len(base.Lights()) {
		t.Error("Derived scene should keep shapes and lights")
	}

	empty, err := NewScene(Config{Shapes: []core.Shape{}})
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := NewScene(empty.Config())
	if err != nil {
		t.Fatal(err)
	}
	if len(rebuilt.Shapes()) != 0 {
		t.Errorf("Empty scene should stay empty, got %d shapes", len(rebuilt.Shapes()))
	}
}
