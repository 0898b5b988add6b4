package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

var (
	ErrMalformedVector = errors.New("vector must have exactly 3 components")
	ErrUnknownShape    = errors.New("unknown shape type")
)

// sceneFile is the YAML layout of a scene. Omitted keys take their defaults.
//
//	background: [0, 0, 0]
//	camera: [0, 1, 0]
//	ambient: 0.5
//	depth: 3
//	lights:
//	  - [2, 2, 0]
//	shapes:
//	  - {type: sphere, center: [0, 0, 3], radius: 1, color: [1, 0, 0]}
//	  - {type: plane, point: [0, -1, 0], normal: [0, 1, 0], color: [0.5, 0.5, 0.5]}
type sceneFile struct {
	Background []float64   `yaml:"background"`
	Camera     []float64   `yaml:"camera"`
	Ambient    *float64    `yaml:"ambient"`
	Depth      *int        `yaml:"depth"`
	Lights     [][]float64 `yaml:"lights"`
	Shapes     []shapeFile `yaml:"shapes"`
}

type shapeFile struct {
	Type   string    `yaml:"type"`
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
	Point  []float64 `yaml:"point"`
	Normal []float64 `yaml:"normal"`
	Color  []float64 `yaml:"color"`
}

// LoadFile reads a YAML scene file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene. Unknown keys are rejected.
func Parse(r io.Reader) (*Scene, error) {
	var file sceneFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	cfg, err := file.config()
	if err != nil {
		return nil, err
	}
	return NewScene(cfg)
}

func (f sceneFile) config() (Config, error) {
	var cfg Config
	var err error

	if cfg.Background, err = optionalVec("background", f.Background); err != nil {
		return Config{}, err
	}
	if cfg.Camera, err = optionalVec("camera", f.Camera); err != nil {
		return Config{}, err
	}
	cfg.Ambient = f.Ambient
	cfg.Depth = f.Depth

	if f.Lights != nil {
		cfg.Lights = make([]core.Vec3, 0, len(f.Lights))
		for i, l := range f.Lights {
			light, err := toVec(fmt.Sprintf("light %d", i), l)
			if err != nil {
				return Config{}, err
			}
			cfg.Lights = append(cfg.Lights, light)
		}
	}

	if f.Shapes != nil {
		cfg.Shapes = make([]core.Shape, 0, len(f.Shapes))
		for i, sf := range f.Shapes {
			shape, err := sf.shape()
			if err != nil {
				return Config{}, fmt.Errorf("shape %d: %w", i, err)
			}
			cfg.Shapes = append(cfg.Shapes, shape)
		}
	}

	return cfg, nil
}

func (sf shapeFile) shape() (core.Shape, error) {
	color, err := toVec("color", sf.Color)
	if err != nil {
		return nil, err
	}

	switch sf.Type {
	case "sphere":
		center, err := toVec("center", sf.Center)
		if err != nil {
			return nil, err
		}
		sphere, err := geometry.NewSphere(center, sf.Radius, color)
		if err != nil {
			return nil, err
		}
		return sphere, nil
	case "plane":
		point, err := toVec("point", sf.Point)
		if err != nil {
			return nil, err
		}
		normal, err := toVec("normal", sf.Normal)
		if err != nil {
			return nil, err
		}
		plane, err := geometry.NewPlane(point, normal, color)
		if err != nil {
			return nil, err
		}
		return plane, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, sf.Type)
	}
}

func toVec(field string, v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: %w, got %d", field, ErrMalformedVector, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func optionalVec(field string, v []float64) (*core.Vec3, error) {
	if v == nil {
		return nil, nil
	}
	vec, err := toVec(field, v)
	if err != nil {
		return nil, err
	}
	return &vec, nil
}
