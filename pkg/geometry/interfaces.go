package geometry

import (
	"errors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

var (
	ErrInvalidRadius    = errors.New("sphere radius must be positive")
	ErrDegenerateNormal = errors.New("plane normal must be non-zero")
)

var (
	_ core.Shape = (*Sphere)(nil)
	_ core.Shape = (*Plane)(nil)
)
