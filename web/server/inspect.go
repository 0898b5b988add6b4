package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/integrator"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit              bool                   `json:"hit"`
	GeometryType     string                 `json:"geometryType,omitempty"`
	ShapeIndex       int                    `json:"shapeIndex"`
	Point            [3]float64             `json:"point"`
	Normal           [3]float64             `json:"normal"`
	Distance         float64                `json:"distance"`
	Intensity        float64                `json:"intensity"`
	ReflectionWeight float64                `json:"reflectionWeight"`
	Color            [3]float64             `json:"color"` // Final traced color at the scene depth
	Properties       map[string]interface{} `json:"properties,omitempty"`
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape core.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecToArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["color"] = vecToArray(geom.Color)
		return "sphere", properties
	case *geometry.Plane:
		properties["point"] = vecToArray(geom.Point)
		properties["normal"] = vecToArray(geom.Normal)
		properties["color"] = vecToArray(geom.Color)
		return "plane", properties
	default:
		return "unknown", properties
	}
}

func vecToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// handleInspect casts the primary ray of one raster pixel and reports what it hits.
// x and y are image coordinates, with row 0 at the top.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid scene parameters: %v", err))
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req.Scene, req.Depth)
	if err != nil {
		writeSceneError(w, err)
		return
	}

	// Image rows run top to bottom, camera rows bottom to top
	camera := renderer.NewCamera(sceneObj.Camera(), req.Width, req.Height)
	ray := camera.GetRay(pixelX, req.Height-1-pixelY)

	inspection, isHit := integrator.Inspect(sceneObj, ray)
	if !isHit {
		writeJSON(w, http.StatusOK, InspectResponse{
			Hit:        false,
			ShapeIndex: -1,
			Color:      vecToArray(inspection.Color),
		})
		return
	}

	geometryType, properties := extractGeometryInfo(sceneObj.Shapes()[inspection.ShapeIndex])
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:              true,
		GeometryType:     geometryType,
		ShapeIndex:       inspection.ShapeIndex,
		Point:            vecToArray(inspection.Hit.Point),
		Normal:           vecToArray(inspection.Hit.Normal),
		Distance:         inspection.Hit.Distance,
		Intensity:        inspection.Intensity,
		ReflectionWeight: inspection.ReflectionWeight,
		Color:            vecToArray(inspection.Color),
		Properties:       properties,
	})
}
