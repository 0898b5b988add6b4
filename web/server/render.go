package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/output"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string        // Scene name or YAML file in the scenes directory
	Width  int           // Image width
	Height int           // Image height
	Depth  int           // Reflection depth override, 0 keeps the scene's
	Format output.Format // Response encoding
}

// handleRender renders one frame and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), s.console)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		logger.Errorf("Invalid request: %v\n", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene, req.Depth)
	if err != nil {
		logger.Errorf("Scene %q: %v\n", req.Scene, err)
		writeSceneError(w, err)
		return
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	if err != nil {
		logger.Errorf("%v\n", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	raytracer.SetLogger(logger)

	img, stats := raytracer.RenderImage()

	var buf bytes.Buffer
	if err := output.Encode(&buf, img, req.Format); err != nil {
		logger.Errorf("Encoding %s frame failed: %v\n", output.ContentType(req.Format), err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", output.ContentType(req.Format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing render response: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 200, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", req.Width, 1, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 0, 50); err != nil {
		return nil, err
	}

	req.Format = output.PNG
	if format := query.Get("format"); format != "" {
		if req.Format, err = output.FormatFromExtension(format); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves a listed scene by ID and applies the depth override.
// File paths are not accepted from requests.
func (s *Server) createScene(name string, depth int) (*scene.Scene, error) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(scenes, func(info scene.SceneInfo) bool { return info.ID == name })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
	}

	sceneObj, err := scene.LoadFrom(scenes[idx].ID, s.scenesDir)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return sceneObj, nil
	}

	cfg := sceneObj.Config()
	cfg.Depth = &depth
	return scene.NewScene(cfg)
}

func writeSceneError(w http.ResponseWriter, err error) {
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
