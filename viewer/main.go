package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/df07/go-mirror-raytracer/pkg/output"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// frame is one rendered scene ready for display
type frame struct {
	texture rl.Texture2D
	stats   renderer.RenderStats
	depth   int
}

func main() {
	sceneName := flag.String("scene", "default", "Scene: built-in name or YAML file")
	width := flag.Int("width", 200, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (default: same as width)")
	scale := flag.Int("scale", 3, "Window pixels per traced pixel")
	flag.Parse()

	if *height == 0 {
		*height = *width
	}
	if *scale < 1 {
		*scale = 1
	}

	base, err := scene.Load(*sceneName)
	if err != nil {
		log.Printf("Error loading scene: %v", err)
		os.Exit(1)
	}

	rl.InitWindow(int32(*width**scale), int32(*height**scale), "Mirror Raytracer - "+*sceneName)
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	current, err := renderFrame(base, base.Depth(), *width, *height, *scale)
	if err != nil {
		log.Printf("Error rendering: %v", err)
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		// Up/Down change the reflection depth and re-render
		depth := current.depth
		if rl.IsKeyPressed(rl.KeyUp) {
			depth++
		}
		if rl.IsKeyPressed(rl.KeyDown) && depth > 1 {
			depth--
		}
		if depth != current.depth {
			next, err := renderFrame(base, depth, *width, *height, *scale)
			if err != nil {
				log.Printf("Error rendering: %v", err)
			} else {
				rl.UnloadTexture(current.texture)
				current = next
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexture(current.texture, 0, 0, rl.White)
		rl.DrawText(fmt.Sprintf("depth %d  %v  (up/down)", current.depth, current.stats.Duration), 8, 8, 16, rl.LightGray)
		rl.EndDrawing()
	}

	rl.UnloadTexture(current.texture)
}

// renderFrame traces base at the given depth and uploads the upscaled image as a texture
func renderFrame(base *scene.Scene, depth, width, height, scale int) (frame, error) {
	cfg := base.Config()
	cfg.Depth = &depth
	s, err := scene.NewScene(cfg)
	if err != nil {
		return frame{}, err
	}

	raytracer, err := renderer.NewRaytracer(s, width, height)
	if err != nil {
		return frame{}, err
	}
	raytracer.SetLogger(renderer.NewDefaultLogger())

	img, stats := raytracer.RenderImage()
	var display image.Image = img
	if scale > 1 {
		display = output.Upscale(img, scale)
	}

	rlImage := rl.NewImageFromImage(display)
	texture := rl.LoadTextureFromImage(rlImage)
	rl.UnloadImage(rlImage)

	return frame{texture: texture, stats: stats, depth: depth}, nil
}
