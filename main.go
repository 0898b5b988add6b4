package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/output"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scenes   []string
	Width    int
	Height   int
	Depth    int // 0 keeps each scene's own depth
	Out      string
	Scale    int
	Workers  int
	Annotate bool // Draw scene, depth and render time onto saved frames
}

func main() {
	// Parse command line flags
	sceneFlag := flag.String("scene", "default", "Scene: built-in name, YAML file, or comma-separated list")
	width := flag.Int("width", 200, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (default: same as width)")
	depth := flag.Int("depth", 0, "Override the scene's reflection depth (0 keeps it)")
	out := flag.String("out", "", "Output file; the extension selects png, jpg, gif, tif or bmp")
	scale := flag.Int("scale", 1, "Upscale the saved image by this integer factor")
	workers := flag.Int("workers", 0, "Frames rendered in parallel for a scene list (0 = auto-detect)")
	annotate := flag.Bool("annotate", false, "Draw scene name, depth and render time onto the saved image")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config := Config{
		Scenes:   parseSceneList(*sceneFlag),
		Width:    *width,
		Height:   *height,
		Depth:    *depth,
		Out:      *out,
		Scale:    *scale,
		Workers:  *workers,
		Annotate: *annotate,
	}
	if config.Height == 0 {
		config.Height = config.Width
	}

	if err := run(context.Background(), config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Mirror Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Run with -list to see the available scenes.")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

func listScenes() error {
	scenes, err := scene.ListScenes(scene.FindScenesDir())
	if err != nil {
		return err
	}
	fmt.Println("Available scenes:")
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Printf("  %-14s %s - %s\n", info.ID, info.Name, info.Description)
		} else {
			fmt.Printf("  %-14s %s\n", info.ID, info.Name)
		}
	}
	return nil
}

// run renders every requested scene. A single scene is traced directly;
// a list is rendered as a batch across the worker pool.
func run(ctx context.Context, config Config) error {
	if len(config.Scenes) == 0 {
		return fmt.Errorf("no scene given")
	}
	if config.Out != "" && len(config.Scenes) > 1 {
		return fmt.Errorf("-out needs a single scene, got %d", len(config.Scenes))
	}
	if config.Out != "" {
		if _, err := output.FormatFromPath(config.Out); err != nil {
			return err
		}
	}

	tasks := make([]renderer.FrameTask, 0, len(config.Scenes))
	for _, name := range config.Scenes {
		s, err := createScene(name, config.Depth)
		if err != nil {
			return err
		}
		tasks = append(tasks, renderer.FrameTask{
			Name:   name,
			Scene:  s,
			Width:  config.Width,
			Height: config.Height,
		})
	}

	logger := renderer.NewDefaultLogger()
	timestamp := time.Now()

	if len(tasks) == 1 {
		task := tasks[0]
		raytracer, err := renderer.NewRaytracer(task.Scene, task.Width, task.Height)
		if err != nil {
			return err
		}
		raytracer.SetLogger(logger)

		var img image.Image
		var stats renderer.RenderStats
		if config.Annotate {
			canvas := output.NewCanvasSink(task.Width, task.Height)
			stats = raytracer.Render(canvas)
			img = canvas.Image()
		} else {
			img, stats = raytracer.RenderImage()
		}

		path := config.Out
		if path == "" {
			path = createOutputPath(task.Name, timestamp)
		}
		return saveFrame(img, stats, frameLabel(task), path, config)
	}

	fmt.Printf("Rendering %d scenes...\n", len(tasks))
	results, err := renderer.RenderBatch(ctx, tasks, config.Workers, logger)
	if err != nil {
		return err
	}

	var errs []error
	for _, result := range results {
		if result.Error != nil {
			errs = append(errs, result.Error)
			continue
		}
		label := frameLabel(tasks[result.TaskID])
		if err := saveFrame(result.Image, result.Stats, label, createOutputPath(result.Name, timestamp), config); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// createScene resolves a scene name and applies the depth override
func createScene(name string, depth int) (*scene.Scene, error) {
	s, err := scene.Load(name)
	if err != nil {
		return nil, err
	}
	if depth == 0 {
		return s, nil
	}

	cfg := s.Config()
	cfg.Depth = &depth
	return scene.NewScene(cfg)
}

func saveFrame(img image.Image, stats renderer.RenderStats, label, path string, config Config) error {
	if config.Scale > 1 {
		img = output.Upscale(img, config.Scale)
	}

	var err error
	if config.Annotate {
		canvas := output.NewCanvasSinkFromImage(img)
		canvas.Annotate(label, stats.Duration.Round(time.Millisecond).String())
		err = canvas.Save(path)
	} else {
		err = output.Save(img, path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v (average luminance %.3f)\n", stats.Duration, stats.AverageLuminance)
	fmt.Printf("Render saved as %s\n", path)
	return nil
}

// frameLabel names a frame as "<scene> depth <n>"
func frameLabel(task renderer.FrameTask) string {
	return fmt.Sprintf("%s depth %d", sceneID(task.Name), task.Scene.Depth())
}

// parseSceneList splits a comma-separated scene flag, dropping empty entries
func parseSceneList(value string) []string {
	var scenes []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			scenes = append(scenes, name)
		}
	}
	return scenes
}

// sceneID returns the directory name used for a scene's renders:
// YAML paths use their base name without extension
func sceneID(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return name
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(name string, timestamp time.Time) string {
	filename := fmt.Sprintf("render_%s.png", timestamp.Format("20060102_150405"))
	return filepath.Join("output", sceneID(name), filename)
}
