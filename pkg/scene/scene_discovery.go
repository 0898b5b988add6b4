package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Name passed to Load
	Name        string `json:"name"`               // Display name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "yaml"
	FilePath    string `json:"filePath,omitempty"` // Path to the YAML file (yaml type only)
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Single red sphere lit from the upper right",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			Name:        "Mirrors",
			Description: "Three reflective spheres on a gray floor",
		},
		build: NewMirrorsScene,
	},
	{
		info: SceneInfo{
			ID:          "spheregrid",
			Name:        "Sphere Grid",
			Description: "5x5 grid of rainbow-colored spheres",
		},
		build: NewSphereGridScene,
	},
}

// FindScenesDir returns the first existing scenes directory, or "" if there is none
func FindScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// Load resolves a scene by built-in name, YAML file path, or the name of a YAML file in the scenes directory
func Load(name string) (*Scene, error) {
	return LoadFrom(name, FindScenesDir())
}

// LoadFrom is Load with an explicit scenes directory
func LoadFrom(name, scenesDir string) (*Scene, error) {
	if isYAMLPath(name) {
		return LoadFile(name)
	}

	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.build()
		}
	}

	if scenesDir != "" && name != "" {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(scenesDir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return LoadFile(path)
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// ListScenes returns the built-in scenes followed by the YAML scenes in scenesDir, sorted by name
func ListScenes(scenesDir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Type = "builtin"
		scenes = append(scenes, info)
	}

	if scenesDir == "" {
		return scenes, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(scenesDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	var fileScenes []SceneInfo
	for _, path := range files {
		info, err := ParseSceneMetadata(path)
		if err != nil {
			return nil, err
		}
		fileScenes = append(fileScenes, info)
	}

	sort.Slice(fileScenes, func(i, j int) bool {
		return fileScenes[i].Name < fileScenes[j].Name
	})

	return append(scenes, fileScenes...), nil
}

// ParseSceneMetadata extracts metadata from the header comments of a YAML scene file:
//
//	# Name: Mirror Hall
//	# Description: Two rows of spheres
func ParseSceneMetadata(path string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:       base,
		Name:     titleCase(base),
		Type:     "yaml",
		FilePath: path,
	}

	file, err := os.Open(path)
	if err != nil {
		return info, fmt.Errorf("read scene metadata: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if name, ok := strings.CutPrefix(content, "Name:"); ok {
			info.Name = strings.TrimSpace(name)
		} else if desc, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(desc)
		}
	}

	return info, scanner.Err()
}

func isYAMLPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-hall" -> "Mirror Hall"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
