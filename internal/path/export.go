package path

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
)

// Document is the serialized form of a precomputed path, consumed by export
// workers out of process.
type Document struct {
	Version string                     `yaml:"version"`
	FPS     int                        `yaml:"fps"`
	Frames  []timeline.CameraPathFrame `yaml:"frames"`
}

// WritePath writes a precomputed path to a YAML file.
func WritePath(frames []timeline.CameraPathFrame, fps int, outPath string) error {
	doc := Document{Version: "1.0", FPS: fps, Frames: frames}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}

// ReadPath loads a path document. Block references are not rehydrated;
// consumers resolve BlockID against their own copy of the project.
func ReadPath(inPath string) (*Document, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing path %s: %w", inPath, err)
	}
	return &doc, nil
}
