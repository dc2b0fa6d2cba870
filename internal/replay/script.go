// internal/replay/script.go
package replay

import (
	"errors"
	"fmt"
	"os"

	"go-city-builder/internal/defs"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadStep         = errors.New("step must have exactly one action")
	ErrUnknownTemplate = errors.New("unknown building type")
)

// Point is a pair of coordinates. Move points are world units, down and up
// points are viewport units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step is one input frame.
type Step struct {
	Enter  bool   `yaml:"enter,omitempty"`
	Cancel bool   `yaml:"cancel,omitempty"`
	Move   *Point `yaml:"move,omitempty"`
	Down   *Point `yaml:"down,omitempty"`
	Up     *Point `yaml:"up,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Enter, s.Cancel, s.Move != nil, s.Down != nil, s.Up != nil} {
		if set {
			n++
		}
	}
	return n
}

// Script is a recorded input session. Templates fixes the building type
// chosen on each enter, in order; later enters pick at random.
type Script struct {
	Templates []string `yaml:"templates"`
	Steps     []Step   `yaml:"steps"`
}

// Parse decodes a YAML script.
func Parse(raw []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replay script: %w", err)
	}
	for i, step := range s.Steps {
		if step.actions() != 1 {
			return nil, fmt.Errorf("step %d: %w", i, ErrBadStep)
		}
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay script: %w", err)
	}
	return Parse(raw)
}

// CheckTemplates reports the first template id that is not in catalog.
func (s *Script) CheckTemplates(catalog defs.Catalog) error {
	for _, id := range s.Templates {
		if catalog.Index(id) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
		}
	}
	return nil
}
