// Package level loads card layouts from YAML
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/parameter"
)

// ErrInvalidPlacement is returned for a card entry that cannot be placed
var ErrInvalidPlacement = errors.New("invalid placement")

//go:embed levels/level1.yaml
var defaultLevel []byte

// Level is a parsed layout ready for Session.InitLevel
// Placements and roots are already converted out of design space
type Level struct {
	Name      string
	Roots     Roots
	Playfield []core.Placement
	Stack     []core.Placement
}

// Roots are the zone origins of a level
type Roots struct {
	Playfield core.Point
	Stack     core.Point
}

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type placement struct {
	Face int     `yaml:"face"`
	Suit int     `yaml:"suit"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type file struct {
	Name  string `yaml:"name"`
	Roots struct {
		Playfield point `yaml:"playfield"`
		Stack     point `yaml:"stack"`
	} `yaml:"roots"`
	Playfield []placement `yaml:"playfield"`
	Stack     []placement `yaml:"stack"`
}

// FromDesign converts a design-space position to scene space,
// centered on the design surface
func FromDesign(x, y float64) core.Point {
	return core.Point{
		X: x - parameter.DesignWidth/2,
		Y: y - parameter.DesignHeight/2,
	}
}

// Parse decodes a level document
// Faces beyond King are kept, they never match; log receives a warning for each
func Parse(data []byte, log *zap.Logger) (Level, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Level{}, fmt.Errorf("decode level: %w", err)
	}

	lv := Level{
		Name: f.Name,
		Roots: Roots{
			Playfield: core.Point{X: f.Roots.Playfield.X, Y: f.Roots.Playfield.Y},
			Stack:     core.Point{X: f.Roots.Stack.X, Y: f.Roots.Stack.Y},
		},
	}

	var err error
	if lv.Playfield, err = convert("playfield", f.Playfield, log); err != nil {
		return Level{}, err
	}
	if lv.Stack, err = convert("stack", f.Stack, log); err != nil {
		return Level{}, err
	}
	return lv, nil
}

func convert(zone string, entries []placement, log *zap.Logger) ([]core.Placement, error) {
	out := make([]core.Placement, 0, len(entries))
	for i, e := range entries {
		if e.Face < 0 {
			return nil, fmt.Errorf("%s[%d]: face %d: %w", zone, i, e.Face, ErrInvalidPlacement)
		}
		if e.Suit < 0 || e.Suit >= parameter.SuitCount {
			return nil, fmt.Errorf("%s[%d]: suit %d: %w", zone, i, e.Suit, ErrInvalidPlacement)
		}
		if e.Face >= parameter.FaceCount {
			log.Warn("face outside deck range", zap.String("zone", zone), zap.Int("index", i), zap.Int("face", e.Face))
		}
		out = append(out, core.Placement{
			Face: e.Face,
			Suit: e.Suit,
			Pos:  FromDesign(e.X, e.Y),
		})
	}
	return out, nil
}

// Load reads and parses a level file
func Load(path string, log *zap.Logger) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("read level %s: %w", path, err)
	}
	lv, err := Parse(data, log)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}
	return lv, nil
}

// Default returns the built-in first level
func Default(log *zap.Logger) (Level, error) {
	return Parse(defaultLevel, log)
}
