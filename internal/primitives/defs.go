package primitives

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefsFilePath is the default location of primitive definitions, relative to the working directory.
const DefsFilePath = "assets/primitives.yaml"

// Def is the YAML definition for a primitive's default size and colour.
// Color is "#rrggbb" or "#rrggbbaa"; empty keeps the built-in grey.
type Def struct {
	Type  Type       `yaml:"type"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// defsFile is the on-disk layout: a list under "primitives".
type defsFile struct {
	Primitives []Def `yaml:"primitives"`
}

// Defs maps each type to its default definition.
type Defs map[Type]Def

// defaultPrimitiveColor is the albedo tint for primitives without a colour override.
var defaultPrimitiveColor = rl.NewColor(128, 128, 128, 255)

// DefaultDefs returns the built-in defaults. Sizes are full extents: a sphere of
// size 1 has radius 0.5; a capsule's Y size is its total height.
func DefaultDefs() Defs {
	return Defs{
		Cube:     {Type: Cube, Size: [3]float32{1, 1, 1}},
		Sphere:   {Type: Sphere, Size: [3]float32{1, 1, 1}},
		Cylinder: {Type: Cylinder, Size: [3]float32{1, 1, 1}},
		Capsule:  {Type: Capsule, Size: [3]float32{0.7, 1.35, 0.7}},
		Plane:    {Type: Plane, Size: [3]float32{10, 0, 10}},
	}
}

// LoadDefs reads primitive definitions from path and merges them over DefaultDefs.
// A missing file is not an error. Entries with an unknown type or a negative size are rejected.
func LoadDefs(path string) (Defs, error) {
	defs := DefaultDefs()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defs, nil
		}
		return defs, fmt.Errorf("primitives: %w", err)
	}
	return defs, defs.parse(data)
}

func (d Defs) parse(data []byte) error {
	var f defsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("primitives: %w", err)
	}
	for i, def := range f.Primitives {
		t, err := ParseType(string(def.Type))
		if err != nil {
			return fmt.Errorf("primitives: entry %d: %w", i, err)
		}
		def.Type = t
		if def.Size[0] < 0 || def.Size[1] < 0 || def.Size[2] < 0 {
			return fmt.Errorf("primitives: entry %d (%s): negative size", i, t)
		}
		if def.Size == ([3]float32{}) {
			def.Size = d[t].Size
		}
		if def.Color != "" {
			if _, err := parseHexColor(def.Color); err != nil {
				return fmt.Errorf("primitives: entry %d (%s): %w", i, t, err)
			}
		}
		d[t] = def
	}
	return nil
}

// SizeFor returns *size when set, otherwise the default size for t.
func (d Defs) SizeFor(t Type, size *rl.Vector3) rl.Vector3 {
	if size != nil {
		return *size
	}
	s := d[t].Size
	return rl.NewVector3(s[0], s[1], s[2])
}

// ColorFor returns c unless it is the zero colour, in which case the type's colour is used.
func (d Defs) ColorFor(t Type, c rl.Color) rl.Color {
	if c != (rl.Color{}) {
		return c
	}
	if col, err := parseHexColor(d[t].Color); err == nil {
		return col
	}
	return defaultPrimitiveColor
}

func parseHexColor(s string) (rl.Color, error) {
	var r, g, b uint8
	a := uint8(255)
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %q", s)
	}
	return rl.NewColor(r, g, b, a), nil
}
