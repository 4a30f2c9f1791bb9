package primitives

import (
	"fmt"
	"strings"
)

// Type names a procedurally generated shape.
type Type string

const (
	Cube     Type = "cube"
	Sphere   Type = "sphere"
	Cylinder Type = "cylinder"
	Capsule  Type = "capsule"
	Plane    Type = "plane"
)

var allTypes = []Type{Cube, Sphere, Cylinder, Capsule, Plane}

// Types returns every supported primitive type in a stable order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseType maps a case-insensitive name (e.g. "Cube", "box") to a Type.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "box" {
		n = string(Cube)
	}
	for _, t := range allTypes {
		if string(t) == n {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown primitive type %q", name)
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	for _, have := range allTypes {
		if have == t {
			return true
		}
	}
	return false
}
