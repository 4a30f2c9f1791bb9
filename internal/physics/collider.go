package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a collision shape in body-local space. Bounds is the local AABB;
// the world treats every shape by its bounds when resolving contacts.
type Collider interface {
	Bounds() rl.BoundingBox
}

// BoxCollider is an axis-aligned box of the given full size, centered at Offset.
type BoxCollider struct {
	Size   rl.Vector3
	Offset rl.Vector3
}

// NewBoxCollider returns a box collider centered on the body.
func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) Bounds() rl.BoundingBox {
	half := rl.Vector3Scale(b.Size, 0.5)
	return rl.NewBoundingBox(rl.Vector3Subtract(b.Offset, half), rl.Vector3Add(b.Offset, half))
}

// SphereCollider is a sphere of Radius centered at Offset.
type SphereCollider struct {
	Radius float32
	Offset rl.Vector3
}

// NewSphereCollider returns a sphere collider centered on the body.
func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) Bounds() rl.BoundingBox {
	r := rl.NewVector3(s.Radius, s.Radius, s.Radius)
	return rl.NewBoundingBox(rl.Vector3Subtract(s.Offset, r), rl.Vector3Add(s.Offset, r))
}

// CylinderCollider is a Y-aligned cylinder; Length is the full height.
type CylinderCollider struct {
	Radius float32
	Length float32
	Offset rl.Vector3
}

// NewCylinderCollider returns a cylinder collider centered on the body.
func NewCylinderCollider(radius, length float32) *CylinderCollider {
	return &CylinderCollider{Radius: radius, Length: length}
}

func (c *CylinderCollider) Bounds() rl.BoundingBox {
	ext := rl.NewVector3(c.Radius, c.Length*0.5, c.Radius)
	return rl.NewBoundingBox(rl.Vector3Subtract(c.Offset, ext), rl.Vector3Add(c.Offset, ext))
}

// CapsuleCollider is a Y-aligned capsule. Length is the distance between the two
// hemisphere centers, so the total height is Length + 2*Radius.
type CapsuleCollider struct {
	Radius float32
	Length float32
	Offset rl.Vector3
}

// NewCapsuleCollider returns a capsule collider centered on the body.
func NewCapsuleCollider(radius, length float32) *CapsuleCollider {
	return &CapsuleCollider{Radius: radius, Length: length}
}

func (c *CapsuleCollider) Bounds() rl.BoundingBox {
	ext := rl.NewVector3(c.Radius, c.Length*0.5+c.Radius, c.Radius)
	return rl.NewBoundingBox(rl.Vector3Subtract(c.Offset, ext), rl.Vector3Add(c.Offset, ext))
}

// CompoundCollider groups zero or more child shapes. Children are populated after
// construction, usually by the code that spawns the owning entity.
type CompoundCollider struct {
	Colliders []Collider
}

// NewCompoundCollider returns an empty compound collider.
func NewCompoundCollider() *CompoundCollider {
	return &CompoundCollider{}
}

// Add appends child shapes. Nil children are ignored.
func (c *CompoundCollider) Add(children ...Collider) {
	for _, ch := range children {
		if ch != nil {
			c.Colliders = append(c.Colliders, ch)
		}
	}
}

// Len returns the number of child shapes.
func (c *CompoundCollider) Len() int {
	return len(c.Colliders)
}

// Bounds returns the union of the children's bounds. An empty compound has
// zero-volume bounds at the origin.
func (c *CompoundCollider) Bounds() rl.BoundingBox {
	if len(c.Colliders) == 0 {
		return rl.BoundingBox{}
	}
	out := c.Colliders[0].Bounds()
	for _, ch := range c.Colliders[1:] {
		b := ch.Bounds()
		out.Min = rl.NewVector3(math32.Min(out.Min.X, b.Min.X), math32.Min(out.Min.Y, b.Min.Y), math32.Min(out.Min.Z, b.Min.Z))
		out.Max = rl.NewVector3(math32.Max(out.Max.X, b.Max.X), math32.Max(out.Max.Y, b.Max.Y), math32.Max(out.Max.Z, b.Max.Z))
	}
	return out
}

// hasExtent reports whether a collider occupies any volume. Bodies without extent
// are integrated but never take part in contact resolution.
func hasExtent(c Collider) bool {
	if c == nil {
		return false
	}
	b := c.Bounds()
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y && b.Max.Z > b.Min.Z
}
