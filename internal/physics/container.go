package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Container is a physics component that can be attached to one scene entity.
// BodyComponent and StaticComponent are the two kinds.
type Container interface {
	Base() *ContainerBase
}

// ContainerBase holds what every container has: a collision shape, a world position,
// and the id of the entity that owns it (0 while unattached).
type ContainerBase struct {
	Collider Collider
	Position rl.Vector3
	owner    uint64
}

func (c *ContainerBase) Base() *ContainerBase {
	return c
}

// Owner returns the owning entity id, or 0 when the container is not attached.
func (c *ContainerBase) Owner() uint64 {
	return c.owner
}

// Attach records the owning entity. It returns false if another entity already owns it.
func (c *ContainerBase) Attach(owner uint64) bool {
	if c.owner != 0 && c.owner != owner {
		return false
	}
	c.owner = owner
	return true
}

// Detach clears the owner so the container may be attached again.
func (c *ContainerBase) Detach() {
	c.owner = 0
}

// WorldBounds returns the collider bounds translated to the container position.
func (c *ContainerBase) WorldBounds() rl.BoundingBox {
	if c.Collider == nil {
		return rl.NewBoundingBox(c.Position, c.Position)
	}
	b := c.Collider.Bounds()
	return rl.NewBoundingBox(rl.Vector3Add(b.Min, c.Position), rl.Vector3Add(b.Max, c.Position))
}

// BodyComponent is a rigid body moved by the world. Kinematic bodies keep their
// velocity but are not pushed by contacts or pulled by gravity.
type BodyComponent struct {
	ContainerBase
	Velocity  rl.Vector3
	Mass      float32
	Gravity   bool
	Kinematic bool
}

// NewBodyComponent returns a dynamic body with mass 1, gravity on, and an empty
// compound collider.
func NewBodyComponent() *BodyComponent {
	return &BodyComponent{
		ContainerBase: ContainerBase{Collider: NewCompoundCollider()},
		Mass:          1,
		Gravity:       true,
	}
}

// StaticComponent never moves. Dynamic bodies are pushed out of it.
type StaticComponent struct {
	ContainerBase
}

// NewStaticComponent returns a static container with the given collider.
func NewStaticComponent(collider Collider) *StaticComponent {
	return &StaticComponent{ContainerBase: ContainerBase{Collider: collider}}
}

// movable reports whether contact resolution may move c. The body is nil for statics.
func movable(c Container) (*BodyComponent, bool) {
	b, ok := c.(*BodyComponent)
	if !ok || b.Kinematic {
		return b, false
	}
	return b, true
}
