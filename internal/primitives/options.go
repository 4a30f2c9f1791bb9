package primitives

import (
	"game-toolkit/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CreationOptions is the common set of parameters for spawning any primitive.
// The zero Color means "use the type's default colour".
type CreationOptions struct {
	EntityName      string
	Position        rl.Vector3
	Color           rl.Color
	IncludeCollider bool
}

// Options3DWithPhysics describes a 3D primitive with an attached physics container.
// Size nil means the type's default dimensions. Component is attached to the
// spawned entity as-is and is owned by it afterwards.
type Options3DWithPhysics struct {
	CreationOptions
	Size      *rl.Vector3
	Component physics.Container
}

// NewOptions3DWithPhysics returns options with no size override, colliders enabled,
// and a fresh dynamic body whose collider is an empty compound collider.
func NewOptions3DWithPhysics() *Options3DWithPhysics {
	return &Options3DWithPhysics{
		CreationOptions: CreationOptions{IncludeCollider: true},
		Component:       physics.NewBodyComponent(),
	}
}

// WithSize sets an explicit size and returns o.
func (o *Options3DWithPhysics) WithSize(x, y, z float32) *Options3DWithPhysics {
	s := rl.NewVector3(x, y, z)
	o.Size = &s
	return o
}

// WithComponent replaces the physics container and returns o.
func (o *Options3DWithPhysics) WithComponent(c physics.Container) *Options3DWithPhysics {
	o.Component = c
	return o
}

// WithPosition sets the spawn position and returns o.
func (o *Options3DWithPhysics) WithPosition(x, y, z float32) *Options3DWithPhysics {
	o.Position = rl.NewVector3(x, y, z)
	return o
}
