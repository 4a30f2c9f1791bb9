package scene

import (
	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// planeThickness is the height of the box standing in for a plane. The box hangs
// below the plane so its top face is the visible surface.
const planeThickness = 0.1

// ColliderFor returns a collision shape matching a primitive of type t with full extents size.
// Round shapes take their radius from the largest horizontal extent (the sphere from all three).
func ColliderFor(t primitives.Type, size rl.Vector3) physics.Collider {
	switch t {
	case primitives.Cube:
		return physics.NewBoxCollider(size)
	case primitives.Sphere:
		return physics.NewSphereCollider(math32.Max(size.X, math32.Max(size.Y, size.Z)) * 0.5)
	case primitives.Cylinder:
		return physics.NewCylinderCollider(math32.Max(size.X, size.Z)*0.5, size.Y)
	case primitives.Capsule:
		r := math32.Max(size.X, size.Z) * 0.5
		return physics.NewCapsuleCollider(r, math32.Max(size.Y-2*r, 0))
	case primitives.Plane:
		return &physics.BoxCollider{
			Size:   rl.NewVector3(size.X, planeThickness, size.Z),
			Offset: rl.NewVector3(0, -planeThickness*0.5, 0),
		}
	}
	return nil
}
