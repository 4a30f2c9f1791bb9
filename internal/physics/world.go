package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World holds a set of containers and runs a simple 3D physics step: gravity, integration, AABB collision.
type World struct {
	Gravity    rl.Vector3
	containers []Container
}

// NewWorld returns a new physics world with default gravity (0, -9.8, 0). The scene is Y-up.
func NewWorld() *World {
	return &World{Gravity: rl.NewVector3(0, -9.8, 0)}
}

// SetGravity sets the gravity vector (e.g. (0, -9.8, 0) for down in -Y).
func (w *World) SetGravity(g rl.Vector3) {
	w.Gravity = g
}

// Add appends a container. Order is preserved; adding the same container twice is a no-op.
func (w *World) Add(c Container) {
	if c == nil || w.index(c) >= 0 {
		return
	}
	w.containers = append(w.containers, c)
}

// Remove drops c from the world. It returns false if c was not present.
func (w *World) Remove(c Container) bool {
	i := w.index(c)
	if i < 0 {
		return false
	}
	w.containers = append(w.containers[:i], w.containers[i+1:]...)
	return true
}

// Len returns the number of containers in the world.
func (w *World) Len() int {
	return len(w.containers)
}

// Containers returns a copy of the containers in insertion order.
func (w *World) Containers() []Container {
	out := make([]Container, len(w.containers))
	copy(out, w.containers)
	return out
}

func (w *World) index(c Container) int {
	for i, have := range w.containers {
		if have == c {
			return i
		}
	}
	return -1
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth, axis = overlapX, 0
	if overlapY < depth {
		depth, axis = overlapY, 1
	}
	if overlapZ < depth {
		depth, axis = overlapZ, 2
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then AABB collisions.
// There is no global floor; dynamic bodies fall until they hit another container.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	for _, c := range w.containers {
		b, ok := c.(*BodyComponent)
		if !ok {
			continue
		}
		if b.Gravity && !b.Kinematic {
			b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
		}
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	}

	for i := 0; i < len(w.containers); i++ {
		ci := w.containers[i]
		if !hasExtent(ci.Base().Collider) {
			continue
		}
		for j := i + 1; j < len(w.containers); j++ {
			cj := w.containers[j]
			if !hasExtent(cj.Base().Collider) {
				continue
			}
			boxI, boxJ := ci.Base().WorldBounds(), cj.Base().WorldBounds()
			if !rl.CheckCollisionBoxes(boxI, boxJ) {
				continue
			}
			depth, axis := penetrationAxis(boxI, boxJ)
			if axis < 0 {
				continue
			}
			resolve(ci, cj, depth, axis, axisCenter(boxI, axis) <= axisCenter(boxJ, axis))
		}
	}
}

// resolve pushes i and j apart along axis. iFirst is true when i lies on the negative side of j.
// Movable mass shares the correction; a pair of immovable containers is left overlapping.
func resolve(ci, cj Container, depth float32, axis int, iFirst bool) {
	bi, moveI := movable(ci)
	bj, moveJ := movable(cj)
	if !moveI && !moveJ {
		return
	}
	var shareI, shareJ float32
	switch {
	case moveI && moveJ:
		total := bi.Mass + bj.Mass
		shareI, shareJ = bj.Mass/total, bi.Mass/total
	case moveI:
		shareI = 1
	default:
		shareJ = 1
	}
	sign := float32(1)
	if iFirst {
		sign = -1
	}
	if moveI {
		bi.Position = addAxis(bi.Position, axis, sign*depth*shareI)
		bi.Velocity = setAxis(bi.Velocity, axis, 0)
	}
	if moveJ {
		bj.Position = addAxis(bj.Position, axis, -sign*depth*shareJ)
		bj.Velocity = setAxis(bj.Velocity, axis, 0)
	}
}

func axisCenter(b rl.BoundingBox, axis int) float32 {
	switch axis {
	case 0:
		return (b.Min.X + b.Max.X) * 0.5
	case 1:
		return (b.Min.Y + b.Max.Y) * 0.5
	default:
		return (b.Min.Z + b.Max.Z) * 0.5
	}
}

func addAxis(v rl.Vector3, axis int, d float32) rl.Vector3 {
	switch axis {
	case 0:
		v.X += d
	case 1:
		v.Y += d
	default:
		v.Z += d
	}
	return v
}

func setAxis(v rl.Vector3, axis int, x float32) rl.Vector3 {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		v.Z = x
	}
	return v
}
