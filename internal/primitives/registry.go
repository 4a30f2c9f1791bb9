package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh resolution for curved primitives.
const (
	sphereRings     = 16
	sphereSlices    = 16
	cylinderSlices  = 16
	capsuleSlices   = 12
	capsuleRings    = 6
	planeResolution = 1
)

// cached holds the unit mesh and material for a primitive type. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive types to unit meshes. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache map[Type]cached
}

// NewRegistry returns a registry with no meshes loaded.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[Type]cached)}
}

// genUnitMesh builds a mesh whose extents are 1 on every used axis, centered at the origin
// except the cylinder, whose base sits at Y=0.
func genUnitMesh(t Type) (rl.Mesh, bool) {
	switch t {
	case Cube:
		return rl.GenMeshCube(1, 1, 1), true
	case Sphere:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), true
	case Cylinder:
		return rl.GenMeshCylinder(0.5, 1, cylinderSlices), true
	case Plane:
		return rl.GenMeshPlane(1, 1, planeResolution, planeResolution), true
	}
	return rl.Mesh{}, false
}

func (r *Registry) ensure(t Type) (cached, bool) {
	if c, ok := r.cache[t]; ok {
		return c, true
	}
	mesh, ok := genUnitMesh(t)
	if !ok {
		return cached{}, false
	}
	c := cached{mesh: mesh, mtl: rl.LoadMaterialDefault()}
	r.cache[t] = c
	return c, true
}

// Draw draws one primitive of type t centered at position with full extents size.
// Must be called between BeginMode3D and EndMode3D. Unknown types are skipped.
func (r *Registry) Draw(t Type, position, size rl.Vector3, color rl.Color) {
	if t == Capsule {
		radius := max(size.X, size.Z) * 0.5
		half := max(size.Y*0.5-radius, 0)
		start := rl.NewVector3(position.X, position.Y-half, position.Z)
		end := rl.NewVector3(position.X, position.Y+half, position.Z)
		rl.DrawCapsule(start, end, radius, capsuleSlices, capsuleRings, color)
		return
	}
	c, ok := r.ensure(t)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	rl.DrawMesh(c.mesh, c.mtl, meshTransform(t, position, size))
}

// meshTransform scales the unit mesh to size and moves it to position. Zero extents
// (e.g. a plane's Y) scale by 1 so the mesh never collapses.
func meshTransform(t Type, position, size rl.Vector3) rl.Matrix {
	sx, sy, sz := size.X, size.Y, size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	scaleM := rl.MatrixScale(sx, sy, sz)
	transM := rl.MatrixTranslate(position.X, position.Y, position.Z)
	if t == Cylinder {
		// Order: offset (center mesh), then scale, then translate to position.
		offsetM := rl.MatrixTranslate(0, -0.5, 0)
		return rl.MatrixMultiply(rl.MatrixMultiply(offsetM, scaleM), transM)
	}
	return rl.MatrixMultiply(scaleM, transM)
}

// Unload releases GPU resources. The registry can be reused; meshes are rebuilt on demand.
func (r *Registry) Unload() {
	for t, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, t)
	}
}
