package scene

import (
	"fmt"

	"game-toolkit/internal/logger"
	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// DefaultFixedStep is the physics step used when none is configured (60 Hz).
const DefaultFixedStep = float32(1.0 / 60)

// maxStepsPerUpdate caps catch-up steps after a long frame.
const maxStepsPerUpdate = 8

// Entity is one spawned primitive. Physics is nil for render-only entities;
// otherwise it is the exact container passed in the spawn options.
type Entity struct {
	ID       uint64
	Name     string `copier:"EntityName"`
	Type     primitives.Type
	Position rl.Vector3
	Color    rl.Color
	Size     rl.Vector3
	Physics  physics.Container
}

// WorldPosition returns the body position when a container is attached, else the spawn position.
func (e *Entity) WorldPosition() rl.Vector3 {
	if e.Physics != nil {
		return e.Physics.Base().Position
	}
	return e.Position
}

// Scene holds a 3D camera, the spawned entities, and the physics world that moves them.
// Update advances physics; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	FixedStep   float32

	log         *logger.Logger
	defs        primitives.Defs
	world       *physics.World
	entities    []*Entity
	nextID      uint64
	accumulator float32
	cursorDone  bool
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45°. Grid is visible by default.
// defs may be nil, in which case primitives.DefaultDefs is used. log may be nil.
func New(defs primitives.Defs, log *logger.Logger) *Scene {
	if defs == nil {
		defs = primitives.DefaultDefs()
	}
	s := &Scene{
		GridVisible: true,
		FixedStep:   DefaultFixedStep,
		log:         log,
		defs:        defs,
		world:       physics.NewWorld(),
	}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// World returns the physics world backing the scene.
func (s *Scene) World() *physics.World {
	return s.world
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Create3DPrimitive spawns a primitive of type t. nil opts uses
// primitives.NewOptions3DWithPhysics. The size falls back to the type's default when
// opts.Size is nil. With IncludeCollider set and a non-nil Component, a collider shaped
// after the primitive is added to the component's compound collider (or installed when
// it has none) and the component itself is attached to the entity and the physics world.
func (s *Scene) Create3DPrimitive(t primitives.Type, opts *primitives.Options3DWithPhysics) (*Entity, error) {
	if opts == nil {
		opts = primitives.NewOptions3DWithPhysics()
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if sz := opts.Size; sz != nil && (sz.X < 0 || sz.Y < 0 || sz.Z < 0) {
		return nil, fmt.Errorf("%w: (%g, %g, %g)", ErrNegativeSize, sz.X, sz.Y, sz.Z)
	}
	withPhysics := opts.IncludeCollider && opts.Component != nil
	if withPhysics && opts.Component.Base().Owner() != 0 {
		return nil, fmt.Errorf("%w: entity %d", ErrContainerAttached, opts.Component.Base().Owner())
	}

	e := &Entity{ID: s.nextID + 1, Type: t, Size: s.defs.SizeFor(t, opts.Size)}
	if err := copier.Copy(e, &opts.CreationOptions); err != nil {
		return nil, fmt.Errorf("scene: copy options: %w", err)
	}
	e.Color = s.defs.ColorFor(t, e.Color)
	if e.Name == "" {
		e.Name = fmt.Sprintf("%s-%d", t, e.ID)
	}

	if withPhysics {
		base := opts.Component.Base()
		shape := ColliderFor(t, e.Size)
		switch c := base.Collider.(type) {
		case *physics.CompoundCollider:
			c.Add(shape)
		case nil:
			base.Collider = shape
		}
		base.Attach(e.ID)
		base.Position = opts.Position
		e.Physics = opts.Component
		s.world.Add(opts.Component)
	}

	s.nextID = e.ID
	s.entities = append(s.entities, e)
	s.log.Logf("spawn %s %q at (%g, %g, %g) size (%g, %g, %g) physics=%t",
		t, e.Name, e.Position.X, e.Position.Y, e.Position.Z, e.Size.X, e.Size.Y, e.Size.Z, withPhysics)
	return e, nil
}

// Entity returns the entity with the given id.
func (s *Scene) Entity(id uint64) (*Entity, bool) {
	for _, e := range s.entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Entities returns the entities in spawn order.
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Bodies returns the number of physics containers in the world.
func (s *Scene) Bodies() int {
	return s.world.Len()
}

// Remove deletes an entity, takes its container out of the physics world and detaches it
// so it can be reused in another spawn.
func (s *Scene) Remove(id uint64) error {
	for i, e := range s.entities {
		if e.ID != id {
			continue
		}
		if e.Physics != nil {
			s.world.Remove(e.Physics)
			e.Physics.Base().Detach()
		}
		s.entities = append(s.entities[:i], s.entities[i+1:]...)
		s.log.Logf("remove %q", e.Name)
		return nil
	}
	return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
}

// Clear removes every entity.
func (s *Scene) Clear() {
	for len(s.entities) > 0 {
		_ = s.Remove(s.entities[0].ID)
	}
}

// Update advances physics by frameTime seconds in fixed steps. Leftover time carries
// into the next call; at most maxStepsPerUpdate steps run per call.
func (s *Scene) Update(frameTime float32) {
	step := s.FixedStep
	if step <= 0 {
		step = DefaultFixedStep
	}
	s.accumulator += frameTime
	for n := 0; s.accumulator >= step; n++ {
		if n == maxStepsPerUpdate {
			s.accumulator = 0
			break
		}
		s.world.Step(step)
		s.accumulator -= step
	}
}

// UpdateCamera runs once per frame. Uses raylib UpdateCamera with CameraFree so the user can
// move the camera with mouse and keyboard. Cursor is disabled so the mouse is captured.
func (s *Scene) UpdateCamera() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the 3D scene: the grid when GridVisible is true, then every entity.
func (s *Scene) Draw(reg *primitives.Registry) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, e := range s.entities {
		reg.Draw(e.Type, e.WorldPosition(), e.Size, e.Color)
	}
	rl.EndMode3D()
}
