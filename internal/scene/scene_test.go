package scene

import (
	"errors"
	"strings"
	"testing"

	"game-toolkit/internal/logger"
	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCreateWithDefaults(t *testing.T) {
	s := New(nil, nil)
	e, err := s.Create3DPrimitive(primitives.Cube, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Size != rl.NewVector3(1, 1, 1) {
		t.Fatalf("expected default cube size, got %v", e.Size)
	}
	body, ok := e.Physics.(*physics.BodyComponent)
	if !ok {
		t.Fatalf("expected default body, got %T", e.Physics)
	}
	cc := body.Collider.(*physics.CompoundCollider)
	if cc.Len() != 1 {
		t.Fatalf("expected one child collider, got %d", cc.Len())
	}
	if _, ok := cc.Colliders[0].(*physics.BoxCollider); !ok {
		t.Fatalf("expected box child, got %T", cc.Colliders[0])
	}
	if body.Owner() != e.ID || s.World().Len() != 1 {
		t.Fatalf("body not attached: owner %d, world %d", body.Owner(), s.World().Len())
	}
	if e.Name != "cube-1" {
		t.Fatalf("unexpected default name %q", e.Name)
	}
}

func TestCreateKeepsExplicitSize(t *testing.T) {
	s := New(nil, nil)
	opts := primitives.NewOptions3DWithPhysics().WithSize(0.3, 2.5, 7)
	e, err := s.Create3DPrimitive(primitives.Sphere, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Size != rl.NewVector3(0.3, 2.5, 7) {
		t.Fatalf("size changed: %v", e.Size)
	}
	sphere := e.Physics.Base().Collider.(*physics.CompoundCollider).Colliders[0].(*physics.SphereCollider)
	if sphere.Radius != 3.5 {
		t.Fatalf("sphere radius %v, want 3.5", sphere.Radius)
	}
}

func TestCreateUsesSuppliedComponent(t *testing.T) {
	s := New(nil, nil)
	custom := physics.NewBodyComponent()
	custom.Mass = 5
	opts := primitives.NewOptions3DWithPhysics().WithComponent(custom).WithPosition(1, 2, 3)
	opts.EntityName = "crate"
	opts.Color = rl.NewColor(10, 20, 30, 255)

	e, err := s.Create3DPrimitive(primitives.Cube, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Physics != physics.Container(custom) {
		t.Fatalf("supplied component was not used as-is")
	}
	if got := s.World().Containers()[0]; got != physics.Container(custom) {
		t.Fatalf("world holds a different container")
	}
	if e.Name != "crate" || e.Color != rl.NewColor(10, 20, 30, 255) {
		t.Fatalf("base options not copied: %+v", e)
	}
	if e.WorldPosition() != rl.NewVector3(1, 2, 3) || e.Position != rl.NewVector3(1, 2, 3) {
		t.Fatalf("position not applied: %v", e.WorldPosition())
	}
}

func TestCreateInstallsShapeWhenColliderNil(t *testing.T) {
	s := New(nil, nil)
	st := physics.NewStaticComponent(nil)
	opts := primitives.NewOptions3DWithPhysics().WithComponent(st)
	if _, err := s.Create3DPrimitive(primitives.Plane, opts); err != nil {
		t.Fatalf("create: %v", err)
	}
	box, ok := st.Collider.(*physics.BoxCollider)
	if !ok {
		t.Fatalf("expected box for plane, got %T", st.Collider)
	}
	if box.Size != rl.NewVector3(10, planeThickness, 10) {
		t.Fatalf("unexpected plane box %v", box.Size)
	}
	if b := box.Bounds(); b.Max.Y != 0 {
		t.Fatalf("plane surface should be at y=0, got %v", b.Max.Y)
	}
}

func TestCreateLeavesCustomCollider(t *testing.T) {
	s := New(nil, nil)
	sphere := physics.NewSphereCollider(2)
	body := physics.NewBodyComponent()
	body.Collider = sphere
	if _, err := s.Create3DPrimitive(primitives.Cube, primitives.NewOptions3DWithPhysics().WithComponent(body)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if body.Collider != physics.Collider(sphere) || sphere.Radius != 2 {
		t.Fatalf("custom collider was replaced")
	}
}

func TestCreateWithoutCollider(t *testing.T) {
	s := New(nil, nil)
	opts := primitives.NewOptions3DWithPhysics()
	opts.IncludeCollider = false
	e, err := s.Create3DPrimitive(primitives.Cylinder, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Physics != nil || s.World().Len() != 0 {
		t.Fatalf("render-only entity got physics")
	}

	opts = primitives.NewOptions3DWithPhysics().WithComponent(nil)
	if e, err = s.Create3DPrimitive(primitives.Cube, opts); err != nil || e.Physics != nil {
		t.Fatalf("nil component: entity %+v err %v", e, err)
	}
}

func TestCreateErrors(t *testing.T) {
	s := New(nil, nil)
	if _, err := s.Create3DPrimitive("torus", nil); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if _, err := s.Create3DPrimitive(primitives.Cube, primitives.NewOptions3DWithPhysics().WithSize(1, -1, 1)); !errors.Is(err, ErrNegativeSize) {
		t.Fatalf("expected ErrNegativeSize, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("failed spawns must not add entities")
	}
}

func TestContainerOwnership(t *testing.T) {
	s := New(nil, nil)
	opts := primitives.NewOptions3DWithPhysics()
	first, err := s.Create3DPrimitive(primitives.Cube, opts)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create3DPrimitive(primitives.Cube, opts); !errors.Is(err, ErrContainerAttached) {
		t.Fatalf("expected ErrContainerAttached, got %v", err)
	}
	if n := first.Physics.Base().Collider.(*physics.CompoundCollider).Len(); n != 1 {
		t.Fatalf("rejected spawn modified the collider: %d children", n)
	}

	if err := s.Remove(first.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.World().Len() != 0 || first.Physics.Base().Owner() != 0 {
		t.Fatalf("remove did not release the container")
	}
	if _, err := s.Create3DPrimitive(primitives.Cube, opts); err != nil {
		t.Fatalf("reuse after remove: %v", err)
	}
	if err := s.Remove(999); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestCreateUsesDefs(t *testing.T) {
	defs := primitives.DefaultDefs()
	defs[primitives.Cube] = primitives.Def{Type: primitives.Cube, Size: [3]float32{2, 3, 4}, Color: "#ff0000"}
	s := New(defs, nil)
	e, err := s.Create3DPrimitive(primitives.Cube, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Size != rl.NewVector3(2, 3, 4) || e.Color != rl.NewColor(255, 0, 0, 255) {
		t.Fatalf("defs not applied: size %v colour %v", e.Size, e.Color)
	}
}

func TestUpdateFixedStep(t *testing.T) {
	s := New(nil, nil)
	s.FixedStep = 0.1
	e, err := s.Create3DPrimitive(primitives.Sphere, primitives.NewOptions3DWithPhysics().WithPosition(0, 10, 0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Update(0.05)
	if e.WorldPosition().Y != 10 {
		t.Fatalf("partial frame should not step, y=%v", e.WorldPosition().Y)
	}
	s.Update(0.06)
	if e.WorldPosition().Y >= 10 {
		t.Fatalf("accumulated frame should step, y=%v", e.WorldPosition().Y)
	}
	if e.Position.Y != 10 {
		t.Fatalf("spawn position should not change")
	}
}

func TestBodyLandsOnStaticPlane(t *testing.T) {
	s := New(nil, nil)
	ground := primitives.NewOptions3DWithPhysics().WithComponent(physics.NewStaticComponent(nil))
	if _, err := s.Create3DPrimitive(primitives.Plane, ground); err != nil {
		t.Fatalf("ground: %v", err)
	}
	box, err := s.Create3DPrimitive(primitives.Cube, primitives.NewOptions3DWithPhysics().WithPosition(0, 3, 0))
	if err != nil {
		t.Fatalf("box: %v", err)
	}
	for i := 0; i < 240; i++ {
		s.Update(DefaultFixedStep)
	}
	if y := box.WorldPosition().Y; y < 0.49 || y > 0.51 {
		t.Fatalf("box should rest on the plane at y=0.5, got %v", y)
	}
}

func TestClearAndLogging(t *testing.T) {
	log := logger.New("")
	s := New(nil, log)
	for _, typ := range primitives.Types() {
		if _, err := s.Create3DPrimitive(typ, nil); err != nil {
			t.Fatalf("create %s: %v", typ, err)
		}
	}
	if s.Len() != 5 || s.World().Len() != 5 {
		t.Fatalf("expected 5 entities and bodies, got %d/%d", s.Len(), s.World().Len())
	}
	s.Clear()
	if s.Len() != 0 || s.World().Len() != 0 {
		t.Fatalf("clear left %d/%d", s.Len(), s.World().Len())
	}
	lines := log.Lines()
	if len(lines) != 10 || !strings.Contains(lines[0], "spawn cube") {
		t.Fatalf("unexpected log %q", lines)
	}
}

func TestColliderFor(t *testing.T) {
	size := rl.NewVector3(1, 2, 0.5)
	cyl := ColliderFor(primitives.Cylinder, size).(*physics.CylinderCollider)
	if cyl.Radius != 0.5 || cyl.Length != 2 {
		t.Fatalf("cylinder %+v", cyl)
	}
	capsule := ColliderFor(primitives.Capsule, rl.NewVector3(0.7, 1.35, 0.7)).(*physics.CapsuleCollider)
	if b := capsule.Bounds(); b.Max.Y-b.Min.Y < 1.3499 || b.Max.Y-b.Min.Y > 1.3501 {
		t.Fatalf("capsule height %v", b.Max.Y-b.Min.Y)
	}
	flat := ColliderFor(primitives.Capsule, rl.NewVector3(2, 1, 2)).(*physics.CapsuleCollider)
	if flat.Length != 0 {
		t.Fatalf("short capsule should clamp length, got %v", flat.Length)
	}
	if ColliderFor("torus", size) != nil {
		t.Fatalf("unknown type should have no collider")
	}
}
