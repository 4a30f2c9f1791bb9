package commands

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"game-toolkit/internal/logger"
	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"
	"game-toolkit/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd spawn cube 0 1 0")
	if !ok || len(args) != 5 || args[0] != "spawn" {
		t.Fatalf("unexpected parse %v %v", args, ok)
	}
	if args, ok := Parse("cmd   "); !ok || args != nil {
		t.Fatalf("bare prefix: %v %v", args, ok)
	}
	if _, ok := Parse("spawn cube"); ok {
		t.Fatalf("line without prefix should not parse")
	}
}

func TestExecuteFreshFlags(t *testing.T) {
	reg := NewRegistry()
	var seen []bool
	reg.Register("flagged", func(fs *flag.FlagSet) func() error {
		on := fs.Bool("on", false, "")
		return func() error {
			seen = append(seen, *on)
			return nil
		}
	})
	if err := reg.Execute([]string{"flagged", "-on"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if err := reg.Execute([]string{"flagged"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("flag state leaked between runs: %v", seen)
	}
	if err := reg.Execute(nil); err == nil {
		t.Fatalf("expected error for missing subcommand")
	}
	if err := reg.Execute([]string{"nope"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if err := reg.Execute([]string{"flagged", "-bogus"}); err == nil {
		t.Fatalf("expected flag parse error")
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "flagged" {
		t.Fatalf("unexpected names %v", names)
	}
}

func newSceneRegistry() (*Registry, *scene.Scene) {
	log := logger.New("")
	scn := scene.New(nil, log)
	reg := NewRegistry()
	RegisterSceneCommands(reg, scn, log)
	return reg, scn
}

func TestSpawnCommand(t *testing.T) {
	reg, scn := newSceneRegistry()
	if err := reg.Execute([]string{"spawn", "-mass", "4", "-name", "ball", "sphere", "1", "2", "3", "2", "2", "2"}); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	e := scn.Entities()[0]
	if e.Name != "ball" || e.Type != primitives.Sphere || e.Size != rl.NewVector3(2, 2, 2) {
		t.Fatalf("unexpected entity %+v", e)
	}
	body := e.Physics.(*physics.BodyComponent)
	if body.Mass != 4 || body.Position != rl.NewVector3(1, 2, 3) {
		t.Fatalf("unexpected body %+v", body)
	}

	if err := reg.Execute([]string{"spawn", "-static", "plane", "0", "0", "0"}); err != nil {
		t.Fatalf("spawn static: %v", err)
	}
	if _, ok := scn.Entities()[1].Physics.(*physics.StaticComponent); !ok {
		t.Fatalf("expected static component")
	}
	if err := reg.Execute([]string{"spawn", "-nocollider", "cube", "0", "0", "0"}); err != nil {
		t.Fatalf("spawn render-only: %v", err)
	}
	if scn.Entities()[2].Physics != nil {
		t.Fatalf("nocollider spawn has physics")
	}
}

func TestSpawnCommandErrors(t *testing.T) {
	reg, scn := newSceneRegistry()
	cases := [][]string{
		{"spawn", "cube", "0", "0"},
		{"spawn", "torus", "0", "0", "0"},
		{"spawn", "cube", "x", "0", "0"},
		{"spawn", "cube", "0", "0", "0", "1", "one", "1"},
	}
	for _, args := range cases {
		if err := reg.Execute(args); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
	err := reg.Execute([]string{"spawn", "cube", "0", "0", "0", "1", "-1", "1"})
	if !errors.Is(err, scene.ErrNegativeSize) {
		t.Fatalf("expected ErrNegativeSize, got %v", err)
	}
	if scn.Len() != 0 {
		t.Fatalf("failed spawns created %d entities", scn.Len())
	}
}

func TestGridGravityClearRemove(t *testing.T) {
	reg, scn := newSceneRegistry()
	if err := reg.Execute([]string{"grid", "-hide"}); err != nil || scn.GridVisible {
		t.Fatalf("grid hide: %v visible=%v", err, scn.GridVisible)
	}
	if err := reg.Execute([]string{"grid"}); err == nil {
		t.Fatalf("grid without flag should fail")
	}
	if err := reg.Execute([]string{"gravity", "0", "-1.5", "0"}); err != nil {
		t.Fatalf("gravity: %v", err)
	}
	if scn.World().Gravity != rl.NewVector3(0, -1.5, 0) {
		t.Fatalf("gravity not set: %v", scn.World().Gravity)
	}
	for i := 0; i < 3; i++ {
		if err := reg.Execute([]string{"spawn", "cube", "0", "0", "0"}); err != nil {
			t.Fatalf("spawn: %v", err)
		}
	}
	if err := reg.Execute([]string{"remove", "2"}); err != nil || scn.Len() != 2 {
		t.Fatalf("remove: %v len=%d", err, scn.Len())
	}
	if err := reg.Execute([]string{"remove", "2"}); !errors.Is(err, scene.ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
	if err := reg.Execute([]string{"clear"}); err != nil || scn.Len() != 0 {
		t.Fatalf("clear: %v len=%d", err, scn.Len())
	}
}

func TestTerrainCommand(t *testing.T) {
	reg, scn := newSceneRegistry()
	if err := reg.Execute([]string{"terrain", "-w", "2", "-d", "3", "-seed", "5"}); err != nil {
		t.Fatalf("terrain: %v", err)
	}
	if scn.Len() != 6 {
		t.Fatalf("expected 6 tiles, got %d", scn.Len())
	}
}

func TestRunScript(t *testing.T) {
	reg, scn := newSceneRegistry()
	script := `# demo scene
cmd spawn -static plane 0 0 0

cmd spawn cube 0 4 0
cmd spawn sphere 1 6 0
`
	n, err := reg.RunScript(strings.NewReader(script))
	if err != nil || n != 3 || scn.Len() != 3 {
		t.Fatalf("script: n=%d err=%v len=%d", n, err, scn.Len())
	}
	n, err = reg.RunScript(strings.NewReader("cmd grid -show\nspawn cube 0 0 0\n"))
	if err == nil || n != 1 || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error after 1 command, got n=%d err=%v", n, err)
	}
}
