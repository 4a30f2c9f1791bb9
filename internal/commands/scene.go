package commands

import (
	"flag"
	"fmt"
	"strconv"

	"game-toolkit/internal/logger"
	"game-toolkit/internal/mapgen"
	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"
	"game-toolkit/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RegisterSceneCommands registers spawn, grid, gravity, clear, remove, and terrain on reg.
//
//	spawn [-static] [-kinematic] [-nocollider] [-mass m] [-name n] <type> x y z [sx sy sz]
//	grid -show | -hide
//	gravity x y z
//	clear
//	remove <id>
//	terrain [-w 32] [-d 32] [-height 3] [-seed 0]
func RegisterSceneCommands(reg *Registry, scn *scene.Scene, log *logger.Logger) {
	reg.Register("spawn", func(fs *flag.FlagSet) func() error {
		static := fs.Bool("static", false, "attach an immovable static container")
		kinematic := fs.Bool("kinematic", false, "body ignores gravity and contacts")
		noCollider := fs.Bool("nocollider", false, "spawn without physics")
		mass := fs.Float64("mass", 1, "body mass")
		name := fs.String("name", "", "entity name")
		return func() error {
			args := fs.Args()
			if len(args) != 4 && len(args) != 7 {
				return fmt.Errorf("spawn: usage: spawn [flags] <type> x y z [sx sy sz]")
			}
			typ, err := primitives.ParseType(args[0])
			if err != nil {
				return fmt.Errorf("spawn: %w", err)
			}
			pos, err := parseVec3(args[1:4])
			if err != nil {
				return fmt.Errorf("spawn: position: %w", err)
			}
			opts := primitives.NewOptions3DWithPhysics()
			opts.Position = pos
			opts.EntityName = *name
			opts.IncludeCollider = !*noCollider
			if len(args) == 7 {
				size, err := parseVec3(args[4:7])
				if err != nil {
					return fmt.Errorf("spawn: size: %w", err)
				}
				opts.Size = &size
			}
			if *static {
				opts.Component = physics.NewStaticComponent(nil)
			} else if body, ok := opts.Component.(*physics.BodyComponent); ok {
				body.Kinematic = *kinematic
				if *mass > 0 {
					body.Mass = float32(*mass)
				}
			}
			e, err := scn.Create3DPrimitive(typ, opts)
			if err != nil {
				return err
			}
			log.Logf("spawned %s #%d", e.Name, e.ID)
			return nil
		}
	})
	reg.Register("grid", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", false, "show the editor grid")
		hide := fs.Bool("hide", false, "hide the editor grid")
		return func() error {
			if *show == *hide {
				return fmt.Errorf("grid: exactly one of -show or -hide is required")
			}
			scn.SetGridVisible(*show)
			return nil
		}
	})
	reg.Register("gravity", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 3 {
				return fmt.Errorf("gravity: usage: gravity x y z")
			}
			g, err := parseVec3(fs.Args())
			if err != nil {
				return fmt.Errorf("gravity: %w", err)
			}
			scn.World().SetGravity(g)
			return nil
		}
	})
	reg.Register("clear", func(fs *flag.FlagSet) func() error {
		return func() error {
			scn.Clear()
			log.Log("scene cleared")
			return nil
		}
	})
	reg.Register("remove", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 1 {
				return fmt.Errorf("remove: usage: remove <id>")
			}
			id, err := strconv.ParseUint(fs.Arg(0), 10, 64)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			return scn.Remove(id)
		}
	})
	reg.Register("terrain", func(fs *flag.FlagSet) func() error {
		def := mapgen.DefaultHeightMapOptions()
		w := fs.Int("w", def.Width, "tiles along X")
		d := fs.Int("d", def.Depth, "tiles along Z")
		height := fs.Float64("height", float64(def.HeightScale), "maximum terrain height")
		seed := fs.Int64("seed", 0, "noise seed (0 = time based)")
		return func() error {
			opts := def
			opts.Width, opts.Depth = *w, *d
			opts.HeightScale = float32(*height)
			opts.Seed = *seed
			n, err := mapgen.Populate(scn, mapgen.GenerateHeightMap(opts))
			if err != nil {
				return err
			}
			log.Logf("terrain: %d tiles", n)
			return nil
		}
	})
}

func parseVec3(s []string) (rl.Vector3, error) {
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(s[i], 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return rl.NewVector3(v[0], v[1], v[2]), nil
}
