package main

import (
	"fmt"
	"math/rand"
	"os"

	"game-toolkit/internal/commands"
	"game-toolkit/internal/debug"
	"game-toolkit/internal/engineconfig"
	"game-toolkit/internal/graphics"
	"game-toolkit/internal/logger"
	"game-toolkit/internal/primitives"
	"game-toolkit/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	prefs, _ := engineconfig.Load(engineconfig.EngineConfigPath)
	log := logger.New(prefs.LogPath)

	defs, err := primitives.LoadDefs(prefs.PrimitivesPath)
	if err != nil {
		log.Logf("primitives: using built-in defaults: %v", err)
	}
	scn := scene.New(defs, log)
	scn.GridVisible = prefs.GridVisible
	scn.FixedStep = prefs.PhysicsStep
	scn.World().SetGravity(rl.NewVector3(prefs.Gravity[0], prefs.Gravity[1], prefs.Gravity[2]))

	reg := commands.NewRegistry()
	commands.RegisterSceneCommands(reg, scn, log)
	runStartupScript(reg, prefs.StartupScript, log)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc
	meshes := primitives.NewRegistry()
	defer meshes.Unload()

	types := primitives.Types()
	update := func(dt float32) {
		scn.UpdateCamera()
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			typ := types[rand.Intn(len(types)-1)] // skip plane
			x, z := rand.Float32()*4-2, rand.Float32()*4-2
			exec(reg, log, "spawn", string(typ), ftoa(x), "8", ftoa(z))
		case rl.IsKeyPressed(rl.KeyG):
			if scn.GridVisible {
				exec(reg, log, "grid", "-hide")
			} else {
				exec(reg, log, "grid", "-show")
			}
		case rl.IsKeyPressed(rl.KeyF1):
			dbg.ShowStats = !dbg.ShowStats
		case rl.IsKeyPressed(rl.KeyR):
			exec(reg, log, "clear")
		}
		scn.Update(dt)
	}
	draw := func() {
		scn.Draw(meshes)
		dbg.Draw(scn)
	}
	graphics.Run(graphics.Window{
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
		Title:      "primitives",
	}, update, draw)
}

func runStartupScript(reg *commands.Registry, path string, log *logger.Logger) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Logf("startup script: %v", err)
		}
		return
	}
	defer f.Close()
	n, err := reg.RunScript(f)
	if err != nil {
		log.Logf("startup script %s: %v", path, err)
	}
	log.Logf("startup script %s: %d command(s)", path, n)
}

func exec(reg *commands.Registry, log *logger.Logger, args ...string) {
	if err := reg.Execute(args); err != nil {
		log.Log(err.Error())
	}
}

func ftoa(f float32) string {
	return fmt.Sprintf("%.2f", f)
}
