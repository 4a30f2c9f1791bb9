package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the main window.
type Window struct {
	Width      int32
	Height     int32
	Fullscreen bool
	Title      string
}

// Run opens the window and runs the main loop. Each frame it calls update with the
// frame time in seconds, then clears the screen and calls draw. ESC closes the window.
func Run(w Window, update func(dt float32), draw func()) {
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
