package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawEditorGrid draws a grid on the XZ plane (Y=0) with major every gridMajorStep units, plus axis lines.
func drawEditorGrid() {
	const e = float32(gridExtent)
	for i := -gridExtent; i <= gridExtent; i++ {
		if i == 0 {
			continue
		}
		c := gridMinor
		if i%gridMajorStep == 0 {
			c = gridMajor
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, 0, -e), rl.NewVector3(f, 0, e), c)
		rl.DrawLine3D(rl.NewVector3(-e, 0, f), rl.NewVector3(e, 0, f), c)
	}
	rl.DrawLine3D(rl.NewVector3(-e, 0, 0), rl.NewVector3(e, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -e, 0), rl.NewVector3(0, e, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -e), rl.NewVector3(0, 0, e), axisZ)
}
