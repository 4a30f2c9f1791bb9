package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats reports what the overlay shows about the scene.
type Stats interface {
	Len() int
	Bodies() int
}

// Debug holds runtime overlays (FPS, heap, scene counts). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	lines        []string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Lines returns the overlay text for the current frame, refreshing it every
// updateInterval frames or when the enabled set changes.
func (d *Debug) Lines(fps int32, stats Stats) []string {
	d.frameCount++
	want := 0
	for _, on := range []bool{d.ShowFPS, d.ShowMemAlloc, d.ShowStats && stats != nil} {
		if on {
			want++
		}
	}
	if d.frameCount%updateInterval != 0 && len(d.lines) == want {
		return d.lines
	}
	d.lines = d.lines[:0]
	if d.ShowFPS {
		d.lines = append(d.lines, fmt.Sprintf("FPS: %d", fps))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
	}
	if d.ShowStats && stats != nil {
		d.lines = append(d.lines, fmt.Sprintf("Entities: %d  Bodies: %d", stats.Len(), stats.Bodies()))
	}
	return d.lines
}

// Draw renders the enabled overlays at the top-right in green. Call after the scene.
func (d *Debug) Draw(stats Stats) {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(rl.GetFPS(), stats) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
