// Package debug draws optional runtime overlays: FPS, heap allocation, and
// scene statistics. All overlays are off by default and toggled through
// slash commands.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	pad        = 12
	lineH      = fontSize + 4
	// Only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// SceneStats is the snapshot drawn by the scene overlay.
type SceneStats struct {
	Objects    int
	Terrains   int
	Animations int
}

// Debug holds runtime debugging overlays.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowScene    bool

	// Stats, if set, supplies scene counts for the scene overlay.
	Stats func() SceneStats

	frameCount    uint32
	lastFpsText   string
	lastMemText   string
	lastSceneText string
	lastMemStats  runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-right. Call after the scene
// and HUD in the draw loop. Text is recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowScene && d.lastSceneText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(pad)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineH
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y)
		y += lineH
	}

	if d.ShowScene && d.Stats != nil {
		if update {
			s := d.Stats()
			d.lastSceneText = fmt.Sprintf("Obj: %d  Terrain: %d  Anim: %d",
				s.Objects, s.Terrains, s.Animations)
		}
		drawRight(d.lastSceneText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-pad, y, fontSize, rl.Green)
}
