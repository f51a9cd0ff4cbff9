// Package graphics owns the window and the frame loop, keeping raylib
// lifecycle calls in one place.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/slalter/dreamscape/internal/config"
)

// Frame is one tick of the application: Update applies pending stream
// events and input, Draw3D runs inside BeginMode3D with the given camera,
// Draw2D runs after for overlays. Clear supplies the frame clear color so
// the sky can follow the environment.
type Frame struct {
	Update func(dt float32)
	Camera func() rl.Camera3D
	Clear  func() rl.Color
	Draw3D func()
	Draw2D func()
}

// Run opens the window per cfg and loops until the window is closed. ESC is
// reserved for the HUD toggle, so the exit key is disabled; quit via the
// window button.
func Run(cfg config.GraphicsConfig, frame Frame) {
	width, height := int32(cfg.Width), int32(cfg.Height)
	if cfg.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), cfg.Title)
	} else {
		rl.InitWindow(width, height, cfg.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	fps := int32(cfg.FPSLimit)
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)
	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		frame.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(frame.Clear())

		rl.BeginMode3D(frame.Camera())
		frame.Draw3D()
		rl.EndMode3D()

		frame.Draw2D()
		rl.EndDrawing()
	}
}
