package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"block-sandbox/internal/config"
)

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// with the frame duration, then clears the screen to bg and calls draw. shutdown, if not
// nil, runs after the loop while the GL context still exists.
// ESC does not quit; close via the window button.
func Run(w config.Window, bg rl.Color, update func(dt time.Duration), draw, shutdown func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := w.Width, w.Height
	if w.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.FPS)

	for !rl.WindowShouldClose() {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}

// Size returns the current render surface size in pixels.
func Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
