// Package input reads the raylib pointer once per frame for the gesture recognizer.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"block-sandbox/internal/gesture"
)

// Poll returns this frame's pointer sample. The first touch point wins over the mouse;
// only the left mouse button counts as a press.
func Poll() gesture.Sample {
	if rl.GetTouchPointCount() > 0 {
		p := rl.GetTouchPosition(0)
		return gesture.Sample{Down: true, Pos: mgl32.Vec2{p.X, p.Y}}
	}
	p := rl.GetMousePosition()
	return gesture.Sample{
		Down: rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Pos:  mgl32.Vec2{p.X, p.Y},
	}
}

// Focused reports whether the window has input focus. Losing it cancels the gesture in progress.
func Focused() bool {
	return rl.IsWindowFocused()
}

// HUDToggled reports whether the debug HUD key (F1) was pressed this frame.
func HUDToggled() bool {
	return rl.IsKeyPressed(rl.KeyF1)
}
