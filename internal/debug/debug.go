package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"block-sandbox/internal/config"
	"block-sandbox/internal/fonts"
	"block-sandbox/internal/sandbox"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/stats text every N frames to reduce allocations.
	updateInterval = 30
	logLines       = 5
)

// LogTail is the part of the logger the HUD reads.
type LogTail interface {
	Tail(n int) []string
	Logf(format string, args ...any)
}

// HUD draws the debug overlays: FPS, sandbox stats and the last log lines.
type HUD struct {
	ShowFPS   bool
	ShowStats bool
	ShowLog   bool

	stats func() sandbox.Stats
	log   LogTail

	fontName    string
	font        rl.Font // zero texture ID = raylib default font
	fontChecked bool

	frameCount  uint32
	lastFpsText string
	lastStats   []string
}

// New returns a HUD with overlays enabled per cfg. stats and log may be nil.
func New(cfg config.Debug, stats func() sandbox.Stats, log LogTail) *HUD {
	return &HUD{
		ShowFPS:   cfg.ShowFPS,
		ShowStats: cfg.ShowStats,
		ShowLog:   cfg.ShowLog,
		stats:     stats,
		log:       log,
		fontName:  cfg.Font,
	}
}

// Toggle flips every overlay on or off together.
func (h *HUD) Toggle() {
	on := !(h.ShowFPS || h.ShowStats || h.ShowLog)
	h.ShowFPS, h.ShowStats, h.ShowLog = on, on, on
}

// Close unloads the HUD font, if one was loaded. Call before the window closes.
func (h *HUD) Close() {
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
		h.font = rl.Font{}
	}
}

// ensureFont loads the configured font on the first Draw, once the GL context exists.
// A font that cannot be found is logged and the default font is used.
func (h *HUD) ensureFont() {
	if h.fontChecked || h.fontName == "" {
		return
	}
	h.fontChecked = true
	path, err := fonts.Find(h.fontName, fonts.BaseDirs()...)
	if err != nil {
		if h.log != nil {
			h.log.Logf("hud font: %v", err)
		}
		return
	}
	if f := rl.LoadFontEx(path, fontSize*2, nil); rl.IsFontValid(f) {
		h.font = f
	}
}

func (h *HUD) measure(text string) int32 {
	if h.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(h.font, text, fontSize, 1).X)
	}
	return rl.MeasureText(text, fontSize)
}

func (h *HUD) text(text string, x, y int32, col rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(text, x, y, fontSize, col)
}

// Draw renders the enabled overlays: FPS top-right in green, stats top-left, log tail
// bottom-left. Call after the scene in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (h *HUD) Draw() {
	h.ensureFont()
	h.frameCount++
	update := h.frameCount%updateInterval == 0
	if h.ShowFPS && h.lastFpsText == "" {
		update = true
	}
	if h.ShowStats && h.lastStats == nil {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if h.ShowFPS {
		if update {
			h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		h.text(h.lastFpsText, screenW-h.measure(h.lastFpsText)-padding, padding, rl.Green)
	}

	if h.ShowStats && h.stats != nil {
		if update {
			st := h.stats()
			h.lastStats = []string{
				fmt.Sprintf("blocks: %d", st.Blocks),
				fmt.Sprintf("pending removals: %d", st.PendingRemovals),
				fmt.Sprintf("yaw: %.1f  pitch: %.1f", mgl32.RadToDeg(st.Yaw), mgl32.RadToDeg(st.Pitch)),
			}
		}
		y := int32(padding)
		for _, line := range h.lastStats {
			h.text(line, padding, y, rl.White)
			y += lineHeight
		}
	}

	if h.ShowLog && h.log != nil {
		lines := h.log.Tail(logLines)
		y := screenH - padding - int32(len(lines))*lineHeight
		for _, line := range lines {
			h.text(line, padding, y, rl.Fade(rl.White, 0.8))
			y += lineHeight
		}
	}
}
