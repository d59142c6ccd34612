package flappy

import "github.com/vovakirdan/tflap/internal/core"

// HUDRows is the number of screen rows below the playing field reserved for
// the ground line and the score.
const HUDRows = 1

// MinFieldH keeps the field tall enough for one gap with its margins.
const MinFieldH = GapHeight + 2*GapMargin

// Session is the state of one round.
type Session struct {
	Bird    Bird
	World   *World
	Ticks   int
	Score   int
	Running bool
	FieldW  int
	FieldH  int
}

// NewSession creates a round sized to the screen in cfg, seeded with seed.
// The bird starts at rest in the middle of the field.
func NewSession(cfg core.RuntimeConfig, seed int64) *Session {
	fieldW := core.Max(cfg.ScreenW, BirdX+BirdWidth+1)
	fieldH := core.Max(cfg.ScreenH-HUDRows, MinFieldH)

	return &Session{
		Bird:   NewBird(float64(fieldH / 2)),
		World:  NewWorld(seed, fieldW, fieldH, cfg.DT()),
		FieldW: fieldW,
		FieldH: fieldH,
	}
}
