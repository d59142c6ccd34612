package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tflap/internal/core"
)

// Visual characters for rendering.
const (
	BirdChar      = '@'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

const (
	gameTitle   = "T E R M I N A L   F L A P"
	recordTitle = "*** NEW RECORD! ***"
)

// Renderer consumes a snapshot once per tick. It must not feed anything
// back into the game.
type Renderer interface {
	Draw(snap Snapshot)
}

// NopRenderer draws nothing.
type NopRenderer struct{}

// Draw implements Renderer.
func (NopRenderer) Draw(Snapshot) {}

// ScreenRenderer draws snapshots into a core.Screen buffer.
type ScreenRenderer struct {
	screen *core.Screen
}

// NewScreenRenderer creates a renderer that draws into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: dst}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Draw implements Renderer.
func (r *ScreenRenderer) Draw(snap Snapshot) {
	dst := r.screen
	dst.Clear()

	dst.SetColor(core.ColorGreen)
	for _, o := range snap.Obstacles {
		drawPipe(dst, o, snap.FieldH)
	}

	dst.SetColor(core.ColorYellow)
	dst.Set(int(snap.Bird.X), int(snap.Bird.Y), BirdChar)

	drawHUD(dst, snap)

	switch snap.State {
	case StateMenu:
		drawMessage(dst, core.ColorCyan,
			gameTitle,
			"",
			"Space: flap / start",
			fmt.Sprintf("Best: %d", snap.HighScore),
		)
	case StateGameOver:
		if snap.NewRecord {
			drawMessage(dst, core.ColorBrightYellow,
				recordTitle,
				fmt.Sprintf("Score: %5d", snap.Score),
				"",
				"R: Retry   Q: Quit",
			)
		} else {
			drawMessage(dst, core.ColorRed,
				"GAME OVER!",
				fmt.Sprintf("Score: %5d", snap.Score),
				fmt.Sprintf("Best:  %5d", snap.HighScore),
				"",
				"R: Retry   Q: Quit",
			)
		}
	}
}

// drawPipe draws the column above and below the gap, with caps at the gap.
func drawPipe(dst *core.Screen, o Obstacle, fieldH int) {
	x0 := int(math.Floor(o.X))
	for x := x0; x < x0+PipeWidth; x++ {
		for y := 0; y < o.GapStart; y++ {
			dst.Set(x, y, PipeChar)
		}
		for y := o.GapEnd; y < fieldH; y++ {
			dst.Set(x, y, PipeChar)
		}
		if o.GapStart > 0 {
			dst.Set(x, o.GapStart-1, PipeCapTop)
		}
		if o.GapEnd < fieldH {
			dst.Set(x, o.GapEnd, PipeCapBottom)
		}
	}
}

// drawHUD draws the ground line with the score on top of it.
func drawHUD(dst *core.Screen, snap Snapshot) {
	y := snap.FieldH
	dst.SetColor(core.ColorGray)
	dst.DrawHLine(0, y, dst.Width(), GroundChar)

	dst.SetColor(core.ColorCyan)
	dst.DrawText(2, y, fmt.Sprintf(" Score: %d  High Score: %d ", snap.Score, snap.HighScore))
}

// drawMessage draws a framed box of lines in the middle of the screen.
func drawMessage(dst *core.Screen, color core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}

	boxW := inner + 6
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetColor(color)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+3, box.Y+1+i, l)
	}
}
