package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tflap/internal/core"
)

// Obstacle geometry and pacing. These are fixed; the game has no
// difficulty settings.
const (
	PipeWidth     = 6    // columns
	GapHeight     = 8    // rows
	GapMargin     = 3    // minimum rows between a gap and the field edge
	SpawnInterval = 40   // columns between consecutive pipes
	ScrollSpeed   = 20.0 // columns/s
)

// Obstacle is a pipe with a passable gap covering rows [GapStart, GapEnd].
type Obstacle struct {
	X         float64 // left edge, in columns
	GapStart  int
	GapEnd    int
	Passed    bool // bird has cleared it and it was scored
	SpawnTick int
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + PipeWidth
}

// HSpan returns the horizontal extent of the pipe.
func (o Obstacle) HSpan() core.Span {
	return core.NewSpan(o.X, PipeWidth)
}

// Gap returns the vertical extent of the opening.
func (o Obstacle) Gap() core.Span {
	return core.Span{Min: float64(o.GapStart), Max: float64(o.GapEnd)}
}

// OffScreen reports whether the pipe has scrolled fully past the left edge.
func (o Obstacle) OffScreen() bool {
	return o.Right() < 0
}

// World owns the obstacle queue. Obstacles are kept in spawn order, which
// is also left-to-right screen order.
type World struct {
	obstacles []Obstacle
	rng       *rand.Rand
	fieldW    int
	fieldH    int
	step      float64 // columns scrolled per tick
}

// NewWorld creates a world for a field of the given size, scrolling at
// ScrollSpeed for ticks of dt seconds. It panics if the gap cannot fit the
// bird, since every pipe must be passable.
func NewWorld(seed int64, fieldW, fieldH int, dt float64) *World {
	if GapHeight < BirdHeight+GapMargin {
		panic(fmt.Sprintf("flappy: gap height %d cannot fit bird height %d plus margin %d",
			GapHeight, BirdHeight, GapMargin))
	}

	w := &World{
		obstacles: make([]Obstacle, 0, 8),
		fieldW:    fieldW,
		fieldH:    fieldH,
		step:      ScrollSpeed * dt,
	}
	w.Reset(seed)
	return w
}

// Reset clears the queue, reseeds the RNG and lays out the lead-in pipes:
// the first at mid-field, then every SpawnInterval up to the right edge.
func (w *World) Reset(seed int64) {
	w.obstacles = w.obstacles[:0]
	w.rng = rand.New(rand.NewSource(seed))

	for x := w.fieldW / 2; x <= w.fieldW; x += SpawnInterval {
		w.spawn(float64(x), 0)
	}
}

// Tick scrolls the world by one step: pipes move left, pipes that left the
// field are dropped, and a new pipe is added once the last one is
// SpawnInterval columns clear of the right edge.
func (w *World) Tick(elapsedTicks int) {
	for i := range w.obstacles {
		w.obstacles[i].X -= w.step
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept

	if len(w.obstacles) == 0 {
		w.spawn(float64(w.fieldW), elapsedTicks)
		return
	}

	last := w.obstacles[len(w.obstacles)-1]
	if float64(w.fieldW)-last.X >= SpawnInterval {
		w.spawn(last.X+SpawnInterval, elapsedTicks)
	}
}

// spawn appends a pipe at x with a uniformly placed gap. Placement is
// independent of the previous pipe.
func (w *World) spawn(x float64, tick int) {
	minY := GapMargin
	maxY := w.fieldH - GapMargin - GapHeight
	if maxY < minY {
		maxY = minY // very small terminals
	}

	gapY := minY + w.rng.Intn(maxY-minY+1)

	w.obstacles = append(w.obstacles, Obstacle{
		X:         x,
		GapStart:  gapY,
		GapEnd:    gapY + GapHeight,
		SpawnTick: tick,
	})
}

// Obstacles returns the live queue. Callers may flag Passed but must not
// reorder or resize it.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Len returns the number of obstacles in the queue.
func (w *World) Len() int {
	return len(w.obstacles)
}
