// Package flappy implements the game logic: a bird falls under gravity and
// flaps through gaps in scrolling pipes. Everything here is pure simulation;
// input, timing and terminal output are supplied by the platform layer.
package flappy

import "github.com/vovakirdan/tflap/internal/core"

// Bird geometry. X is fixed; the world scrolls past it.
const (
	BirdX      = 10
	BirdWidth  = 1
	BirdHeight = 1
)

// Default physics, in rows and seconds. At 20 ticks/s this is 0.3 rows/tick²
// of gravity and a 1.5 rows/tick flap.
const (
	DefaultGravity     = 120.0 // rows/s², positive is down
	DefaultJumpImpulse = -30.0 // rows/s, negative is up
)

// Bird is the player. Y is the top of the hitbox in rows, Vel in rows/s.
type Bird struct {
	X   float64
	Y   float64
	Vel float64
	W   int
	H   int
}

// NewBird places a bird at rest at row y.
func NewBird(y float64) Bird {
	return Bird{
		X: BirdX,
		Y: y,
		W: BirdWidth,
		H: BirdHeight,
	}
}

// Bottom returns the y-coordinate of the bird's bottom edge.
func (b Bird) Bottom() float64 {
	return b.Y + float64(b.H)
}

// HSpan returns the horizontal extent of the hitbox.
func (b Bird) HSpan() core.Span {
	return core.NewSpan(b.X, float64(b.W))
}

// VSpan returns the vertical extent of the hitbox.
func (b Bird) VSpan() core.Span {
	return core.NewSpan(b.Y, float64(b.H))
}

// Contact reports which field boundary, if any, the bird was clamped to.
type Contact int

const (
	ContactNone Contact = iota
	ContactCeiling
	ContactGround
)

// Physics holds the integration constants.
type Physics struct {
	Gravity     float64
	JumpImpulse float64
}

// DefaultPhysics returns the constants the game is played with.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:     DefaultGravity,
		JumpImpulse: DefaultJumpImpulse,
	}
}

// Advance integrates the bird over one tick of dt seconds.
//
// A jump replaces the velocity instead of adding to it, so repeated flaps
// never build up speed. The bird is then clamped to [0, fieldH-H]. Hitting
// the ceiling stops upward motion and is harmless; reaching the ground is
// reported as ContactGround and left to the collision check.
func (p Physics) Advance(b *Bird, jumped bool, dt float64, fieldH int) Contact {
	b.Vel += p.Gravity * dt
	if jumped {
		b.Vel = p.JumpImpulse
	}
	b.Y += b.Vel * dt

	floor := float64(fieldH - b.H)
	switch {
	case b.Y < 0:
		b.Y = 0
		b.Vel = 0
		return ContactCeiling
	case b.Y >= floor:
		b.Y = core.ClampF(b.Y, 0, floor)
		return ContactGround
	}
	return ContactNone
}
