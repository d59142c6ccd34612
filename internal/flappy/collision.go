package flappy

// Collision is the outcome of a collision check.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
)

// String returns a short name used in logs.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "pipe"
	default:
		return "unknown"
	}
}

// Check tests the bird against the ground and the pipes.
//
// Only the first pipe whose columns overlap the bird is considered: the
// queue is in screen order, so that pipe is the nearest one. The bird
// survives it only if its whole vertical span lies inside the gap, edges
// included. The ceiling is not a loss; Physics clamps the bird there.
func Check(b Bird, obstacles []Obstacle, fieldH int) Collision {
	if b.Bottom() >= float64(fieldH) {
		return CollisionGround
	}

	bird := b.HSpan()
	for _, o := range obstacles {
		if !o.HSpan().Overlaps(bird) {
			continue
		}
		if !b.VSpan().Within(o.Gap()) {
			return CollisionObstacle
		}
		return CollisionNone
	}
	return CollisionNone
}
