package flappy

import "testing"

func birdAt(y float64) Bird {
	return NewBird(y)
}

func TestCollisionGround(t *testing.T) {
	const fieldH = 20

	if c := Check(birdAt(18.9), nil, fieldH); c != CollisionNone {
		t.Errorf("bird above ground: got %v", c)
	}
	if c := Check(birdAt(19), nil, fieldH); c != CollisionGround {
		t.Errorf("bird resting on ground: got %v, expected ground", c)
	}
	if c := Check(birdAt(0), nil, fieldH); c != CollisionNone {
		t.Errorf("bird at ceiling should not collide, got %v", c)
	}
}

func TestCollisionGapBoundaries(t *testing.T) {
	// Pipe columns [8, 14) cover the bird at column 10.
	pipe := Obstacle{X: BirdX - 2, GapStart: 5, GapEnd: 13}

	tests := []struct {
		name     string
		y        float64
		expected Collision
	}{
		{"top edge of gap", 5, CollisionNone},
		{"bottom edge of gap", 12, CollisionNone},
		{"middle of gap", 8.5, CollisionNone},
		{"one row above gap", 4, CollisionObstacle},
		{"one row below gap", 13, CollisionObstacle},
		{"clipping top lip", 4.9, CollisionObstacle},
		{"clipping bottom lip", 12.1, CollisionObstacle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := Check(birdAt(tc.y), []Obstacle{pipe}, 30); c != tc.expected {
				t.Errorf("bird at %v: got %v, expected %v", tc.y, c, tc.expected)
			}
		})
	}
}

func TestCollisionNeedsHorizontalOverlap(t *testing.T) {
	closedPipe := func(x float64) Obstacle {
		return Obstacle{X: x, GapStart: 25, GapEnd: 29}
	}

	tests := []struct {
		name     string
		x        float64
		expected Collision
	}{
		{"pipe ahead touching", BirdX + BirdWidth, CollisionNone},
		{"pipe just entering", BirdX + BirdWidth - 0.1, CollisionObstacle},
		{"pipe just leaving", BirdX - PipeWidth + 0.1, CollisionObstacle},
		{"pipe behind touching", BirdX - PipeWidth, CollisionNone},
		{"pipe far ahead", 60, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := Check(birdAt(5), []Obstacle{closedPipe(tc.x)}, 30); c != tc.expected {
				t.Errorf("pipe at %v: got %v, expected %v", tc.x, c, tc.expected)
			}
		})
	}
}

func TestCollisionFirstOverlapIsAuthoritative(t *testing.T) {
	safe := Obstacle{X: BirdX - 1, GapStart: 0, GapEnd: 10}
	blocking := Obstacle{X: BirdX - 3, GapStart: 20, GapEnd: 28}

	if c := Check(birdAt(4), []Obstacle{safe, blocking}, 30); c != CollisionNone {
		t.Errorf("first overlapping pipe lets the bird through, got %v", c)
	}
	if c := Check(birdAt(4), []Obstacle{blocking, safe}, 30); c != CollisionObstacle {
		t.Errorf("first overlapping pipe blocks the bird, got %v", c)
	}
}

func TestCollisionString(t *testing.T) {
	if CollisionObstacle.String() != "pipe" || CollisionGround.String() != "ground" {
		t.Error("unexpected collision names")
	}
}
