package flappy

import "fmt"

// UpdateScore flags every pipe the bird has fully cleared and returns the
// new score. A pipe counts once: its trailing edge must be strictly left of
// birdX and it must not have been flagged before.
func UpdateScore(obstacles []Obstacle, birdX float64, score int) int {
	for i := range obstacles {
		if obstacles[i].Passed || obstacles[i].Right() >= birdX {
			continue
		}
		obstacles[i].Passed = true
		score++
	}
	return score
}

// Gateway persists the high score. Load is called once at startup, Save
// only when a new record is set.
type Gateway interface {
	Load() (int, error)
	Save(score int) error
}

// HighScore is the best score seen so far, owned by the Machine.
// A record whose write failed stays pending until Flush succeeds.
type HighScore struct {
	value   int
	pending bool
}

// LoadHighScore reads the persisted value. A nil gateway or a failed read
// yields 0; the error is returned so the caller can log it.
func LoadHighScore(gw Gateway) (HighScore, error) {
	if gw == nil {
		return HighScore{}, nil
	}
	v, err := gw.Load()
	if err != nil {
		return HighScore{}, err
	}
	if v < 0 {
		return HighScore{}, fmt.Errorf("flappy: negative stored high score %d", v)
	}
	return HighScore{value: v}, nil
}

// Value returns the current best score.
func (h HighScore) Value() int {
	return h.value
}

// Pending reports whether a record has not been written yet.
func (h HighScore) Pending() bool {
	return h.pending
}

// Finalize compares a finished round against the record. A strictly higher
// score becomes the new record and is written through gw exactly once.
// newRecord is true even when the write fails; the write is then left
// pending for Flush.
func (h *HighScore) Finalize(score int, gw Gateway) (newRecord bool, err error) {
	if score <= h.value {
		return false, nil
	}
	h.value = score
	h.pending = true
	return true, h.Flush(gw)
}

// Flush writes a pending record. It does nothing when nothing is pending.
func (h *HighScore) Flush(gw Gateway) error {
	if !h.pending || gw == nil {
		return nil
	}
	if err := gw.Save(h.value); err != nil {
		return fmt.Errorf("flappy: save high score %d: %w", h.value, err)
	}
	h.pending = false
	return nil
}
