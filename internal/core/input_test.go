package core

import "testing"

func TestInputQueueFIFO(t *testing.T) {
	q := NewInputQueue(4)

	if q.Poll() != InputNone {
		t.Fatal("empty queue should poll InputNone")
	}

	q.Push(InputJump)
	q.Push(InputNone) // ignored
	q.Push(InputRetry)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	if got := q.Poll(); got != InputJump {
		t.Errorf("first Poll() = %v, expected Jump", got)
	}
	if got := q.Poll(); got != InputRetry {
		t.Errorf("second Poll() = %v, expected Retry", got)
	}
	if got := q.Poll(); got != InputNone {
		t.Errorf("third Poll() = %v, expected None", got)
	}
}

func TestInputQueueFullKeepsQuit(t *testing.T) {
	q := NewInputQueue(2)
	q.Push(InputJump)
	q.Push(InputJump)
	q.Push(InputJump) // dropped
	q.Push(InputQuit) // replaces newest

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	q.Poll()
	if got := q.Poll(); got != InputQuit {
		t.Errorf("Quit should survive a full queue, got %v", got)
	}
}

func TestInputQueueReuse(t *testing.T) {
	q := NewInputQueue(2)
	for i := 0; i < 10; i++ {
		q.Push(InputJump)
		q.Push(InputRetry)
		if q.Poll() != InputJump || q.Poll() != InputRetry {
			t.Fatalf("round %d: queue lost ordering", i)
		}
	}
}

func TestDrainCollapses(t *testing.T) {
	tests := []struct {
		name     string
		events   []Input
		expected Input
	}{
		{"nothing pending", nil, InputNone},
		{"single jump", []Input{InputJump}, InputJump},
		{"many jumps count once", []Input{InputJump, InputJump, InputJump}, InputJump},
		{"retry beats jump", []Input{InputJump, InputRetry, InputJump}, InputRetry},
		{"quit beats everything", []Input{InputRetry, InputQuit, InputJump}, InputQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewInputQueue(0)
			for _, in := range tc.events {
				q.Push(in)
			}
			if got := Drain(q); got != tc.expected {
				t.Errorf("Drain() = %v, expected %v", got, tc.expected)
			}
			if q.Len() != 0 {
				t.Errorf("Drain should empty the queue, %d left", q.Len())
			}
		})
	}
}

func TestInputString(t *testing.T) {
	if InputJump.String() != "Jump" || InputQuit.String() != "Quit" {
		t.Error("unexpected input names")
	}
	if Input(99).String() != "Unknown" {
		t.Error("out-of-range input should be Unknown")
	}
}
