package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tflap/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	State     State
	Bird      Bird
	Obstacles []Obstacle
	Score     int
	HighScore int
	NewRecord bool
	Collision Collision
	Ticks     int
	Round     int
	FieldW    int
	FieldH    int
}

// Machine drives the game: Menu -> Playing -> GameOver -> Playing, with
// Quit reachable from every state. It owns the current Session and the
// high score, and is advanced one fixed tick at a time by the platform.
type Machine struct {
	cfg       core.RuntimeConfig
	physics   Physics
	gateway   Gateway
	logger    *log.Logger
	high      HighScore
	session   *Session
	state     State
	newRecord bool
	collision Collision
	round     int
}

// NewMachine creates a machine in the Menu state and loads the high score
// through gw. A failed load is logged and the record starts at 0.
// gw and logger may be nil.
func NewMachine(cfg core.RuntimeConfig, gw Gateway, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	high, err := LoadHighScore(gw)
	if err != nil {
		logger.Warn("could not load high score, starting from 0", "error", err)
	}

	m := &Machine{
		cfg:     cfg,
		physics: DefaultPhysics(),
		gateway: gw,
		logger:  logger,
		high:    high,
	}
	// The menu shows an idle field behind the title.
	m.session = NewSession(cfg, m.roundSeed())
	return m
}

// SetPhysics replaces the integration constants. Used by tests.
func (m *Machine) SetPhysics(p Physics) {
	m.physics = p
}

// Resize records a new screen size. The round in progress keeps its field;
// the size applies from the next round.
func (m *Machine) Resize(screenW, screenH int) {
	m.cfg.ScreenW = screenW
	m.cfg.ScreenH = screenH
	if m.state == StateMenu {
		m.session = NewSession(m.cfg, m.roundSeed())
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Session returns the current round. Callers must not mutate it.
func (m *Machine) Session() *Session {
	return m.session
}

// HighScore returns the current record.
func (m *Machine) HighScore() int {
	return m.high.Value()
}

// Tick advances the game by one fixed step with the input collected for it.
//
// While playing, the order is: physics, world scroll, collision check, then
// either game over or scoring. Menu and GameOver only look at input.
func (m *Machine) Tick(in core.Input) Snapshot {
	if m.state == StateQuit {
		return m.Snapshot()
	}
	if in == core.InputQuit {
		m.quit()
		return m.Snapshot()
	}

	switch m.state {
	case StateMenu:
		if in == core.InputJump || in == core.InputRetry {
			m.startRound()
			m.step(in == core.InputJump)
		}
	case StatePlaying:
		m.step(in == core.InputJump)
	case StateGameOver:
		if in == core.InputRetry {
			m.startRound()
		}
	}
	return m.Snapshot()
}

// startRound replaces the session with a fresh one.
func (m *Machine) startRound() {
	m.round++
	m.session = NewSession(m.cfg, m.roundSeed())
	m.session.Running = true
	m.state = StatePlaying
	m.newRecord = false
	m.collision = CollisionNone
	m.logger.Debug("round started", "round", m.round, "field", m.session.FieldW, "rows", m.session.FieldH)
}

// roundSeed derives a per-round seed so that retries get new pipes while a
// fixed configured seed still replays the same sequence of rounds.
func (m *Machine) roundSeed() int64 {
	return m.cfg.Seed + int64(m.round)
}

// step runs one playing tick.
func (m *Machine) step(jumped bool) {
	s := m.session
	s.Ticks++

	if m.physics.Advance(&s.Bird, jumped, m.cfg.DT(), s.FieldH) == ContactCeiling {
		m.logger.Debug("bird at ceiling", "tick", s.Ticks)
	}

	s.World.Tick(s.Ticks)

	if c := Check(s.Bird, s.World.Obstacles(), s.FieldH); c != CollisionNone {
		m.endRound(c)
		return
	}

	s.Score = UpdateScore(s.World.Obstacles(), s.Bird.X, s.Score)
}

// endRound moves to GameOver and settles the high score.
func (m *Machine) endRound(c Collision) {
	m.session.Running = false
	m.state = StateGameOver
	m.collision = c
	m.settle()

	m.logger.Info("round over",
		"round", m.round,
		"score", m.session.Score,
		"cause", c,
		"ticks", m.session.Ticks,
		"record", m.newRecord,
	)
}

// settle compares the round's score with the record. A failed write is not
// fatal: it is logged and retried on quit.
func (m *Machine) settle() {
	newRecord, err := m.high.Finalize(m.session.Score, m.gateway)
	m.newRecord = newRecord
	if err != nil {
		m.logger.Warn("could not save high score", "score", m.session.Score, "error", err)
	}
}

// quit ends the game. A round still in progress is abandoned without
// touching the record; only a pending record write is flushed.
func (m *Machine) quit() {
	m.session.Running = false
	m.state = StateQuit

	if err := m.high.Flush(m.gateway); err != nil {
		m.logger.Error("high score lost on exit", "score", m.high.Value(), "error", err)
	}
	m.logger.Debug("quit", "rounds", m.round, "high", m.high.Value())
}

// Snapshot copies the current state for rendering.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	obstacles := make([]Obstacle, len(s.World.Obstacles()))
	copy(obstacles, s.World.Obstacles())

	return Snapshot{
		State:     m.state,
		Bird:      s.Bird,
		Obstacles: obstacles,
		Score:     s.Score,
		HighScore: m.high.Value(),
		NewRecord: m.newRecord,
		Collision: m.collision,
		Ticks:     s.Ticks,
		Round:     m.round,
		FieldW:    s.FieldW,
		FieldH:    s.FieldH,
	}
}
