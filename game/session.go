// Package game runs one play session: level lifecycle, the per-tick motion
// resolution against the maze walls, and the feedback triggers the outer
// shell (audio, toasts, coins UI) hangs off of.
package game

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dkolarov/kindermaze/config"
	"github.com/dkolarov/kindermaze/layout"
	"github.com/dkolarov/kindermaze/maze"
)

// Timing constants, in seconds of simulated tick time.
const (
	// HurtWindow rate-limits blocked-move feedback under sustained wall
	// pressure.
	HurtWindow = 0.22
	// HurtFlash is how long the character keeps its hurt tint.
	HurtFlash = 0.35
	// GoalDelay is the pause on the goal cell before the next maze.
	GoalDelay = 0.9
	// PlayerRadiusFrac sizes the character disc relative to a cell.
	PlayerRadiusFrac = 0.30
)

// Feedback receives the session's side-effect triggers. Implementations must
// not block the tick; sound, vibration and toasts all live behind this.
type Feedback interface {
	OnBlockedMove()
	OnGoalReached()
}

// NopFeedback ignores everything.
type NopFeedback struct{}

func (NopFeedback) OnBlockedMove() {}
func (NopFeedback) OnGoalReached() {}

// Player is the dragged character. Position is continuous pixel space; Cell
// tracks which maze cell that position maps to.
type Player struct {
	X, Y   float64
	Cell   maze.Point
	Radius float64
	Hurt   float64 // seconds of hurt tint left, render hint
}

// Session owns the state of one run: current maze, player, coin count and
// the per-level latches. Input handlers only record the drag target; every
// mutation of the player happens in Tick, on the single tick goroutine.
type Session struct {
	Cfg      *config.Config
	Feedback Feedback

	Age   int
	Level int
	Coins int
	Seed  uint32

	Maze    *maze.Maze
	Metrics layout.Metrics
	Player  Player

	targetX, targetY float64
	dragging         bool

	won          bool
	goalWait     float64
	hurtCooldown float64
}

// NewSession wires a session with its config and collaborators. The maze is
// built on the first StartLevel.
func NewSession(cfg *config.Config, fb Feedback) *Session {
	if fb == nil {
		fb = NopFeedback{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	return &Session{
		Cfg:      cfg,
		Feedback: fb,
		Age:      cfg.StartAge,
		Level:    1,
		Seed:     seed,
	}
}

// StartLevel builds a fresh maze for the given age and puts the player on
// the start cell center. All per-level latches reset here.
func (s *Session) StartLevel(age int) {
	size := s.Cfg.SizeForAge(age)
	s.Age = age
	s.Seed++
	s.Maze = maze.Generate(size, size, s.Seed)
	s.won = false
	s.goalWait = 0
	s.hurtCooldown = 0
	s.dragging = false
	s.Player.Hurt = 0
	s.Player.Cell = s.Maze.Start
	s.anchorPlayer()
	log.WithFields(log.Fields{
		"age":   age,
		"size":  size,
		"seed":  s.Seed,
		"level": s.Level,
	}).Info("level start")
}

// SetMetrics installs the current canvas mapping. When it changes mid-level
// (window resize) the player is re-anchored on its tracked cell so wall
// checks keep working against the new geometry.
func (s *Session) SetMetrics(met layout.Metrics) {
	if met == s.Metrics {
		return
	}
	s.Metrics = met
	s.anchorPlayer()
}

func (s *Session) anchorPlayer() {
	if s.Maze == nil {
		return
	}
	s.Player.X, s.Player.Y = s.Metrics.CellCenter(s.Player.Cell.X, s.Player.Cell.Y)
	s.Player.Radius = s.Metrics.CellSize * PlayerRadiusFrac
}

// Drag records the latest pointer target. Called from input handlers; it
// never touches the player itself.
func (s *Session) Drag(x, y float64) {
	s.targetX, s.targetY = x, y
	s.dragging = true
}

// Release ends the drag; the character stops where it is.
func (s *Session) Release() { s.dragging = false }

// Dragging reports whether a pointer currently pulls the character.
func (s *Session) Dragging() bool { return s.dragging }

// Won reports the latched goal state, for render overlays.
func (s *Session) Won() bool { return s.won }

// Tick advances the simulation by dt seconds: one motion resolution, hurt
// rate limiting, goal detection and the post-goal level switch. It is the
// only place the player moves.
func (s *Session) Tick(dt float64) {
	if s.Maze == nil || s.Metrics.CellSize <= 0 {
		return
	}
	if s.hurtCooldown > 0 {
		s.hurtCooldown -= dt
	}
	if s.Player.Hurt > 0 {
		s.Player.Hurt -= dt
	}

	if s.won {
		s.goalWait -= dt
		if s.goalWait <= 0 {
			s.Level++
			s.StartLevel(s.Age)
		}
		return
	}

	if s.dragging {
		x, y, blocked := Resolve(s.Maze, s.Metrics, s.Player.X, s.Player.Y, s.targetX, s.targetY)
		s.Player.X, s.Player.Y = x, y
		if blocked {
			s.hurt()
		}
	}

	if cx, cy, ok := s.Metrics.CellFromPoint(s.Player.X, s.Player.Y); ok {
		s.Player.Cell = maze.Point{X: cx, Y: cy}
	}

	if s.Player.Cell == s.Maze.Goal {
		s.won = true
		s.goalWait = GoalDelay
		s.Coins++
		s.Feedback.OnGoalReached()
		log.WithFields(log.Fields{"level": s.Level, "coins": s.Coins}).Info("goal reached")
	}
}

func (s *Session) hurt() {
	s.Player.Hurt = HurtFlash
	if s.hurtCooldown > 0 {
		return
	}
	s.hurtCooldown = HurtWindow
	s.Feedback.OnBlockedMove()
}
