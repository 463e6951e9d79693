package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Ship tuning, in ticks and playfield units.
const (
	MaxShips     = 3                 // Ships per game, including the one in play
	ShipTurn     = math.Pi / 16      // Rotation per tick while a turn key is held
	ShipMaxSpeed = 0.8 * MinRockSize // Per-axis velocity limit
	ExplodeTicks = 30                // Time between the ship blowing up and the next one
	HyperTicks   = 60                // Invulnerability after hyperspace or respawn
)

var shipShape = []physics.Point{{X: 0, Y: -10}, {X: 7, Y: 10}, {X: -7, Y: 10}}

// Ship is the player-controlled spaceship.
type Ship struct {
	Sprite
	counter int // Explosion countdown while inactive
	hyper   int // Invulnerability countdown while active
}

// NewShip creates an inactive ship.
func NewShip() *Ship {
	s := &Ship{}
	s.Shape = append([]physics.Point(nil), shipShape...)
	return s
}

// Reset puts a fresh, stationary ship at the centre of the playfield.
func (s *Ship) Reset(ctx *UpdateContext) {
	s.Active = true
	s.place(0, 0)
	s.Render(ctx.Field)
	s.hyper = 0
	ctx.Sound.Stop(CueThrusters)
}

// Deactivate takes the ship out of play without costing a life.
func (s *Ship) Deactivate(ctx *UpdateContext) {
	s.Active = false
	s.counter = 0
	ctx.Sound.Stop(CueThrusters)
}

// Vulnerable reports whether the ship can currently be hit.
func (s *Ship) Vulnerable() bool {
	return s.Active && s.hyper <= 0
}

// HyperTicks returns the remaining invulnerability ticks.
func (s *Ship) HyperTicks() int {
	return s.hyper
}

// Update steers and moves the ship, or runs down the explosion countdown.
// Returns true once the last ship has finished exploding.
func (s *Ship) Update(ctx *UpdateContext) (gameOver bool) {
	if !s.Active {
		s.counter--
		if s.counter > 0 {
			return false
		}
		if ctx.Lives <= 0 {
			return true
		}
		// Respawn as though arriving from hyperspace, giving the player time to move away
		s.Reset(ctx)
		s.hyper = HyperTicks
		return false
	}

	in := ctx.Controls
	if in.Left {
		s.Angle = math.Mod(s.Angle+ShipTurn, 2*math.Pi)
	}
	if in.Right {
		s.Angle -= ShipTurn
		if s.Angle < 0 {
			s.Angle += 2 * math.Pi
		}
	}

	dx, dy := heading(s.Angle)
	if in.Thrust {
		s.DX = thrust(s.DX, dx)
		s.DY = thrust(s.DY, dy)
	}
	if in.Reverse {
		s.DX = thrust(s.DX, -dx)
		s.DY = thrust(s.DY, -dy)
	}
	if in.Thrust || in.Reverse {
		ctx.Sound.Loop(CueThrusters)
	} else {
		ctx.Sound.Stop(CueThrusters)
	}

	s.Advance(ctx.Field)
	s.Render(ctx.Field)
	if s.hyper > 0 {
		s.hyper--
	}
	return false
}

// thrust adds delta to one velocity component unless that would leave the speed limit.
// Each axis is limited on its own, so the reachable speeds form a square, not a circle.
func thrust(v, delta float64) float64 {
	if n := v + delta; n > -ShipMaxSpeed && n < ShipMaxSpeed {
		return n
	}
	return v
}

// Hyperspace jumps the ship to a random spot and makes it briefly invulnerable.
func (s *Ship) Hyperspace(ctx *UpdateContext) bool {
	if !s.Active || s.hyper > 0 {
		return false
	}
	s.X = ctx.randomIn(ctx.Field.Width)
	s.Y = ctx.randomIn(ctx.Field.Height)
	s.Render(ctx.Field)
	s.hyper = HyperTicks
	ctx.Sound.Play(CueWarp)
	return true
}

// destroy starts the explosion countdown and spends a life.
func (s *Ship) destroy(ctx *UpdateContext) {
	s.Active = false
	s.counter = ExplodeTicks
	if ctx.Lives > 0 {
		ctx.Lives--
	}
	ctx.Sound.Stop(CueThrusters)
}
