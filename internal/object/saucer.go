package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Saucer tuning.
const (
	SaucerPasses = 3 // Passes per encounter
	SaucerPoints = 250
	MissileRange = 4 * MaxRockSize // Minimum distance to the ship before firing
	MissileOdds  = 0.03            // Chance per tick of firing when allowed
)

var saucerShape = []physics.Point{
	{X: -15, Y: 0}, {X: -10, Y: -5}, {X: -5, Y: -5}, {X: -5, Y: -9}, {X: 5, Y: -9},
	{X: 5, Y: -5}, {X: 10, Y: -5}, {X: 15, Y: 0}, {X: 10, Y: 5}, {X: -10, Y: 5},
}

// Saucer is the hostile craft that crosses the playfield and launches guided missiles.
type Saucer struct {
	Sprite
	counter int // Ticks left in the current pass
	passes  int // Passes left, including the current one
}

// NewSaucer creates an inactive saucer.
func NewSaucer() *Saucer {
	s := &Saucer{}
	s.Shape = append([]physics.Point(nil), saucerShape...)
	return s
}

// Passes returns the passes left in the current encounter.
func (s *Saucer) Passes() int { return s.passes }

// Launch starts an encounter of the given number of passes.
func (s *Saucer) Launch(ctx *UpdateContext, passes int) {
	s.passes = passes
	s.spawn(ctx)
}

// spawn starts one pass from the left or right edge.
func (s *Saucer) spawn(ctx *UpdateContext) {
	w := ctx.Field.Width
	s.Active = true
	s.place(-float64(w/2), ctx.randomIn(ctx.Field.Height))
	s.DX = MinRockSpeed + ctx.Rand.Float64()*(MaxRockSpeed-MinRockSpeed)
	if ctx.coinFlip() {
		s.DX = -s.DX
		s.X = float64(w / 2)
	}
	s.DY = MinRockSpeed + ctx.Rand.Float64()*(MaxRockSpeed-MinRockSpeed)
	if ctx.coinFlip() {
		s.DY = -s.DY
	}
	s.Render(ctx.Field)
	ctx.Sound.Loop(CueSaucer)

	s.counter = int(math.Floor(float64(w) / math.Abs(s.DX)))
}

// Stop removes the saucer and ends the encounter.
func (s *Saucer) Stop(ctx *UpdateContext) {
	s.Active = false
	s.counter = 0
	s.passes = 0
	ctx.Sound.Stop(CueSaucer)
}

// Update moves the saucer, checks for photon hits and decides whether to fire a missile.
func (s *Saucer) Update(ctx *UpdateContext) {
	if !s.Active {
		return
	}
	s.Advance(ctx.Field)
	s.Render(ctx.Field)

	s.counter--
	if s.counter <= 0 {
		s.passes--
		if s.passes > 0 {
			s.spawn(ctx)
		} else {
			s.Stop(ctx)
		}
		return
	}

	for i := range ctx.Photons.Sprites {
		p := &ctx.Photons.Sprites[i]
		if p.Active && s.Collides(p) {
			ctx.Sound.Play(CueCrash)
			ctx.Explosions.Explode(ctx, &s.Sprite)
			s.Stop(ctx)
			ctx.Score += SaucerPoints
			return
		}
	}

	ship := ctx.Ship
	if !ship.Vulnerable() || ctx.Missile.Active {
		return
	}
	if physics.ChebyshevDistance(s.X, s.Y, ship.X, ship.Y) > MissileRange && ctx.Rand.Float64() < MissileOdds {
		ctx.Missile.Launch(ctx, s.X, s.Y)
	}
}
