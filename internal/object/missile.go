package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Missile tuning.
const (
	MissileSpeed  = MinRockSize / 3
	MissilePoints = 500
)

var missileShape = []physics.Point{
	{X: 0, Y: -4}, {X: 1, Y: -3}, {X: 1, Y: 3}, {X: 2, Y: 4},
	{X: -2, Y: 4}, {X: -1, Y: 3}, {X: -1, Y: -3},
}

// Missile is the saucer's guided missile. It turns to face the ship every tick.
type Missile struct {
	Sprite
	counter int
}

// NewMissile creates an inactive missile.
func NewMissile() *Missile {
	m := &Missile{}
	m.Shape = append([]physics.Point(nil), missileShape...)
	return m
}

// Counter returns the remaining lifetime.
func (m *Missile) Counter() int { return m.counter }

// MissileLifetime returns how many ticks a missile flies on the given playfield.
func MissileLifetime(f Playfield) int {
	return 3 * max(f.Width, f.Height) / MinRockSize
}

// Launch fires the missile from (x, y).
func (m *Missile) Launch(ctx *UpdateContext, x, y float64) {
	m.Active = true
	m.place(x, y)
	m.Render(ctx.Field)
	m.counter = MissileLifetime(ctx.Field)
	ctx.Sound.Loop(CueMissile)
}

// Stop removes the missile.
func (m *Missile) Stop(ctx *UpdateContext) {
	m.Active = false
	m.counter = 0
	ctx.Sound.Stop(CueMissile)
}

// Update steers and moves the missile and resolves photon and ship hits.
func (m *Missile) Update(ctx *UpdateContext) {
	if !m.Active {
		return
	}
	m.counter--
	if m.counter <= 0 {
		m.Stop(ctx)
		return
	}

	m.guide(ctx)
	m.Advance(ctx.Field)
	m.Render(ctx.Field)

	for i := range ctx.Photons.Sprites {
		p := &ctx.Photons.Sprites[i]
		if p.Active && m.Collides(p) {
			ctx.Sound.Play(CueCrash)
			ctx.Explosions.Explode(ctx, &m.Sprite)
			m.Stop(ctx)
			ctx.Score += MissilePoints
			break
		}
	}

	ship := ctx.Ship
	if m.Active && ship.Vulnerable() && ship.Collides(&m.Sprite) {
		ctx.destroyShip()
	}
}

// guide points the missile straight at the ship. The turn is instant, so the
// missile never overshoots; it only gives up when the ship is out of play.
func (m *Missile) guide(ctx *UpdateContext) {
	ship := ctx.Ship
	if !ship.Vulnerable() {
		return
	}

	dx := ship.X - m.X
	dy := ship.Y - m.Y

	// Bearing in y-up terms: 0 = right, pi/2 = up
	var bearing float64
	switch {
	case dx == 0 && dy == 0:
		bearing = 0
	case dx == 0:
		if dy < 0 {
			bearing = math.Pi / 2
		} else {
			bearing = -math.Pi / 2
		}
	default:
		bearing = math.Atan(math.Abs(dy / dx))
		if dy > 0 {
			bearing = -bearing
		}
		if dx < 0 {
			bearing = math.Pi - bearing
		}
	}

	// Sprite angles measure from straight up
	m.Angle = bearing - math.Pi/2
	hx, hy := heading(m.Angle)
	m.DX = MissileSpeed * hx
	m.DY = MissileSpeed * hy
}
