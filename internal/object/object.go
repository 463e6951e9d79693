// Package object holds the sprite model and the per-category entity controllers.
package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Playfield is the size of the wrapping game area. Positions are centred on the origin,
// so the playfield spans [-Width/2, Width/2) horizontally and [-Height/2, Height/2) vertically.
type Playfield struct {
	Width  int
	Height int
}

// WrapPosition wraps x and y around the playfield edges (Asteroids-style).
func (f Playfield) WrapPosition(x, y *float64) {
	*x = wrap(*x, float64(f.Width))
	*y = wrap(*y, float64(f.Height))
}

// wrap maps v into [-size/2, size/2).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	half := size / 2
	v = math.Mod(v+half, size)
	if v < 0 {
		v += size
	}
	return v - half
}

// Sprite is a rotatable polygon that moves across the playfield.
// Every entity category uses this one type; behaviour lives in the controllers.
type Sprite struct {
	Shape      []physics.Point // Template centred on the local origin
	Active     bool
	Angle      float64 // Radians, 0 = nose up, increases counter-clockwise
	DeltaAngle float64 // Spin per tick
	X, Y       float64 // Position, screen orientation (y grows downwards)
	DX, DY     float64 // Velocity per tick (DY grows upwards)

	// Polygon is the template rotated and moved to the current position.
	// Only valid right after Render.
	Polygon physics.Polygon
}

// Advance applies one tick of spin and velocity, wrapping angle and position.
func (s *Sprite) Advance(f Playfield) {
	s.Angle = math.Mod(s.Angle+s.DeltaAngle, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
	s.X += s.DX
	s.Y -= s.DY
	f.WrapPosition(&s.X, &s.Y)
}

// Render recomputes Polygon from Shape, Angle and the current position.
func (s *Sprite) Render(f Playfield) {
	sin, cos := math.Sincos(s.Angle)
	cx := int(math.Round(s.X)) + f.Width/2
	cy := int(math.Round(s.Y)) + f.Height/2

	s.Polygon = s.Polygon[:0]
	for _, p := range s.Shape {
		x, y := float64(p.X), float64(p.Y)
		s.Polygon = append(s.Polygon, physics.Point{
			X: int(math.Round(x*cos+y*sin)) + cx,
			Y: int(math.Round(y*cos-x*sin)) + cy,
		})
	}
}

// Collides reports whether two rendered sprites overlap.
func (s *Sprite) Collides(o *Sprite) bool {
	return physics.IsColliding(s.Polygon, o.Polygon)
}

// place resets motion and moves the sprite to (x, y).
func (s *Sprite) place(x, y float64) {
	s.Angle = 0
	s.DeltaAngle = 0
	s.X, s.Y = x, y
	s.DX, s.DY = 0, 0
}

// heading returns the unit vector the sprite's nose points along (DY grows upwards).
func heading(angle float64) (dx, dy float64) {
	return -math.Sin(angle), math.Cos(angle)
}

// Controls are the held flags sampled once per tick.
type Controls struct {
	Left    bool
	Right   bool
	Thrust  bool
	Reverse bool
}

// UpdateContext is the shared game state handed to every controller operation.
// The controllers hold only their own pools; everything they share lives here.
type UpdateContext struct {
	Field    Playfield
	Rand     *rand.Rand
	Sound    Sound
	Controls Controls
	Detail   bool // Graphics detail: denser explosions and a starfield

	Score int
	Lives int

	Ship       *Ship
	Photons    *Photons
	Asteroids  *AsteroidField
	Saucer     *Saucer
	Missile    *Missile
	Explosions *Explosions
}

// NewUpdateContext creates the controllers for a playfield.
// A nil rng uses a time-independent default source; a nil sound plays nothing.
func NewUpdateContext(field Playfield, rng *rand.Rand, sound Sound) *UpdateContext {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if sound == nil {
		sound = NopSound{}
	}
	return &UpdateContext{
		Field:      field,
		Rand:       rng,
		Sound:      sound,
		Detail:     true,
		Ship:       NewShip(),
		Photons:    NewPhotons(),
		Asteroids:  NewAsteroidField(),
		Saucer:     NewSaucer(),
		Missile:    NewMissile(),
		Explosions: NewExplosions(),
	}
}

// randomIn returns a uniform value in [-size/2, size/2).
func (c *UpdateContext) randomIn(size int) float64 {
	return c.Rand.Float64()*float64(size) - float64(size/2)
}

// coinFlip returns true half of the time.
func (c *UpdateContext) coinFlip() bool {
	return c.Rand.Float64() < 0.5
}

// destroyShip blows up the ship and calls off any saucer attack.
func (c *UpdateContext) destroyShip() {
	c.Sound.Play(CueCrash)
	c.Explosions.Explode(c, &c.Ship.Sprite)
	c.Ship.destroy(c)
	c.Saucer.Stop(c)
	c.Missile.Stop(c)
}
