package object

import (
	"math"

	"github.com/tomz197/vectoroids/internal/physics"
)

// Asteroid field tuning.
const (
	MaxRocks     = 8 // Pool size; a wave fills every slot
	MinRockSides = 8 // Vertex count range, upper bound exclusive
	MaxRockSides = 12
	MinRockSize  = 20 // Vertex radius range for large rocks, upper bound exclusive
	MaxRockSize  = 40
	MinRockSpeed = 2 // Wave speed cap starts here
	MaxRockSpeed = 12
	StormPause   = 30 // Ticks between clearing the field and the next wave

	BigPoints   = 25
	SmallPoints = 50
)

// AsteroidField is the fixed pool of asteroids plus the wave and difficulty bookkeeping.
type AsteroidField struct {
	Sprites [MaxRocks]Sprite
	small   [MaxRocks]bool
	left    int // Active asteroids
	counter int // Countdown to the next wave once the field is empty
	speed   int // Current speed cap
}

// NewAsteroidField creates an empty field at the starting difficulty.
func NewAsteroidField() *AsteroidField {
	f := &AsteroidField{}
	f.Reset()
	return f
}

// Reset clears the field and drops the speed cap back to its minimum.
func (f *AsteroidField) Reset() {
	for i := range f.Sprites {
		f.Sprites[i].Active = false
		f.small[i] = false
	}
	f.left = 0
	f.counter = 0
	f.speed = MinRockSpeed
}

// Left returns the number of active asteroids.
func (f *AsteroidField) Left() int { return f.left }

// Speed returns the current speed cap.
func (f *AsteroidField) Speed() int { return f.speed }

// IsSmall reports whether slot i holds a fragment.
func (f *AsteroidField) IsSmall(i int) bool { return f.small[i] }

// SpawnWave fills every slot with a large asteroid entering from a playfield edge,
// then raises the speed cap for the next wave.
func (f *AsteroidField) SpawnWave(ctx *UpdateContext) {
	w, h := ctx.Field.Width, ctx.Field.Height
	speed := float64(f.speed)

	for i := range f.Sprites {
		a := &f.Sprites[i]
		a.Shape = jaggedShape(a.Shape[:0], ctx, 1)
		a.Active = true
		a.Angle = 0
		a.DeltaAngle = (ctx.Rand.Float64() - 0.5) / 10

		if ctx.coinFlip() {
			a.X = -float64(w / 2)
			if ctx.coinFlip() {
				a.X = float64(w / 2)
			}
			a.Y = ctx.randomIn(h)
		} else {
			a.X = ctx.randomIn(w)
			a.Y = -float64(h / 2)
			if ctx.coinFlip() {
				a.Y = float64(h / 2)
			}
		}

		a.DX = ctx.Rand.Float64() * speed
		if ctx.coinFlip() {
			a.DX = -a.DX
		}
		a.DY = ctx.Rand.Float64() * speed
		if ctx.coinFlip() {
			a.DY = -a.DY
		}

		a.Render(ctx.Field)
		f.small[i] = false
	}

	f.counter = StormPause
	f.left = MaxRocks
	if f.speed < MaxRockSpeed {
		f.speed++
	}
}

// jaggedShape builds an irregular rock outline: vertices evenly spaced by angle,
// each at its own random radius. divisor 2 produces a fragment-sized rock.
func jaggedShape(dst []physics.Point, ctx *UpdateContext, divisor int) []physics.Point {
	sides := MinRockSides + int(ctx.Rand.Float64()*(MaxRockSides-MinRockSides))
	for j := 0; j < sides; j++ {
		theta := 2 * math.Pi / float64(sides) * float64(j)
		r := float64((MinRockSize + int(ctx.Rand.Float64()*(MaxRockSize-MinRockSize))) / divisor)
		sin, cos := math.Sincos(theta)
		dst = append(dst, physics.Point{
			X: -int(math.Round(r * sin)),
			Y: int(math.Round(r * cos)),
		})
	}
	return dst
}

// spawnFragments breaks asteroid n into up to two small ones, using the lowest-numbered
// inactive slots. Returns how many fragments were created.
func (f *AsteroidField) spawnFragments(ctx *UpdateContext, n int) int {
	x, y := f.Sprites[n].X, f.Sprites[n].Y
	speed := float64(f.speed)

	count := 0
	for i := 0; i < MaxRocks && count < 2; i++ {
		a := &f.Sprites[i]
		if a.Active {
			continue
		}
		a.Shape = jaggedShape(a.Shape[:0], ctx, 2)
		a.Active = true
		a.Angle = 0
		a.DeltaAngle = (ctx.Rand.Float64() - 0.5) / 10
		a.X, a.Y = x, y
		a.DX = ctx.Rand.Float64()*2*speed - speed
		a.DY = ctx.Rand.Float64()*2*speed - speed
		a.Render(ctx.Field)
		f.small[i] = true
		f.left++
		count++
	}
	return count
}

// Update moves the asteroids and resolves photon hits and ship collisions.
func (f *AsteroidField) Update(ctx *UpdateContext) {
	photons := ctx.Photons
	ship := ctx.Ship

	for i := range f.Sprites {
		a := &f.Sprites[i]
		if !a.Active {
			continue
		}
		a.Advance(ctx.Field)
		a.Render(ctx.Field)

		for j := range photons.Sprites {
			p := &photons.Sprites[j]
			if !p.Active || !a.Active || !a.Collides(p) {
				continue
			}
			f.left--
			a.Active = false
			p.Active = false
			ctx.Sound.Play(CueExplosion)
			ctx.Explosions.Explode(ctx, a)
			if f.small[i] {
				ctx.Score += SmallPoints
			} else {
				ctx.Score += BigPoints
				f.spawnFragments(ctx, i)
			}
		}

		if ship.Vulnerable() && a.Active && a.Collides(&ship.Sprite) {
			ctx.destroyShip()
		}
	}
}

// Restock counts down the pause after the field is cleared and spawns the next wave.
// Returns true when a wave was spawned.
func (f *AsteroidField) Restock(ctx *UpdateContext) bool {
	if f.left > 0 {
		return false
	}
	f.counter--
	if f.counter > 0 {
		return false
	}
	f.SpawnWave(ctx)
	return true
}

// ActiveCount returns the number of active slots.
func (f *AsteroidField) ActiveCount() int {
	return countActive(f.Sprites[:])
}
