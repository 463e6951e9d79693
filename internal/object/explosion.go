package object

import "math"

// Explosion tuning.
const (
	MaxScrap    = 20 // Debris pool size
	ScrapTicks  = 30 // Debris lifetime
	sparseSides = 6  // Shapes with at least this many sides shed every other edge when detail is off
)

// Explosions is the fixed pool of debris segments. Debris is cosmetic and never collides.
type Explosions struct {
	Sprites  [MaxScrap]Sprite
	counters [MaxScrap]int
	next     int
}

// NewExplosions creates an empty debris pool.
func NewExplosions() *Explosions {
	return &Explosions{}
}

// Reset deactivates all debris.
func (e *Explosions) Reset() {
	for i := range e.Sprites {
		e.Sprites[i].Active = false
		e.Sprites[i].Shape = e.Sprites[i].Shape[:0]
		e.counters[i] = 0
	}
	e.next = 0
}

// Counter returns the remaining lifetime of slot i.
func (e *Explosions) Counter(i int) int {
	return e.counters[i]
}

// Explode breaks src into one debris segment per edge (every other edge when detail is
// off). Segments fly outward from the source's centre and overwrite the oldest debris
// when the pool is full. Returns the number of segments created.
func (e *Explosions) Explode(ctx *UpdateContext, src *Sprite) int {
	src.Render(ctx.Field)
	n := len(src.Shape)
	step := 2
	if ctx.Detail || n < sparseSides {
		step = 1
	}

	cx := math.Round(src.X) + float64(ctx.Field.Width/2)
	cy := math.Round(src.Y) + float64(ctx.Field.Height/2)

	created := 0
	for i := 0; i < n; i += step {
		e.next = (e.next + 1) % MaxScrap
		d := &e.Sprites[e.next]
		d.Active = true
		d.Shape = append(d.Shape[:0], src.Shape[i], src.Shape[(i+1)%n])
		d.Angle = src.Angle
		d.DeltaAngle = (ctx.Rand.Float64()*2*math.Pi - math.Pi) / 15
		d.X, d.Y = src.X, src.Y

		// Drift along the vertex's offset from the centre, flipped into y-up velocity
		d.DX = (float64(src.Polygon[i].X) - cx) / 5
		d.DY = -(float64(src.Polygon[i].Y) - cy) / 5
		d.Render(ctx.Field)
		e.counters[e.next] = ScrapTicks
		created++
	}
	return created
}

// Update moves debris and retires expired segments.
func (e *Explosions) Update(ctx *UpdateContext) {
	for i := range e.Sprites {
		d := &e.Sprites[i]
		if !d.Active {
			continue
		}
		d.Advance(ctx.Field)
		d.Render(ctx.Field)
		e.counters[i]--
		if e.counters[i] < 0 {
			d.Active = false
		}
	}
}

// ActiveCount returns the number of debris segments in flight.
func (e *Explosions) ActiveCount() int {
	return countActive(e.Sprites[:])
}
