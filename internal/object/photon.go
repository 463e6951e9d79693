package object

import (
	"github.com/tomz197/vectoroids/internal/physics"
)

// MaxShots is the photon pool size. Firing with a full pool reuses the oldest slot.
const MaxShots = 6

// PhotonSpeed is how far a photon travels per tick.
const PhotonSpeed = MinRockSize

var photonShape = []physics.Point{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

// Photons is the fixed pool of shots fired by the ship.
// Hits are detected by the things being shot at, not by the photons.
type Photons struct {
	Sprites  [MaxShots]Sprite
	counters [MaxShots]int
	next     int
}

// NewPhotons creates an empty photon pool.
func NewPhotons() *Photons {
	p := &Photons{}
	for i := range p.Sprites {
		p.Sprites[i].Shape = append([]physics.Point(nil), photonShape...)
	}
	return p
}

// Reset deactivates every photon.
func (p *Photons) Reset() {
	for i := range p.Sprites {
		p.Sprites[i].Active = false
		p.counters[i] = 0
	}
	p.next = 0
}

// Lifetime returns how many ticks a photon lives on the given playfield.
// It bounds the travel distance to about the playfield's shorter side.
func Lifetime(f Playfield) int {
	return min(f.Width, f.Height) / MinRockSize
}

// Fire launches a photon from the ship along its heading.
// Returns the slot used, or -1 if the ship is not in play.
func (p *Photons) Fire(ctx *UpdateContext) int {
	ship := ctx.Ship
	if !ship.Active {
		return -1
	}
	ctx.Sound.Play(CueFire)

	p.next = (p.next + 1) % MaxShots
	s := &p.Sprites[p.next]
	s.Active = true
	s.place(ship.X, ship.Y)
	dx, dy := heading(ship.Angle)
	s.DX = PhotonSpeed * dx
	s.DY = PhotonSpeed * dy
	s.Render(ctx.Field)
	p.counters[p.next] = Lifetime(ctx.Field)
	return p.next
}

// Update moves active photons and retires expired ones.
func (p *Photons) Update(ctx *UpdateContext) {
	for i := range p.Sprites {
		s := &p.Sprites[i]
		if !s.Active {
			continue
		}
		s.Advance(ctx.Field)
		s.Render(ctx.Field)
		p.counters[i]--
		if p.counters[i] < 0 {
			s.Active = false
		}
	}
}

// Counter returns the remaining lifetime of slot i.
func (p *Photons) Counter(i int) int {
	return p.counters[i]
}

// ActiveCount returns the number of photons in flight.
func (p *Photons) ActiveCount() int {
	return countActive(p.Sprites[:])
}

func countActive(sprites []Sprite) int {
	n := 0
	for i := range sprites {
		if sprites[i].Active {
			n++
		}
	}
	return n
}
