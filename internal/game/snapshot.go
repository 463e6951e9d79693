package game

import (
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Kind identifies what a Shape is a picture of.
type Kind int

const (
	KindPhoton Kind = iota
	KindMissile
	KindAsteroid
	KindSaucer
	KindShip
	KindDebris
)

// Shape is one polygon to draw, in playfield pixels with the origin at the top left.
type Shape struct {
	Kind       Kind
	Points     physics.Polygon
	Brightness uint8 // 0 is invisible, 255 is full white
	Filled     bool  // Occludes whatever was drawn before it
}

// Snapshot is everything a renderer needs for one frame.
// Point slices alias the Director's state and are only valid until the next Tick.
type Snapshot struct {
	Field     object.Playfield
	Mode      Mode
	Score     int
	HighScore int
	Lives     int
	Muted     bool
	Detail    bool
	Stars     []physics.Point // Empty when detail is off
	Shapes    []Shape         // In back-to-front draw order
}

// Snapshot fills dst with the current frame, reusing its slices.
func (d *Director) Snapshot(dst *Snapshot) {
	c := d.ctx
	dst.Field = c.Field
	dst.Mode = d.mode
	dst.Score = c.Score
	dst.HighScore = d.high.Best()
	dst.Lives = c.Lives
	dst.Muted = d.muted
	dst.Detail = c.Detail

	dst.Stars = dst.Stars[:0]
	if c.Detail {
		dst.Stars = append(dst.Stars, d.stars...)
	}

	shapes := dst.Shapes[:0]
	add := func(kind Kind, s *object.Sprite, brightness int, filled bool) {
		if !s.Active {
			return
		}
		shapes = append(shapes, Shape{
			Kind:       kind,
			Points:     s.Polygon,
			Brightness: uint8(max(0, min(brightness, 255))),
			Filled:     filled,
		})
	}

	for i := range c.Photons.Sprites {
		add(KindPhoton, &c.Photons.Sprites[i], 255, false)
	}
	add(KindMissile, &c.Missile.Sprite, c.Missile.Counter()*24, false)
	for i := range c.Asteroids.Sprites {
		add(KindAsteroid, &c.Asteroids.Sprites[i], 255, c.Detail)
	}
	add(KindSaucer, &c.Saucer.Sprite, 255, c.Detail)
	hyper := c.Ship.HyperTicks()
	add(KindShip, &c.Ship.Sprite, 255-(255/object.HyperTicks)*hyper, c.Detail && hyper == 0)
	for i := range c.Explosions.Sprites {
		add(KindDebris, &c.Explosions.Sprites[i], (255/object.ScrapTicks)*c.Explosions.Counter(i), false)
	}
	dst.Shapes = shapes
}
