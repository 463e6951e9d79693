// Package game runs one Asteroids game: mode transitions, scoring and the per-tick update order.
package game

import (
	"math/rand"

	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Scoring thresholds.
const (
	NewShipPoints   = 5000 // Bonus ship every time the score passes a multiple of this
	NewSaucerPoints = 2750 // Saucer encounter every time the score passes a multiple of this
)

// Mode is the top-level game phase.
type Mode int

const (
	ModeGameOver Mode = iota // Attract mode: a wave drifts, no ship
	ModePlaying
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModeGameOver:
		return "game over"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Command is a one-shot player action.
type Command int

const (
	CmdFire Command = iota
	CmdHyperspace
	CmdPause
	CmdMute
	CmdDetail
	CmdStart
)

func (c Command) String() string {
	switch c {
	case CmdFire:
		return "fire"
	case CmdHyperspace:
		return "hyperspace"
	case CmdPause:
		return "pause"
	case CmdMute:
		return "mute"
	case CmdDetail:
		return "detail"
	case CmdStart:
		return "start"
	default:
		return "unknown"
	}
}

// Audio plays cues and follows the game's mute and pause state.
type Audio interface {
	object.Sound
	SetMuted(muted bool)
	SetPaused(paused bool)
}

type nopAudio struct{ object.NopSound }

func (nopAudio) SetMuted(bool)  {}
func (nopAudio) SetPaused(bool) {}

// Options configures a Director. The zero value is a silent game with detail off.
type Options struct {
	Rand      *rand.Rand // Nil uses a fixed seed
	Audio     Audio      // Nil plays nothing
	HighScore *HighScore // Shared between games; nil keeps a private one
	Detail    bool
	Muted     bool
}

// Director owns the entity controllers and sequences one game.
// It is not safe for concurrent use; one goroutine drives Tick and HandleCommand.
type Director struct {
	ctx   *object.UpdateContext
	audio Audio
	high  *HighScore
	mode  Mode
	muted bool
	stars []physics.Point

	newShipScore   int
	newSaucerScore int
}

// New creates a Director in attract mode with a wave drifting across the playfield.
func New(field object.Playfield, opts Options) *Director {
	audio := opts.Audio
	if audio == nil {
		audio = nopAudio{}
	}
	high := opts.HighScore
	if high == nil {
		high = NewHighScore()
	}

	ctx := object.NewUpdateContext(field, opts.Rand, audio)
	ctx.Detail = opts.Detail

	d := &Director{
		ctx:   ctx,
		audio: audio,
		high:  high,
		muted: opts.Muted,
	}
	d.audio.SetMuted(d.muted)

	d.stars = make([]physics.Point, field.Width*field.Height/5000)
	for i := range d.stars {
		d.stars[i] = physics.Point{
			X: int(ctx.Rand.Float64() * float64(field.Width)),
			Y: int(ctx.Rand.Float64() * float64(field.Height)),
		}
	}

	d.initGame()
	d.endGame()
	return d
}

// initGame resets every controller and starts a new game.
func (d *Director) initGame() {
	c := d.ctx
	c.Score = 0
	c.Lives = object.MaxShips
	d.newShipScore = NewShipPoints
	d.newSaucerScore = NewSaucerPoints

	c.Ship.Reset(c)
	c.Photons.Reset()
	c.Saucer.Stop(c)
	c.Missile.Stop(c)
	c.Asteroids.Reset()
	c.Asteroids.SpawnWave(c)
	c.Explosions.Reset()

	d.mode = ModePlaying
	d.audio.SetPaused(false)
}

// endGame drops into attract mode. The remaining asteroids keep drifting.
func (d *Director) endGame() {
	c := d.ctx
	d.mode = ModeGameOver
	c.Ship.Deactivate(c)
	c.Saucer.Stop(c)
	c.Missile.Stop(c)
}

// HandleCommand applies a one-shot command. Commands that make no sense in the
// current mode are ignored.
func (d *Director) HandleCommand(cmd Command) {
	c := d.ctx
	switch cmd {
	case CmdFire:
		if d.mode == ModePlaying {
			c.Photons.Fire(c)
		}
	case CmdHyperspace:
		if d.mode == ModePlaying {
			c.Ship.Hyperspace(c)
		}
	case CmdPause:
		switch d.mode {
		case ModePlaying:
			d.mode = ModePaused
			d.audio.SetPaused(true)
		case ModePaused:
			d.mode = ModePlaying
			d.audio.SetPaused(false)
		}
	case CmdMute:
		d.muted = !d.muted
		d.audio.SetMuted(d.muted)
	case CmdDetail:
		c.Detail = !c.Detail
	case CmdStart:
		if d.mode == ModeGameOver {
			d.initGame()
		}
	}
}

// SetControls sets the held flags used by the next tick.
func (d *Director) SetControls(in object.Controls) {
	d.ctx.Controls = in
}

// Tick advances the game by one fixed step. Nothing moves while paused.
func (d *Director) Tick() {
	if d.mode == ModePaused {
		return
	}
	c := d.ctx

	if d.mode == ModePlaying && c.Ship.Update(c) {
		d.endGame()
	}
	c.Photons.Update(c)
	c.Saucer.Update(c)
	c.Missile.Update(c)
	c.Asteroids.Update(c)
	c.Explosions.Update(c)

	d.high.Submit(c.Score)

	for c.Score > d.newShipScore {
		c.Lives++
		d.newShipScore += NewShipPoints
	}

	if d.mode == ModePlaying && c.Score > d.newSaucerScore && !c.Saucer.Active {
		d.newSaucerScore += NewSaucerPoints
		c.Saucer.Launch(c, object.SaucerPasses)
	}

	c.Asteroids.Restock(c)
}

// Mode returns the current game phase.
func (d *Director) Mode() Mode { return d.mode }

// Score returns the current score.
func (d *Director) Score() int { return d.ctx.Score }

// Lives returns the ships left, including the one in play.
func (d *Director) Lives() int { return d.ctx.Lives }

// HighScore returns the best score seen by the shared high score table.
func (d *Director) HighScore() int { return d.high.Best() }

// Muted reports whether sound is muted.
func (d *Director) Muted() bool { return d.muted }

// Detail reports whether graphics detail is on.
func (d *Director) Detail() bool { return d.ctx.Detail }

// Field returns the playfield size.
func (d *Director) Field() object.Playfield { return d.ctx.Field }
