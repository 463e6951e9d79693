package object

import (
	"math"
	"testing"
)

// parkSaucer starts an encounter and holds the saucer still at (x, y).
func parkSaucer(ctx *UpdateContext, x, y float64) *Saucer {
	s := ctx.Saucer
	s.Launch(ctx, SaucerPasses)
	s.place(x, y)
	s.counter = 1 << 20
	s.Render(ctx.Field)
	return s
}

func TestSaucerLaunch(t *testing.T) {
	ctx, sound := newTestContext(t)
	s := ctx.Saucer
	s.Launch(ctx, SaucerPasses)

	if !s.Active || s.Passes() != SaucerPasses {
		t.Fatalf("active = %v, passes = %d", s.Active, s.Passes())
	}
	if math.Abs(s.X) != float64(testField.Width/2) {
		t.Fatalf("saucer enters at X = %v, want a side edge", s.X)
	}
	if (s.X < 0) != (s.DX > 0) {
		t.Fatalf("saucer at X = %v moves with DX = %v, away from the playfield", s.X, s.DX)
	}
	for _, v := range []float64{s.DX, s.DY} {
		if a := math.Abs(v); a < MinRockSpeed || a >= MaxRockSpeed {
			t.Fatalf("velocity component %v outside [%d, %d)", v, MinRockSpeed, MaxRockSpeed)
		}
	}
	if want := int(float64(testField.Width) / math.Abs(s.DX)); s.counter != want {
		t.Fatalf("pass length = %d, want %d", s.counter, want)
	}
	if !sound.looping[CueSaucer] {
		t.Fatalf("saucer cue should loop during a pass")
	}
}

func TestSaucerPasses(t *testing.T) {
	ctx, sound := newTestContext(t)
	s := ctx.Saucer
	s.Launch(ctx, SaucerPasses)

	ticks := 0
	for s.Active {
		s.Update(ctx)
		ticks++
		if ticks > 10000 {
			t.Fatalf("saucer never left")
		}
	}
	if s.Passes() != 0 {
		t.Fatalf("passes = %d after the encounter, want 0", s.Passes())
	}
	if sound.looping[CueSaucer] {
		t.Fatalf("saucer cue should stop with the encounter")
	}
}

func TestSaucerStartsNextPass(t *testing.T) {
	ctx, _ := newTestContext(t)
	s := ctx.Saucer
	s.Launch(ctx, SaucerPasses)
	s.counter = 1

	s.Update(ctx)
	if !s.Active || s.Passes() != SaucerPasses-1 {
		t.Fatalf("active = %v, passes = %d, want a second pass", s.Active, s.Passes())
	}

	s.passes = 1
	s.counter = 1
	s.Update(ctx)
	if s.Active {
		t.Fatalf("saucer should leave after the last pass")
	}
}

func TestShootSaucer(t *testing.T) {
	ctx, sound := newTestContext(t)
	s := parkSaucer(ctx, 0, 50)
	shoot(ctx, 0, 50)

	s.Update(ctx)

	if s.Active || s.Passes() != 0 {
		t.Fatalf("a hit saucer ends the encounter")
	}
	if ctx.Score != SaucerPoints {
		t.Fatalf("score = %d, want %d", ctx.Score, SaucerPoints)
	}
	if sound.count(CueCrash) != 1 {
		t.Fatalf("crash cue played %d times, want 1", sound.count(CueCrash))
	}
	if ctx.Explosions.ActiveCount() == 0 {
		t.Fatalf("a hit saucer should leave debris")
	}
}

func TestSaucerFiresFromRange(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	s := parkSaucer(ctx, -200, 0)

	for i := 0; i < 1000 && !ctx.Missile.Active; i++ {
		s.Update(ctx)
	}
	if !ctx.Missile.Active {
		t.Fatalf("saucer never fired")
	}
	if ctx.Missile.X != s.X || ctx.Missile.Y != s.Y {
		t.Fatalf("missile launched from (%v, %v), want the saucer position", ctx.Missile.X, ctx.Missile.Y)
	}
}

func TestSaucerHoldsFireUpClose(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	s := parkSaucer(ctx, -MissileRange+10, 0)

	for i := 0; i < 1000; i++ {
		s.Update(ctx)
	}
	if ctx.Missile.Active {
		t.Fatalf("saucer fired within %d of the ship", MissileRange)
	}
}

func TestSaucerHoldsFireAtInvulnerableShip(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Ship.hyper = 1 << 20
	s := parkSaucer(ctx, -200, 0)

	for i := 0; i < 1000; i++ {
		s.Update(ctx)
	}
	if ctx.Missile.Active {
		t.Fatalf("saucer fired at an invulnerable ship")
	}
}
