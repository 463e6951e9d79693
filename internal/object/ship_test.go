package object

import (
	"math"
	"testing"
)

func TestThrustRaisesSpeedUpToCap(t *testing.T) {
	ctx, sound := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Controls = Controls{Thrust: true}

	prev := ctx.Ship.DY
	for i := 0; i < 30; i++ {
		ctx.Ship.Update(ctx)
		if ctx.Ship.DY < prev {
			t.Fatalf("tick %d: DY dropped from %v to %v", i, prev, ctx.Ship.DY)
		}
		prev = ctx.Ship.DY
	}
	if ctx.Ship.DY != 15 {
		t.Fatalf("DY = %v, want it to hold at 15", ctx.Ship.DY)
	}
	if ctx.Ship.DX != 0 {
		t.Fatalf("DX = %v, want 0", ctx.Ship.DX)
	}
	if !sound.looping[CueThrusters] {
		t.Fatalf("thrusters should be looping while thrust is held")
	}

	ctx.Controls = Controls{}
	ctx.Ship.Update(ctx)
	if sound.looping[CueThrusters] {
		t.Fatalf("thrusters should stop when thrust is released")
	}
	if ctx.Ship.DY != 15 {
		t.Fatalf("ship should coast without drag, DY = %v", ctx.Ship.DY)
	}
}

func TestThrustClampsEachAxis(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Ship.Angle = math.Pi / 4
	ctx.Controls = Controls{Thrust: true}

	for i := 0; i < 60; i++ {
		ctx.Ship.Update(ctx)
	}
	s := ctx.Ship
	if math.Abs(s.DX) >= ShipMaxSpeed || math.Abs(s.DY) >= ShipMaxSpeed {
		t.Fatalf("component over limit: (%v, %v)", s.DX, s.DY)
	}
	if speed := math.Hypot(s.DX, s.DY); speed <= ShipMaxSpeed {
		t.Fatalf("diagonal speed %v should exceed the per-axis limit %v", speed, ShipMaxSpeed)
	}
}

func TestReverseThrust(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Controls = Controls{Reverse: true}
	ctx.Ship.Update(ctx)
	if ctx.Ship.DY != -1 {
		t.Fatalf("DY = %v, want -1", ctx.Ship.DY)
	}
}

func TestRotation(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)

	ctx.Controls = Controls{Left: true}
	ctx.Ship.Update(ctx)
	if math.Abs(ctx.Ship.Angle-ShipTurn) > 1e-9 {
		t.Fatalf("angle after left = %v, want %v", ctx.Ship.Angle, ShipTurn)
	}

	ctx.Controls = Controls{Right: true}
	ctx.Ship.Update(ctx)
	ctx.Ship.Update(ctx)
	if want := 2*math.Pi - ShipTurn; math.Abs(ctx.Ship.Angle-want) > 1e-9 {
		t.Fatalf("angle after two rights = %v, want %v", ctx.Ship.Angle, want)
	}
}

func TestShipRespawnsInvulnerable(t *testing.T) {
	ctx, sound := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Ship.X, ctx.Ship.Y, ctx.Ship.DX = 50, 60, 3

	ctx.destroyShip()
	if ctx.Ship.Active {
		t.Fatalf("ship should be inactive after destruction")
	}
	if ctx.Lives != MaxShips-1 {
		t.Fatalf("lives = %d, want %d", ctx.Lives, MaxShips-1)
	}
	if sound.count(CueCrash) != 1 {
		t.Fatalf("crash cue played %d times, want 1", sound.count(CueCrash))
	}
	if ctx.Explosions.ActiveCount() == 0 {
		t.Fatalf("destroying the ship should leave debris")
	}

	for i := 1; i < ExplodeTicks; i++ {
		if ctx.Ship.Update(ctx) {
			t.Fatalf("game over reported with lives left")
		}
		if ctx.Ship.Active {
			t.Fatalf("ship respawned early at tick %d", i)
		}
	}
	ctx.Ship.Update(ctx)
	s := ctx.Ship
	if !s.Active {
		t.Fatalf("ship should respawn after %d ticks", ExplodeTicks)
	}
	if s.X != 0 || s.Y != 0 || s.DX != 0 || s.DY != 0 {
		t.Fatalf("respawned ship at (%v,%v) moving (%v,%v), want origin at rest", s.X, s.Y, s.DX, s.DY)
	}
	if s.Vulnerable() || s.HyperTicks() != HyperTicks {
		t.Fatalf("respawned ship should be invulnerable for %d ticks, got %d", HyperTicks, s.HyperTicks())
	}

	for i := 0; i < HyperTicks; i++ {
		ctx.Ship.Update(ctx)
	}
	if !s.Vulnerable() {
		t.Fatalf("invulnerability should wear off")
	}
}

func TestLastShipEndsGame(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Lives = 1
	ctx.Ship.Reset(ctx)
	ctx.destroyShip()
	if ctx.Lives != 0 {
		t.Fatalf("lives = %d, want 0", ctx.Lives)
	}

	for i := 1; i < ExplodeTicks; i++ {
		if ctx.Ship.Update(ctx) {
			t.Fatalf("game over reported before the explosion finished")
		}
	}
	if !ctx.Ship.Update(ctx) {
		t.Fatalf("game over expected once the last ship finished exploding")
	}
	if ctx.Ship.Active {
		t.Fatalf("no ship should respawn without lives")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Lives = 0
	ctx.Ship.Reset(ctx)
	ctx.destroyShip()
	if ctx.Lives != 0 {
		t.Fatalf("lives = %d, want 0", ctx.Lives)
	}
}

func TestHyperspace(t *testing.T) {
	ctx, sound := newTestContext(t)
	ctx.Ship.Reset(ctx)

	if !ctx.Ship.Hyperspace(ctx) {
		t.Fatalf("hyperspace refused for an active ship")
	}
	if ctx.Ship.Vulnerable() {
		t.Fatalf("ship should be invulnerable after hyperspace")
	}
	if sound.count(CueWarp) != 1 {
		t.Fatalf("warp cue played %d times, want 1", sound.count(CueWarp))
	}
	if ctx.Ship.Hyperspace(ctx) {
		t.Fatalf("hyperspace should be refused while already invulnerable")
	}

	ctx.Ship.Deactivate(ctx)
	if ctx.Ship.Hyperspace(ctx) {
		t.Fatalf("hyperspace should be refused without a ship")
	}
}
