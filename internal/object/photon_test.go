package object

import (
	"math/rand"
	"testing"
)

func TestPhotonExpiresAfterLifetime(t *testing.T) {
	ctx := NewUpdateContext(Playfield{Width: 300, Height: 200}, rand.New(rand.NewSource(1)), nil)
	ctx.Ship.Reset(ctx)

	slot := ctx.Photons.Fire(ctx)
	if slot < 0 {
		t.Fatalf("fire refused with an active ship")
	}
	if got := ctx.Photons.Counter(slot); got != 10 {
		t.Fatalf("lifetime = %d, want 10", got)
	}

	for i := 1; i <= 10; i++ {
		ctx.Photons.Update(ctx)
		if !ctx.Photons.Sprites[slot].Active {
			t.Fatalf("photon expired early after %d ticks", i)
		}
	}
	ctx.Photons.Update(ctx)
	if ctx.Photons.Sprites[slot].Active {
		t.Fatalf("photon still active after 11 ticks")
	}
}

func TestPhotonFollowsShipHeading(t *testing.T) {
	ctx, sound := newTestContext(t)
	ctx.Ship.Reset(ctx)

	slot := ctx.Photons.Fire(ctx)
	p := ctx.Photons.Sprites[slot]
	if p.DX != 0 || p.DY != PhotonSpeed {
		t.Fatalf("velocity = (%v, %v), want (0, %d)", p.DX, p.DY, PhotonSpeed)
	}
	if p.X != ctx.Ship.X || p.Y != ctx.Ship.Y {
		t.Fatalf("photon starts at (%v, %v), want the ship position", p.X, p.Y)
	}
	if sound.count(CueFire) != 1 {
		t.Fatalf("fire cue played %d times, want 1", sound.count(CueFire))
	}
}

func TestFireWithoutShip(t *testing.T) {
	ctx, sound := newTestContext(t)
	if slot := ctx.Photons.Fire(ctx); slot != -1 {
		t.Fatalf("Fire() = %d without a ship, want -1", slot)
	}
	if ctx.Photons.ActiveCount() != 0 || len(sound.played) != 0 {
		t.Fatalf("nothing should happen without a ship")
	}
}

func TestPhotonPoolReusesOldestSlot(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)

	want := []int{1, 2, 3, 4, 5, 0, 1, 2}
	for i, w := range want {
		if got := ctx.Photons.Fire(ctx); got != w {
			t.Fatalf("shot %d went to slot %d, want %d", i, got, w)
		}
		if n := ctx.Photons.ActiveCount(); n > MaxShots {
			t.Fatalf("%d photons active, pool holds %d", n, MaxShots)
		}
	}
	if n := ctx.Photons.ActiveCount(); n != MaxShots {
		t.Fatalf("%d photons active, want a full pool", n)
	}
}

func TestPhotonReset(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Ship.Reset(ctx)
	ctx.Photons.Fire(ctx)
	ctx.Photons.Fire(ctx)

	ctx.Photons.Reset()
	if ctx.Photons.ActiveCount() != 0 {
		t.Fatalf("photons still active after reset")
	}
	if got := ctx.Photons.Fire(ctx); got != 1 {
		t.Fatalf("first shot after reset went to slot %d, want 1", got)
	}
}
