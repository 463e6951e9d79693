package game

import (
	"testing"

	"github.com/tomz197/vectoroids/internal/object"
)

func findKind(s *Snapshot, kind Kind) *Shape {
	for i := range s.Shapes {
		if s.Shapes[i].Kind == kind {
			return &s.Shapes[i]
		}
	}
	return nil
}

func TestSnapshotStatus(t *testing.T) {
	d, _ := newTestDirector(t)
	d.HandleCommand(CmdStart)
	d.HandleCommand(CmdMute)
	d.ctx.Score = 1234
	d.Tick()

	var snap Snapshot
	d.Snapshot(&snap)
	if snap.Mode != ModePlaying || snap.Score != 1234 || snap.HighScore != 1234 {
		t.Fatalf("status = %+v", snap)
	}
	if snap.Lives != object.MaxShips || !snap.Muted || !snap.Detail || snap.Field != testField {
		t.Fatalf("status = %+v", snap)
	}
}

func TestSnapshotShipFadesInAfterHyperspace(t *testing.T) {
	d, _ := newTestDirector(t)
	d.HandleCommand(CmdStart)

	var snap Snapshot
	d.Snapshot(&snap)
	ship := findKind(&snap, KindShip)
	if ship == nil || ship.Brightness != 255 || !ship.Filled {
		t.Fatalf("a vulnerable ship is drawn solid and full white, got %+v", ship)
	}

	d.HandleCommand(CmdHyperspace)
	d.Snapshot(&snap)
	ship = findKind(&snap, KindShip)
	if want := uint8(255 - (255/object.HyperTicks)*object.HyperTicks); ship.Brightness != want {
		t.Fatalf("brightness right after hyperspace = %d, want %d", ship.Brightness, want)
	}
	if ship.Filled {
		t.Fatalf("an invulnerable ship is drawn as an outline")
	}
}

func TestSnapshotDebrisFades(t *testing.T) {
	d, _ := newTestDirector(t)
	d.HandleCommand(CmdStart)
	d.ctx.Explosions.Explode(d.ctx, &d.ctx.Ship.Sprite)

	var snap Snapshot
	d.Snapshot(&snap)
	first := findKind(&snap, KindDebris)
	if first == nil {
		t.Fatalf("no debris in the snapshot")
	}
	start := first.Brightness

	d.HandleCommand(CmdPause)
	d.HandleCommand(CmdPause)
	d.Tick()
	d.Snapshot(&snap)
	if later := findKind(&snap, KindDebris); later == nil || later.Brightness >= start {
		t.Fatalf("debris should fade over time")
	}
}

func TestSnapshotReusesBuffers(t *testing.T) {
	d, _ := newTestDirector(t)
	var snap Snapshot
	d.Snapshot(&snap)
	d.Snapshot(&snap)
	if n := countKind(&snap, KindAsteroid); n != object.MaxRocks {
		t.Fatalf("%d asteroids after two snapshots, want %d", n, object.MaxRocks)
	}
}
