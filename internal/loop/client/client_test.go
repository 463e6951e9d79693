package client

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/loop/server"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// instant replaces the wall-clock scheduler so Run does not sleep.
func instant(c *Client) {
	c.scheduler = &loop.Scheduler{
		Interval: config.TickInterval,
		Now:      time.Now,
		Sleep:    func(ctx context.Context, d time.Duration) error { return ctx.Err() },
	}
}

// newTestClient creates a client whose input never ends until the test does.
func newTestClient(t *testing.T, srv *server.Server) (*Client, *bytes.Buffer) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out bytes.Buffer
	c := NewClient(srv, bufio.NewReader(pr), &out, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Username:     "tester",
		Rand:         rand.New(rand.NewSource(3)),
		Detail:       true,
	})
	instant(c)
	return c, &out
}

func TestRunStartsGameThenEndsOnEOF(t *testing.T) {
	srv := server.NewServer(nil)
	var out bytes.Buffer
	c := NewClient(srv, bufio.NewReader(strings.NewReader("s")), &out, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Rand:         rand.New(rand.NewSource(1)),
	})
	instant(c)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.director.Mode(); got != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", got)
	}
	if srv.Players() != 0 {
		t.Fatal("client should unregister when it ends")
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Fatalf("expected HUD in output")
	}
}

func TestRunQuitKey(t *testing.T) {
	srv := server.NewServer(nil)
	var out bytes.Buffer
	pr, pw := io.Pipe()
	defer pw.Close()
	go pw.Write([]byte("q"))

	c := NewClient(srv, bufio.NewReader(pr), &out, ClientOptions{TermSizeFunc: fixedSize(80, 24)})
	instant(c)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := c.director.Mode(); got != game.ModeGameOver {
		t.Fatalf("mode = %v, want game over", got)
	}
}

func TestRunCancelled(t *testing.T) {
	srv := server.NewServer(nil)
	c, _ := newTestClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want deadline exceeded", err)
	}
	if srv.Players() != 0 {
		t.Fatal("client should unregister when cancelled")
	}
}

func TestShutdownCountsDown(t *testing.T) {
	srv := server.NewServer(nil)
	c, out := newTestClient(t, srv)

	c.director.HandleCommand(game.CmdStart)
	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}

	frames := 0
	var err error
	for err == nil && frames < 1000 {
		err = c.frame()
		frames++
	}
	if !errors.Is(err, loop.ErrStop) {
		t.Fatalf("got %v, want ErrStop", err)
	}
	want := int(config.ShutdownDisplaySeconds / config.TickInterval.Seconds())
	if frames < want-1 || frames > want+1 {
		t.Fatalf("stopped after %d frames, want about %d", frames, want)
	}
	if c.director.Mode() != game.ModePaused {
		t.Fatalf("mode = %v, want paused during shutdown", c.director.Mode())
	}
	if !strings.Contains(out.String(), "SERVER SHUTTING DOWN") {
		t.Fatal("expected shutdown screen")
	}
}

func TestServerDropEndsSession(t *testing.T) {
	srv := server.NewServer(nil)
	c, _ := newTestClient(t, srv)

	srv.UnregisterClient(c.handle.ID)
	if err := c.frame(); !errors.Is(err, loop.ErrStop) {
		t.Fatalf("got %v, want ErrStop", err)
	}
}

func TestInactivity(t *testing.T) {
	srv := server.NewServer(nil)
	c, out := newTestClient(t, srv)
	c.idleTimeout = true

	start := time.Unix(5000, 0)
	now := start
	c.now = func() time.Time { return now }
	c.lastInput = start

	now = start.Add(60 * time.Second)
	if stop := c.processInput(); stop || c.state.isInactive {
		t.Fatal("should still be active after 60s")
	}

	now = start.Add(95 * time.Second)
	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if !c.state.isInactive {
		t.Fatal("expected inactivity warning after 95s")
	}
	if !strings.Contains(out.String(), "disconnected in 25 seconds") {
		t.Fatalf("expected countdown in output")
	}

	now = start.Add(125 * time.Second)
	if stop := c.processInput(); !stop {
		t.Fatal("expected disconnect after 125s")
	}
}

func TestInactivityDisabled(t *testing.T) {
	srv := server.NewServer(nil)
	c, _ := newTestClient(t, srv)

	c.now = func() time.Time { return c.lastInput.Add(time.Hour) }
	if stop := c.processInput(); stop || c.state.isInactive {
		t.Fatal("local sessions never time out")
	}
}

func TestOverlays(t *testing.T) {
	srv := server.NewServer(nil)
	c, out := newTestClient(t, srv)
	c.now = func() time.Time { return time.UnixMilli(0) }

	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	for _, want := range []string{title, "Game Over", "'S' to Start", "High: 0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	c.director.HandleCommand(game.CmdStart)
	c.director.HandleCommand(game.CmdPause)
	c.director.HandleCommand(game.CmdMute)
	out.Reset()
	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "\033[H\033[2J") {
		t.Error("mode change should clear the screen")
	}
	for _, want := range []string{"Game Paused", "Ships: 3", "Mute"} {
		if !strings.Contains(s, want) {
			t.Errorf("paused screen missing %q", want)
		}
	}
	if strings.Contains(s, "Game Over") {
		t.Error("paused screen still shows game over")
	}
}

func TestLeaderboardNeedsCompany(t *testing.T) {
	srv := server.NewServer(nil)
	c, out := newTestClient(t, srv)
	srv.ReportScore(c.handle.ID, 1200)

	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if strings.Contains(out.String(), "Pilots Online") {
		t.Fatal("leaderboard shown to a lone player")
	}

	other := srv.RegisterClient("ace")
	srv.ReportScore(other.ID, 9000)
	out.Reset()
	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if !strings.Contains(out.String(), "Pilots Online") || !strings.Contains(out.String(), "ace") {
		t.Fatal("expected leaderboard with the other pilot")
	}
}

func TestResizeClearsAndRescales(t *testing.T) {
	srv := server.NewServer(nil)
	c, out := newTestClient(t, srv)

	width := 100
	c.termSizeFunc = func() (int, int, error) { return width, 40, nil }
	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}

	width = 200
	out.Reset()
	if err := c.frame(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\033[H\033[2J") {
		t.Fatal("resize should clear the terminal")
	}
	if got := c.canvas.TerminalWidth(); got != config.MaxTermWidth {
		t.Fatalf("canvas width = %d, want %d", got, config.MaxTermWidth)
	}
	if got := c.canvas.OffsetCol(); got != (200-config.MaxTermWidth)/2 {
		t.Fatalf("offset = %d", got)
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{config.MaxTermWidth, config.MaxTermHeight, config.MaxTermWidth, config.MaxTermHeight, 0, 0},
		{config.MaxTermWidth + 11, config.MaxTermHeight + 4, config.MaxTermWidth, config.MaxTermHeight, 5, 2},
	}
	for _, tt := range tests {
		rw, rh, oc, or := clampTermSize(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}
