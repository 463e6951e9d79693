// Package client runs one game session against a terminal.
package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/loop/server"
	"github.com/tomz197/vectoroids/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	director     *game.Director
	state        *ClientState
	snapshot     game.Snapshot
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	scheduler    *loop.Scheduler
	now          func() time.Time
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	idleTimeout  bool
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Audio        game.Audio  // Nil plays nothing
	Logger       *log.Logger // Nil discards
	Rand         *rand.Rand  // Nil seeds from the clock
	Detail       bool
	Muted        bool
	IdleTimeout  bool // Warn, then disconnect, sessions without input
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	handle := gs.RegisterClient(opts.Username)
	director := game.New(object.Playfield{Width: config.PlayfieldWidth, Height: config.PlayfieldHeight}, game.Options{
		Rand:      rng,
		Audio:     opts.Audio,
		HighScore: gs.HighScore(),
		Detail:    opts.Detail,
		Muted:     opts.Muted,
	})

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		director:     director,
		state:        NewClientState(director.Mode()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		scheduler:    loop.New(config.TickInterval),
		now:          time.Now,
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		idleTimeout:  opts.IdleTimeout,
		logger:       logger.With("user", opts.Username),
	}
}

// Run starts the client loop. Blocks until the player quits, the input ends,
// the server shuts down or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.logger.Info("session started", "players", c.server.Players())
	err := c.scheduler.Run(ctx, c.frame)

	// Unregister from server
	c.server.UnregisterClient(c.handle.ID)
	c.logger.Info("session ended", "score", c.director.Score(), "high", c.director.HighScore())

	draw.ClearScreen(c.writer)
	return err
}

// frame runs one tick: input, simulation, then drawing.
func (c *Client) frame() error {
	stop := c.processInput()
	if c.processServerEvents() {
		stop = true
	}
	if c.state.shutdown {
		c.state.shutdownTimer -= c.scheduler.Interval.Seconds()
		if c.state.shutdownTimer <= 0 {
			stop = true
		}
	}

	c.applyInput()

	before := c.director.Mode()
	c.director.Tick()
	c.server.ReportScore(c.handle.ID, c.director.Score())
	if before == game.ModePlaying && c.director.Mode() == game.ModeGameOver {
		c.logger.Info("game over", "score", c.director.Score())
	}

	c.updateScreen()
	if err := c.drawFrame(); err != nil {
		return err
	}

	if stop {
		return loop.ErrStop
	}
	return nil
}

// processInput reads input and tracks inactivity. Reports whether the session should end.
func (c *Client) processInput() bool {
	c.state.Input = input.ReadInput(c.inputStream)

	now := c.now()
	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case len(c.state.Input.Pressed) > 0:
		c.lastInput = now
		c.state.isInactive = false
	case c.idleTimeout && idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive session")
		return true
	case c.idleTimeout && idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	return c.state.Input.Quit || c.state.Input.Closed
}

// applyInput hands this tick's keys to the director. Only quit works during shutdown.
func (c *Client) applyInput() {
	in := c.state.Input
	if c.state.shutdown {
		in = input.Input{}
	}
	c.director.SetControls(object.Controls{
		Left:    in.Left,
		Right:   in.Right,
		Thrust:  in.Thrust,
		Reverse: in.Reverse,
	})

	if in.Start && c.director.Mode() == game.ModeGameOver {
		input.ResetKeyInput(c.inputStream)
		c.logger.Debug("game started")
	}

	commands := []struct {
		pressed bool
		cmd     game.Command
	}{
		{in.Start, game.CmdStart},
		{in.Pause, game.CmdPause},
		{in.Mute, game.CmdMute},
		{in.Detail, game.CmdDetail},
		{in.Hyperspace, game.CmdHyperspace},
		{in.Fire, game.CmdFire},
	}
	for _, cmd := range commands {
		if cmd.pressed {
			c.director.HandleCommand(cmd.cmd)
		}
	}
}

// processServerEvents handles events from the server. Reports whether the server dropped us.
func (c *Client) processServerEvents() bool {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				return true
			}
			if event.Type == server.EventServerShutdown && !c.state.shutdown {
				c.state.shutdown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
				if c.director.Mode() == game.ModePlaying {
					c.director.HandleCommand(game.CmdPause)
				}
			}
		default:
			return false
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
