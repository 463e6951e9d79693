package client

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/loop/config"
)

// blinkPeriod is how long the start prompt stays on or off.
const blinkPeriod = 600 * time.Millisecond

const (
	title        = "A S T E R O I D S"
	controlsHelp = "Arrows/IJKL Fly  Space Fire  H Hyperspace  P Pause  M Mute  D Detail  Q Quit"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	c.director.Snapshot(&c.snapshot)
	snap := &c.snapshot

	// On overlay transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if c.state.screenChanged(snap.Mode) {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Clear()

	for _, star := range snap.Stars {
		c.canvas.Plot(float64(star.X), float64(star.Y), 255)
	}

	for _, shape := range snap.Shapes {
		pts := c.canvas.BorrowPoints(len(shape.Points))
		for i, p := range shape.Points {
			pts[i] = draw.Point{X: float64(p.X), Y: float64(p.Y)}
		}
		if shape.Filled {
			c.canvas.FillPolygon(pts, 0)
		}
		if shape.Brightness > 0 {
			c.canvas.DrawPolygon(pts, shape.Brightness)
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(snap)

	return c.chunkWriter.Flush()
}

// text writes s at a canvas position and marks the cells so the canvas repaints them
// once the text is gone.
func (c *Client) text(col, row int, s string) {
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, utf8.RuneCountInString(s))
}

// centered writes s horizontally centred on the given row.
func (c *Client) centered(row int, s string) {
	c.text((c.canvas.TerminalWidth()-utf8.RuneCountInString(s))/2+1, row, s)
}

// drawUI draws the text overlay.
func (c *Client) drawUI(snap *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerY := termHeight / 2

	c.drawHUD(termWidth, termHeight, snap)

	if c.state.shutdown {
		c.drawShutdownScreen(centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch snap.Mode {
	case game.ModeGameOver:
		c.drawGameOverScreen(centerY)
	case game.ModePaused:
		c.centered(centerY, "Game Paused")
	}
}

// drawHUD draws the status line in the four corners.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth, termHeight int, snap *game.Snapshot) {
	c.text(2, 1, fmt.Sprintf("Score: %-8d", snap.Score))

	highText := fmt.Sprintf("High: %-8d", snap.HighScore)
	c.text(termWidth-len(highText), 1, highText)

	c.text(2, termHeight, fmt.Sprintf("Ships: %-3d", snap.Lives))

	if snap.Muted {
		c.text(termWidth-len("Mute"), termHeight, "Mute")
	}
}

// drawGameOverScreen draws the title, start prompt and leaderboard.
func (c *Client) drawGameOverScreen(centerY int) {
	c.centered(centerY-4, title)
	c.centered(centerY-2, "Game Over")

	// Blinking start prompt
	if c.now().UnixMilli()/blinkPeriod.Milliseconds()%2 == 0 {
		c.centered(centerY, "'S' to Start")
	}

	c.centered(centerY+2, controlsHelp)

	top := c.server.TopScores(config.TopScoreCount)
	if c.server.Players() < 2 || len(top) == 0 {
		return
	}
	c.centered(centerY+4, "Pilots Online")
	for i, entry := range top {
		c.centered(centerY+5+i, fmt.Sprintf("%-*s %8d", config.MaxUsernameLength, entry.Username, entry.Score))
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	c.centered(centerY-2, "INACTIVITY WARNING")

	left := config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds()
	c.centered(centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(max(left, 0)),
	))

	c.centered(centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.centered(centerY-3, "SERVER SHUTTING DOWN")
	c.centered(centerY-1, "The server is restarting for maintenance.")
	c.centered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.centered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))

	c.centered(centerY+4, "Press Q to disconnect now")
}
