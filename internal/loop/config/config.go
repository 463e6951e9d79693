// Package config centralizes the tunable frontend parameters.
package config

import "time"

// Playfield size in logical units. The canvas scales it to the terminal.
const (
	PlayfieldWidth  = 600
	PlayfieldHeight = 400
)

// TickInterval is the fixed simulation and frame period.
const TickInterval = 50 * time.Millisecond

// Max render resolution - caps terminal dimensions used for rendering.
// Larger terminals get a centred canvas with a border.
const (
	MaxTermWidth  = 150
	MaxTermHeight = 50
)

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player usernames
	TopScoreCount     = 5  // Entries on the game-over leaderboard
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
