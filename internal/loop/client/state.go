package client

import (
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/input"
)

// ClientState holds per-session screen state that is not part of the game itself.
type ClientState struct {
	Input         input.Input
	prevMode      game.Mode // Mode drawn last frame
	shutdown      bool      // Server is shutting down
	wasShutdown   bool
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	isInactive    bool    // Whether the client is in inactive warning state
	wasInactive   bool
}

// NewClientState creates client state for a game currently in the given mode.
func NewClientState(mode game.Mode) *ClientState {
	return &ClientState{prevMode: mode}
}

// screenChanged reports whether the overlay changed since the last call,
// which needs a full terminal clear.
func (s *ClientState) screenChanged(mode game.Mode) bool {
	changed := mode != s.prevMode || s.isInactive != s.wasInactive || s.shutdown != s.wasShutdown
	s.prevMode = mode
	s.wasInactive = s.isInactive
	s.wasShutdown = s.shutdown
	return changed
}
