// Package server tracks the sessions connected to one process and the state they share.
package server

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation, enabling testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	HighScore() *game.HighScore
	TopScores(n int) []TopScoreEntry
	Players() int
}

// Server is the registry of connected sessions. Each session runs its own game;
// the server holds the high score they compete for and broadcasts shutdown.
type Server struct {
	high         *game.HighScore
	clients      map[int]*ClientHandle
	nextClientID int
	mu           sync.RWMutex
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)
	best     int              // Best score reported this session, guarded by Server.mu
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// NewServer creates a new server. A nil logger discards output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		high:         game.NewHighScore(),
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
	}
}

// HighScore returns the high score shared by every session.
func (s *Server) HighScore() *game.HighScore {
	return s.high
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	if r := []rune(username); len(r) > config.MaxUsernameLength {
		username = string(r[:config.MaxUsernameLength])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle

	s.logger.Debug("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)

	s.logger.Debug("client unregistered", "id", clientID, "user", handle.Username, "best", handle.best)
}

// ReportScore records a client's current score for the leaderboard.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok && score > handle.best {
		handle.best = score
	}
}

// TopScores returns up to n connected clients ordered by their best score.
// Clients that have not scored yet are left out.
func (s *Server) TopScores(n int) []TopScoreEntry {
	s.mu.RLock()
	entries := make([]TopScoreEntry, 0, len(s.clients))
	for _, handle := range s.clients {
		if handle.best > 0 {
			entries = append(entries, TopScoreEntry{Username: handle.Username, Score: handle.best, clientID: handle.ID})
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Shutdown notifies all connected clients and waits for them to disconnect
// (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.logger.Info("shutdown announced", "players", len(s.clients))
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "players", s.Players())
			return
		case <-ticker.C:
		}
	}
}
