// Package input turns a raw terminal byte stream into held keys and one-shot commands.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Must exceed the tick interval plus the terminal's auto-repeat gap.
const keyHoldDuration = 100 * time.Millisecond

// Input represents the current tick's input state.
type Input struct {
	// Held flags, true while the key keeps repeating
	Left    bool
	Right   bool
	Thrust  bool
	Reverse bool

	// One-shot commands, true if the key was pressed since the last read
	Fire       bool
	Hyperspace bool
	Pause      bool
	Mute       bool
	Detail     bool
	Start      bool
	Quit       bool

	Pressed []byte // Raw bytes read this tick
	Closed  bool   // The underlying reader has ended
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	thrust  time.Time
	reverse time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInput(s, time.Now())
}

func readInput(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	input := Input{Pressed: buf, Closed: s.closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.thrust = now
			case 'B':
				s.state.reverse = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByte(s, &input, b, now)
	}

	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Thrust = now.Sub(s.state.thrust) < keyHoldDuration
	input.Reverse = now.Sub(s.state.reverse) < keyHoldDuration
	return input
}

// applyByte records a single key press.
func applyByte(s *Stream, input *Input, b byte, now time.Time) {
	switch b {
	case 'j', 'J':
		s.state.left = now
	case 'l', 'L':
		s.state.right = now
	case 'i', 'I':
		s.state.thrust = now
	case 'k', 'K':
		s.state.reverse = now
	case ' ':
		input.Fire = true
	case 'h', 'H':
		input.Hyperspace = true
	case 'p', 'P':
		input.Pause = true
	case 'm', 'M':
		input.Mute = true
	case 'd', 'D':
		input.Detail = true
	case 's', 'S', '\r', '\n':
		input.Start = true
	case 'q', 'Q', '\x03':
		input.Quit = true
	}
}

// ResetKeyInput forgets held keys, so a key held across a game start does not carry over.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}
