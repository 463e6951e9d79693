// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/vectoroids/internal/object"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes cues and mixes them onto the speaker. Before Init succeeds,
// or after Close, it tracks mute, pause and loop state but stays silent.
// Safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	loops   map[object.Cue]*beep.Ctrl
	wanted  map[object.Cue]bool // Loops the game has asked for
	muted   bool
	paused  bool
	enabled bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		loops:  make(map[object.Cue]*beep.Ctrl),
		wanted: make(map[object.Cue]bool),
	}
}

// Init opens the speaker. On error the player keeps working silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true

	// Start any loops requested before the speaker was available
	for _, cue := range object.Cues {
		if p.wanted[cue] {
			p.apply(cue)
		}
	}
	return nil
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	clear(p.loops)
	p.enabled = false
}

// Play starts a one-shot cue. Ignored while muted or paused.
func (p *Player) Play(cue object.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.muted || p.paused {
		return
	}
	s := oneShot(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Loop keeps a looping cue running until Stop.
func (p *Player) Loop(cue object.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wanted[cue] {
		return
	}
	p.wanted[cue] = true
	p.apply(cue)
}

// Stop ends a looping cue.
func (p *Player) Stop(cue object.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.wanted[cue] {
		return
	}
	p.wanted[cue] = false
	p.apply(cue)
}

// SetMuted silences everything. Unmuting resumes the loops that are still wanted.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.applyAll()
}

// SetPaused holds running loops. Unpausing resumes them.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.paused = paused
	p.applyAll()
}

// Audible reports whether a looping cue would currently be heard on a working speaker.
func (p *Player) Audible(cue object.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.audible(cue)
}

func (p *Player) audible(cue object.Cue) bool {
	return p.wanted[cue] && !p.muted && !p.paused
}

func (p *Player) applyAll() {
	for _, cue := range object.Cues {
		p.apply(cue)
	}
}

// apply pauses or resumes one loop to match the current state. Loops are created
// lazily the first time they become audible.
func (p *Player) apply(cue object.Cue) {
	if !p.enabled {
		return
	}
	ctrl, ok := p.loops[cue]
	if !ok {
		if !p.audible(cue) {
			return
		}
		s := loop(cue)
		if s == nil {
			return
		}
		ctrl = &beep.Ctrl{Streamer: s, Paused: true}
		p.loops[cue] = ctrl
		speaker.Lock()
		p.mixer.Add(ctrl)
		speaker.Unlock()
	}

	speaker.Lock()
	ctrl.Paused = !p.audible(cue)
	speaker.Unlock()
}
