// Package audio plays short synthesized sound cues through the system
// audio backend. It degrades gracefully: if the backend cannot be opened
// (headless terminals, SSH sessions) the player silently drops every cue.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/bricksmash/bricksmash/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// cueTones maps cue names to a square wave pitch and duration.
var cueTones = map[string]struct {
	freq float64
	dur  time.Duration
}{
	sim.CueEnemyDestroy: {freq: 880, dur: 60 * time.Millisecond},
}

// Player synthesizes cues into a shared mixer. Safe for use from the
// simulation goroutine and the speaker goroutine concurrently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Call Init before playing; an uninitialized
// player drops cues.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio backend and starts the mixer. Failure leaves the
// player permanently silent and is not an error for the caller; cues are
// fire-and-forget by contract.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return
	}
	speaker.Play(p.mixer)
	p.initialized = true
}

// SetMuted toggles cue playback without tearing down the backend.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play synthesizes the named cue into the mixer. Unknown cues are
// ignored.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	tone, ok := cueTones[cue]
	if !ok {
		return
	}

	streamer, err := generators.SquareTone(sampleRate, tone.freq)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(tone.dur), streamer))
	speaker.Unlock()
}

// Close stops all playing cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Sink adapts the player to the simulation's audio hook.
func (p *Player) Sink() sim.AudioSink {
	return sim.AudioSink{Play: p.Play}
}

// NopSink returns a sink that drops every cue, for muted sessions and
// tests.
func NopSink() sim.AudioSink {
	return sim.AudioSink{Play: func(string) {}}
}
