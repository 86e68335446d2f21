package audio

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"starstrike/game"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game sound cues into tones. When no audio device is available it
// degrades to a silent player and every call becomes a no-op.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rng     *rand.Rand
	volume  float64
	enabled bool
	muted   bool
}

// NewPlayer opens the speaker. Failure is logged once and yields a silent player.
func NewPlayer(volume float64, muted bool) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		volume: volume,
		muted:  muted,
	}
	if err := p.open(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return p
}

// Silent returns a player that never touches an audio device
func Silent() *Player {
	return &Player{mixer: &beep.Mixer{}, muted: true}
}

func (p *Player) open() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Play starts the tone for a sound and reports whether anything was queued
func (p *Player) Play(s game.Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.muted {
		return false
	}
	cue, ok := CueFor(s)
	if !ok {
		return false
	}

	speaker.Lock()
	p.mixer.Add(withVolume(newTone(cue, sampleRate, p.rng), p.volume))
	speaker.Unlock()
	return true
}

// PlayEvents plays every sound event in a frame's event list
func (p *Player) PlayEvents(events []game.Event) {
	for _, e := range events {
		if e.Type == game.EventSound {
			p.Play(e.Sound)
		}
	}
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Enabled reports whether an audio device was opened
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close silences everything still playing
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
	p.enabled = false
}
