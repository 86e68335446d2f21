package audio

import (
	"time"

	"starstrike/game"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Cue describes how a named game sound is synthesized: a frequency sweep from From
// to To and a gain decay from Volume over Duration.
type Cue struct {
	Duration time.Duration
	Wave     Wave
	From, To float64 // Hz, ignored for noise
	Volume   float64
}

var cues = map[game.Sound]Cue{
	game.SoundShoot:     {150 * time.Millisecond, WaveSquare, 800, 400, 0.1},
	game.SoundExplosion: {200 * time.Millisecond, WaveNoise, 0, 0, 0.3},
	game.SoundPowerUp:   {300 * time.Millisecond, WaveSine, 400, 800, 0.2},
	game.SoundHit:       {100 * time.Millisecond, WaveSaw, 200, 100, 0.2},
	game.SoundLaser:     {500 * time.Millisecond, WaveSaw, 100, 50, 0.15},
	game.SoundMissile:   {400 * time.Millisecond, WaveTriangle, 200, 50, 0.2},
	game.SoundShield:    {200 * time.Millisecond, WaveSine, 600, 600, 0.1},
}

// CueFor returns the synthesis parameters of a sound
func CueFor(s game.Sound) (Cue, bool) {
	c, ok := cues[s]
	return c, ok
}
