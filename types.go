package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"starstrike/audio"
	"starstrike/game"
)

// launchSettings are resolved from flags and the environment before the window opens
type launchSettings struct {
	configPath string
	seed       int64
	mute       bool
	volume     float64
	profile    bool
}

// Game adapts the simulation core to ebiten. It samples the keyboard, drives the
// lifecycle verbs, routes sound events to audio and draws the world.
type Game struct {
	core     *game.Game
	config   game.Config
	audio    *audio.Player
	profiler *Profiler
	face     text.Face

	// shake jitters the camera while the screen is shaking
	shake *rand.Rand

	started      bool
	prevAltEnter bool
	startedAt    time.Time
	lastStage    int
}
