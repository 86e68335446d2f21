package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starstrike/game"
)

// keyBindings maps physical keys to the logical keys the simulation understands
var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyArrowLeft,
	ebiten.KeyArrowRight: game.KeyArrowRight,
	ebiten.KeyArrowUp:    game.KeyArrowUp,
	ebiten.KeyArrowDown:  game.KeyArrowDown,
	ebiten.KeyA:          game.KeyA,
	ebiten.KeyD:          game.KeyD,
	ebiten.KeyW:          game.KeyW,
	ebiten.KeyS:          game.KeyS,
	ebiten.KeySpace:      game.KeyFire,
	ebiten.KeyDigit1:     game.KeyWeapon1,
	ebiten.KeyDigit2:     game.KeyWeapon2,
	ebiten.KeyDigit3:     game.KeyWeapon3,
}

// readInput samples the keyboard once for this frame
func readInput() game.Input {
	in := make(game.Input, len(keyBindings))
	for k, logical := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			in[logical] = true
		}
	}
	return in
}

// handleInput processes the shell keys: start/restart, mute and fullscreen toggle
func (g *Game) handleInput() {
	if !g.core.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.start()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("audio muted: %v", g.audio.ToggleMute())
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnterPressed
}
