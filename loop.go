package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"starstrike/audio"
	"starstrike/game"
)

// NewGame wires the simulation to the presentation layer
func NewGame(config game.Config, rng *rand.Rand, player *audio.Player) *Game {
	return &Game{
		core:   game.NewGame(config, rng, game.SystemClock{}),
		config: config,
		audio:  player,
		face:   text.NewGoXFace(basicfont.Face7x13),
		shake:  rand.New(rand.NewSource(rng.Int63())),
	}
}

func (g *Game) start() {
	g.core.Start()
	g.started = true
	g.startedAt = time.Now()
	g.lastStage = g.core.HUD().Stage
	log.Printf("game started")
}

// Update advances one frame
func (g *Game) Update() error {
	g.handleInput()

	if g.core.Running() {
		events := g.core.Tick(readInput())
		g.audio.PlayEvents(events)
		g.logEvents(events)
	}

	g.checkFrameRate()
	return nil
}

func (g *Game) logEvents(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventBossSpawned:
			log.Printf("boss entering at stage %d", g.lastStage)
		case game.EventStageCleared:
			log.Printf("stage %d cleared, entering stage %d", g.lastStage, e.Amount)
			g.lastStage = e.Amount
		case game.EventGameOver:
			log.Printf("game over: score %d after %s", e.Amount, time.Since(g.startedAt).Round(time.Second))
		}
	}
}

// checkFrameRate hands sustained FPS drops to the profiler once the game has settled
func (g *Game) checkFrameRate() {
	if g.profiler == nil || !g.core.Running() || time.Since(g.startedAt) < fpsWarmup {
		return
	}
	fps := ebiten.ActualFPS()
	if fps >= fpsDropThreshold {
		return
	}
	if err := g.profiler.CaptureProfile(fpsDropReason(fps)); err == nil {
		log.Printf("fps dropped to %.1f, capturing profile", fps)
	}
}

// Draw renders the world back to front, then the HUD and any overlay screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w := g.core.World()
	ox, oy := g.shakeOffset(w.State.ScreenShake)

	g.drawBackdrop(screen, w, ox, oy)
	g.drawParticles(screen, w, ox, oy)
	g.drawPowerUps(screen, w, ox, oy)
	g.drawEnemies(screen, w, ox, oy)
	g.drawBoss(screen, w, ox, oy)
	g.drawProjectiles(screen, w, ox, oy)
	if g.started {
		g.drawPlayer(screen, w, ox, oy)
	}

	g.drawHUD(screen)
	switch {
	case !g.started:
		g.drawStartScreen(screen)
	case g.core.Over():
		g.drawGameOver(screen)
	}
}

// Layout keeps the logical playfield size regardless of the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// shakeOffset returns the camera jitter for the remaining shake frames
func (g *Game) shakeOffset(frames int) (float64, float64) {
	if frames <= 0 {
		return 0, 0
	}
	amp := float64(frames) / 2
	return (g.shake.Float64() - 0.5) * amp, (g.shake.Float64() - 0.5) * amp
}
