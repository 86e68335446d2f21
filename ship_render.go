package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"starstrike/game"
)

// Ship outlines in local space, nose pointing up (negative y)
var (
	playerHull = []point{{0, -25}, {20, 20}, {0, 10}, {-20, 20}}
	playerWing = []point{{-20, 5}, {-8, 0}, {-8, 15}}
	bossHull   = []point{{-60, -30}, {60, -30}, {50, 30}, {20, 50}, {-20, 50}, {-50, 30}}
)

func (g *Game) drawPlayer(screen *ebiten.Image, w *game.World, ox, oy float64) {
	p := w.Player
	// blink every 5 frames while invulnerable
	if p.Invulnerable && (p.InvulnerableTime/5)%2 == 0 {
		return
	}
	x, y := p.X+ox, p.Y+oy

	fillPolygon(screen, placePolygon(playerHull, x, y, 0), game.ColorPlayer)
	fillPolygon(screen, placePolygon(playerWing, x, y, 0), game.ColorPlayer)
	mirrored := make([]point, len(playerWing))
	for i, v := range playerWing {
		mirrored[len(playerWing)-1-i] = point{x: -v.x, y: v.y}
	}
	fillPolygon(screen, placePolygon(mirrored, x, y, 0), game.ColorPlayer)
	drawCircle(screen, x, y-5, 5, colorCockpit)

	if w.State.Shield > 0 {
		strokeCircle(screen, x, y, math.Max(p.Width, p.Height)*0.7, 2, colorShieldRing)
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image, w *game.World, ox, oy float64) {
	for _, e := range w.Enemies {
		if e.Dead() {
			continue
		}
		cfg := game.GetEnemyTypeConfig(e.Type)
		x, y := e.X+ox, e.Y+oy
		r := math.Min(e.Width, e.Height) / 2

		switch e.Type {
		case game.EnemyTypeStrong:
			drawCenteredRect(screen, x, y, e.Width, e.Height, cfg.Color)
			drawRectOutline(screen, x-e.Width/2, y-e.Height/2, e.Width, e.Height, 2, colorAccent)
		case game.EnemyTypeRotating:
			fillPolygon(screen, placePolygon(regularPolygon(4, r), x, y, e.Angle), cfg.Color)
		case game.EnemyTypeSplitter:
			fillPolygon(screen, placePolygon(regularPolygon(6, r), x, y, 0), cfg.Color)
			drawLine(screen, x-r/2, y, x+r/2, y, 2, colorBackground)
		case game.EnemyTypeSniper:
			// nose points down at the player
			fillPolygon(screen, placePolygon(regularPolygon(3, r), x, y, math.Pi), cfg.Color)
			drawCircle(screen, x, y, 3, colorEnemyBullet)
		default:
			fillPolygon(screen, placePolygon(regularPolygon(3, r), x, y, math.Pi), cfg.Color)
		}
	}
}

func (g *Game) drawBoss(screen *ebiten.Image, w *game.World, ox, oy float64) {
	b := w.Boss
	if b == nil {
		return
	}
	x, y := b.X+ox, b.Y+oy

	hull := placePolygon(bossHull, x, y, 0)
	fillPolygon(screen, hull, game.ColorBoss)
	strokePolygon(screen, hull, 2, colorAccent)
	drawCircle(screen, x, y, 15, colorEnemyBullet)
	drawCircle(screen, x-35, y+10, 6, colorEnemyBullet)
	drawCircle(screen, x+35, y+10, 6, colorEnemyBullet)
}

func (g *Game) drawProjectiles(screen *ebiten.Image, w *game.World, ox, oy float64) {
	for _, b := range w.Bullets {
		drawCenteredRect(screen, b.X+ox, b.Y+oy, b.Width, b.Height, colorBullet)
	}
	for _, b := range w.EnemyBullets {
		drawCircle(screen, b.X+ox, b.Y+oy, b.Width/2+1, colorEnemyBullet)
	}
	for _, m := range w.Missiles {
		angle := math.Atan2(m.VY, m.VX) + math.Pi/2
		body := []point{{0, -m.Height / 2}, {m.Width / 2, m.Height / 2}, {-m.Width / 2, m.Height / 2}}
		fillPolygon(screen, placePolygon(body, m.X+ox, m.Y+oy, angle), colorMissile)
	}
	if l := w.Laser; l != nil {
		top := 0.0
		bottom := l.Y + oy
		drawRect(screen, l.X+ox-l.Width/2, top, l.Width, bottom-top, colorLaserGlow)
		drawRect(screen, l.X+ox-l.Width/6, top, l.Width/3, bottom-top, colorLaserCore)
	}
}

func (g *Game) drawPowerUps(screen *ebiten.Image, w *game.World, ox, oy float64) {
	for _, p := range w.PowerUps {
		clr := colorPowerUp
		if p.Type == game.PowerUpShield {
			clr = colorShieldUp
		}
		size := p.Width * p.Pulse()
		x, y := p.X+ox, p.Y+oy
		strokeCircle(screen, x, y, size/2+3, 1, withAlpha(clr, 0.5))
		drawCircle(screen, x, y, size/2, clr)
		label := "P"
		if p.Type == game.PowerUpShield {
			label = "S"
		}
		g.drawTextCentered(screen, label, x, y, colorBackground)
	}
}
