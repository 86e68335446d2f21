package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"starstrike/game"
)

// drawParticles fades every particle with its remaining life. Explosion debris is
// drawn as spinning squares, everything else as dots.
func (g *Game) drawParticles(screen *ebiten.Image, w *game.World, ox, oy float64) {
	for _, p := range w.Particles {
		clr := withAlpha(p.Color, p.Alpha())
		x, y := p.X+ox, p.Y+oy

		switch p.Kind {
		case game.ParticleExplosion:
			fillPolygon(screen, placePolygon(regularPolygon(4, p.Size/2), x, y, p.Rotation), clr)
		case game.ParticleShield:
			strokeCircle(screen, x, y, p.Size, 1, clr)
		default:
			drawCircle(screen, x, y, p.Size/2, clr)
		}
	}
}
