package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"starstrike/game"
)

// drawBackdrop paints the scrolling grid, planets and stations, then the star field.
// The backdrop moves with half the camera shake for a little depth.
func (g *Game) drawBackdrop(screen *ebiten.Image, w *game.World, ox, oy float64) {
	ox, oy = ox/2, oy/2
	width, height := w.Config.Width(), w.Config.Height()

	for x := 0.0; x <= width; x += game.GridSpacing {
		drawLine(screen, x+ox, 0, x+ox, height, 1, colorGrid)
	}
	for y := w.GridOffset - game.GridSpacing; y <= height; y += game.GridSpacing {
		drawLine(screen, 0, y+oy, width, y+oy, 1, colorGrid)
	}

	for _, o := range w.Backdrop {
		switch o.Kind {
		case game.BackdropPlanet:
			drawPlanet(screen, o, ox, oy)
		case game.BackdropStation:
			g.drawStation(screen, w, o, ox, oy)
		}
	}

	for _, s := range w.Stars {
		drawCircle(screen, s.X+ox, s.Y+oy, s.Size, withAlpha(colorText, s.Brightness))
	}
}

// drawPlanet fakes a radial gradient with shrinking discs and adds a ring that
// turns with the planet
func drawPlanet(screen *ebiten.Image, o *game.BackgroundObject, ox, oy float64) {
	x, y := o.X+ox, o.Y+oy
	const steps = 6
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		clr := lerpRGBA(o.Outer, o.Inner, t)
		drawCircle(screen, x-o.Radius*0.2*t, y-o.Radius*0.2*t, o.Radius*(1-t*0.6), withAlpha(clr, backdropAlpha))
	}

	ring := make([]point, 24)
	for i := range ring {
		a := float64(i) / float64(len(ring)) * 2 * math.Pi
		ring[i] = rotatePoint(point{x: math.Cos(a) * o.Radius * 1.4, y: math.Sin(a) * o.Radius * 0.3}, o.Rotation)
		ring[i].x += x
		ring[i].y += y
	}
	strokePolygon(screen, ring, 1, withAlpha(o.Inner, backdropAlpha*0.5))
}

func (g *Game) drawStation(screen *ebiten.Image, w *game.World, o *game.BackgroundObject, ox, oy float64) {
	x, y := o.X+ox, o.Y+oy
	drawCenteredRect(screen, x, y, o.Width, o.Height, colorStation)
	drawCenteredRect(screen, x, y, o.Width*0.6, o.Height*0.8, colorStationInner)
	drawLine(screen, x-o.Width/2-20, y, x+o.Width/2+20, y, 3, colorStation)

	// lights blink on their own phase
	t := float64(w.Frame) * 0.05
	for _, l := range o.Lights {
		a := (math.Sin(t+l.Phase) + 1) / 2
		drawCircle(screen, x+l.X, y+l.Y, 2, withAlpha(colorAccent, a*backdropAlpha))
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
