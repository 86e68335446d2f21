package game

import (
	"image/color"
	"math"
)

// Star is a parallax dot. Bigger stars fall faster and wrap back to the top.
type Star struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Brightness float64
}

func newStar(w *World) *Star {
	size := w.rng.Float64()*2 + 0.5
	return &Star{
		X:          w.rng.Float64() * w.Config.Width(),
		Y:          w.rng.Float64() * w.Config.Height(),
		Size:       size,
		Speed:      size * 0.5,
		Brightness: w.rng.Float64()*0.5 + 0.5,
	}
}

func (s *Star) Update(w *World) {
	s.Y += s.Speed
	if s.Y > w.Config.Height() {
		s.Y = -10
		s.X = w.rng.Float64() * w.Config.Width()
	}
}

// BackdropKind is the kind of large background object
type BackdropKind int

const (
	BackdropPlanet BackdropKind = iota
	BackdropStation
)

// StationLight is a blinking light on a station, relative to its center
type StationLight struct {
	X, Y  float64
	Phase float64
}

// BackgroundObject is a slow drifting planet or space station behind the action
type BackgroundObject struct {
	Kind  BackdropKind
	X, Y  float64
	Speed float64

	// planet
	Radius        float64
	Inner, Outer  color.RGBA
	Rotation      float64
	RotationSpeed float64

	// station
	Width, Height float64
	Lights        []StationLight

	dead bool
}

func newBackgroundObject(w *World) *BackgroundObject {
	o := &BackgroundObject{
		X:     w.rng.Float64() * w.Config.Width(),
		Y:     -200,
		Speed: 0.5 + w.rng.Float64()*0.5,
	}
	if w.rng.Float64() < 0.7 {
		o.Kind = BackdropPlanet
		o.Radius = 50 + w.rng.Float64()*100
		o.Inner = hsl(w.rng.Float64()*360, 0.5, 0.3)
		o.Outer = hsl(w.rng.Float64()*360, 0.5, 0.2)
		o.Rotation = w.rng.Float64() * math.Pi * 2
		o.RotationSpeed = (w.rng.Float64() - 0.5) * 0.01
		return o
	}

	o.Kind = BackdropStation
	o.Width = 80 + w.rng.Float64()*60
	o.Height = 100 + w.rng.Float64()*80
	o.Lights = make([]StationLight, 10)
	for i := range o.Lights {
		o.Lights[i] = StationLight{
			X:     w.rng.Float64()*o.Width - o.Width/2,
			Y:     w.rng.Float64()*o.Height - o.Height/2,
			Phase: w.rng.Float64() * math.Pi * 2,
		}
	}
	return o
}

// Update drifts the object and flags it once it has fully passed the bottom edge
func (o *BackgroundObject) Update(w *World) {
	o.Y += o.Speed
	if o.Kind == BackdropPlanet {
		o.Rotation += o.RotationSpeed
	}

	extent := o.Height / 2
	if o.Kind == BackdropPlanet {
		extent = o.Radius
	}
	if o.Y-extent > w.Config.Height() {
		o.dead = true
	}
}

// hsl converts hue (degrees), saturation and lightness (0..1) to an opaque color
func hsl(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}
