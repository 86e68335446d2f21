package main

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// point is a screen-space vertex
type point struct {
	x, y float64
}

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solidSource is the 1x1 white texel filled triangles sample from
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p point, angle float64) point {
	sinA, cosA := math.Sincos(angle)
	return point{
		x: p.x*cosA - p.y*sinA,
		y: p.x*sinA + p.y*cosA,
	}
}

// fillPolygon fills a convex polygon given in draw order
func fillPolygon(dst *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.x), DstY: float32(p.y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolygon outlines a closed polygon
func strokePolygon(dst *ebiten.Image, pts []point, width float64, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.x), float32(a.y), float32(b.x), float32(b.y), float32(width), clr, true)
	}
}

// placePolygon rotates a local-space shape and moves it to (cx, cy)
func placePolygon(local []point, cx, cy, angle float64) []point {
	out := make([]point, len(local))
	for i, p := range local {
		r := rotatePoint(p, angle)
		out[i] = point{x: cx + r.x, y: cy + r.y}
	}
	return out
}

// regularPolygon returns n vertices on a circle, the first one straight up
func regularPolygon(n int, radius float64) []point {
	out := make([]point, n)
	for i := range out {
		a := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		out[i] = point{x: math.Cos(a) * radius, y: math.Sin(a) * radius}
	}
	return out
}

func drawCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, radius, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius), float32(width), clr, true)
}

// drawRect fills a rectangle given by its top-left corner
func drawRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), clr, true)
}

// drawCenteredRect fills a rectangle given by its center
func drawCenteredRect(dst *ebiten.Image, cx, cy, width, height float64, clr color.Color) {
	drawRect(dst, cx-width/2, cy-height/2, width, height, clr)
}

func drawRectOutline(dst *ebiten.Image, x, y, width, height, lineWidth float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), float32(lineWidth), clr, true)
}

func drawLine(dst *ebiten.Image, x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

// withAlpha scales a color's opacity by f in 0..1
func withAlpha(c color.Color, f float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	f = math.Max(0, math.Min(1, f))
	n.A = uint8(float64(n.A) * f)
	return n
}
