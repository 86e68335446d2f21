package game

import "math"

// EntityID is a unique identifier for an entity within a World.
// Missiles hold an EntityID instead of a pointer so a dead target is simply not found.
type EntityID uint64

// InvalidEntityID represents an unset entity reference.
const InvalidEntityID EntityID = 0

// Body is the center position and extents shared by every collidable entity
type Body struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two bodies overlap using center distance against summed
// half-extents on each axis.
func (b Body) Overlaps(o Body) bool {
	return math.Abs(b.X-o.X) < (b.Width+o.Width)/2 &&
		math.Abs(b.Y-o.Y) < (b.Height+o.Height)/2
}

// OverlapsX is the one-axis variant used by the laser beam.
func (b Body) OverlapsX(o Body) bool {
	return math.Abs(b.X-o.X) < (b.Width+o.Width)/2
}

// outside reports whether the body has fully left the playfield on any edge
func (b Body) outside(cfg Config) bool {
	return b.Y < -b.Height || b.Y > cfg.Height()+b.Height ||
		b.X < -b.Width || b.X > cfg.Width()+b.Width
}

// below reports whether the body has passed the bottom edge
func (b Body) below(cfg Config) bool {
	return b.Y > cfg.Height()+b.Height
}
