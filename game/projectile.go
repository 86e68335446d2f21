package game

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

// Bullet is a straight-flying projectile fired by the player or by enemies
type Bullet struct {
	Body
	ID     EntityID
	VX, VY float64
	Enemy  bool

	dead bool
}

func newBullet(w *World, x, y, vx, vy float64, enemy bool) *Bullet {
	width, height := BulletWidth, BulletHeight
	if enemy {
		width, height = EnemyBulletWidth, EnemyBulletHeight
	}
	return &Bullet{
		Body:  Body{X: x, Y: y, Width: width, Height: height},
		ID:    w.newID(),
		VX:    vx,
		VY:    vy,
		Enemy: enemy,
	}
}

// Update advances the bullet and flags it once it leaves the playfield
func (b *Bullet) Update(w *World) {
	b.X += b.VX
	b.Y += b.VY
	if b.outside(w.Config) {
		b.dead = true
	}
}

// Laser is the continuous beam. Only its horizontal extent takes part in collisions.
type Laser struct {
	Body
	ID EntityID
}

func newLaser(w *World, p *Player) *Laser {
	x, y := p.nose()
	return &Laser{
		Body: Body{X: x, Y: y, Width: LaserWidth, Height: w.Config.Height()},
		ID:   w.newID(),
	}
}

// Update pins the beam to the ship and switches it off once fire is released or
// another weapon is selected.
func (l *Laser) Update(w *World, in Input) {
	l.X, l.Y = w.Player.nose()
	if !in.Fire() || w.State.Weapon != WeaponTypeLaser {
		w.Laser = nil
	}
}

// Missile homes on the nearest enemy or boss. Target is a handle, never an owner.
type Missile struct {
	Body
	ID     EntityID
	VX, VY float64
	Target EntityID

	dead bool
}

func newMissile(w *World, x, y float64) *Missile {
	return &Missile{
		Body: Body{X: x, Y: y, Width: MissileWidth, Height: MissileHeight},
		ID:   w.newID(),
		VY:   -MissileLaunchSpeed,
	}
}

// Update re-resolves the target, steers towards it and leaves a smoke trail
func (m *Missile) Update(w *World) {
	tx, ty, ok := m.resolveTarget(w)
	if !ok {
		m.Target = m.findTarget(w)
		tx, ty, ok = m.resolveTarget(w)
	}

	if ok {
		m.VX, m.VY = aimAt(m.X, m.Y, tx, ty, MissileSpeed)
	} else {
		m.VX, m.VY = 0, -MissileSpeed
	}

	m.X += m.VX
	m.Y += m.VY

	w.Particles = append(w.Particles, newParticle(w, m.X, m.Y+m.Height/2, ColorMissileFire, ParticleMissileTrail))

	if m.outside(w.Config) {
		m.dead = true
	}
}

// resolveTarget looks the handle up; a target that died or left is reported as missing
func (m *Missile) resolveTarget(w *World) (float64, float64, bool) {
	if m.Target == InvalidEntityID {
		return 0, 0, false
	}
	if b := w.Boss; b != nil && b.ID == m.Target && !b.dead && b.Health > 0 {
		return b.X, b.Y, true
	}
	if e := w.findEnemy(m.Target); e != nil {
		return e.X, e.Y, true
	}
	return 0, 0, false
}

// findTarget picks the closest live enemy; the boss wins only when strictly closer
func (m *Missile) findTarget(w *World) EntityID {
	live := lo.Filter(w.Enemies, func(e *Enemy, _ int) bool { return !e.dead && e.Health > 0 })

	target := InvalidEntityID
	closest := math.Inf(1)
	if len(live) > 0 {
		nearest := lo.MinBy(live, func(a, b *Enemy) bool {
			return math.Hypot(a.X-m.X, a.Y-m.Y) < math.Hypot(b.X-m.X, b.Y-m.Y)
		})
		target = nearest.ID
		closest = math.Hypot(nearest.X-m.X, nearest.Y-m.Y)
	}
	if b := w.Boss; b != nil && !b.dead && math.Hypot(b.X-m.X, b.Y-m.Y) < closest {
		target = b.ID
	}
	return target
}

// aimAt returns a velocity of the given speed pointing from one point to another.
// Coincident points aim along +x.
func aimAt(fromX, fromY, toX, toY, speed float64) (float64, float64) {
	d := mathutil.NewVector2D(toX, toY).Sub(mathutil.NewVector2D(fromX, fromY))
	if d.Norm() == 0 {
		return speed, 0
	}
	v := d.Normalize().Mul(speed)
	return v.X, v.Y
}
