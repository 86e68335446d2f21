package game

import (
	"image/color"
	"math/rand"

	"github.com/samber/lo"
)

// World is the simulation context. It owns every entity collection and the shared
// State, and is passed explicitly into each entity's Update.
type World struct {
	Config Config
	State  State

	Player *Player
	Boss   *Boss  // nil when no boss is on screen
	Laser  *Laser // at most one live beam

	Bullets      []*Bullet
	EnemyBullets []*Bullet
	Enemies      []*Enemy
	PowerUps     []*PowerUp
	Particles    []*Particle
	Missiles     []*Missile
	Stars        []*Star
	Backdrop     []*BackgroundObject

	// Frame counts simulated frames since the last reset
	Frame uint64

	// GridOffset scrolls the backdrop grid lines, 0..GridSpacing
	GridOffset float64

	rng    *rand.Rand
	clock  Clock
	nextID EntityID
	events []Event
}

// NewWorld creates a world in its initial state
func NewWorld(config Config, rng *rand.Rand, clock Clock) *World {
	w := &World{
		Config: config,
		rng:    rng,
		clock:  clock,
	}
	w.Player = newPlayer(config)
	w.Reset()
	return w
}

// Reset returns every field to its initial value. The player is reset in place.
func (w *World) Reset() {
	w.State = newState(w.Config)
	w.Player.reset(w.Config)
	w.Boss = nil
	w.Laser = nil
	w.Bullets = nil
	w.EnemyBullets = nil
	w.Enemies = nil
	w.PowerUps = nil
	w.Particles = nil
	w.Missiles = nil
	w.Backdrop = nil
	w.Frame = 0
	w.GridOffset = 0
	w.events = nil

	w.Stars = make([]*Star, 0, w.Config.StarCount)
	for i := 0; i < w.Config.StarCount; i++ {
		w.Stars = append(w.Stars, newStar(w))
	}
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) play(s Sound) {
	w.emit(Event{Type: EventSound, Sound: s})
}

// drainEvents hands the frame's events to the caller and starts a fresh buffer
func (w *World) drainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// addScore awards points; cumulative points also count towards rank
func (w *World) addScore(points int, cumulative bool, x, y float64) {
	w.State.Score += points
	if cumulative {
		w.State.TotalScore += points
	}
	w.emit(Event{Type: EventScore, Amount: points, X: x, Y: y})
}

// burst spawns n particles scattered uniformly over a spreadW x spreadH box around (x, y)
func (w *World) burst(n int, x, y, spreadW, spreadH float64, clr color.RGBA, kind ParticleKind) {
	w.Particles = append(w.Particles, lo.Times(n, func(int) *Particle {
		px := x + (w.rng.Float64()-0.5)*spreadW
		py := y + (w.rng.Float64()-0.5)*spreadH
		return newParticle(w, px, py, clr, kind)
	})...)
}

// findEnemy resolves a handle to a live enemy
func (w *World) findEnemy(id EntityID) *Enemy {
	for _, e := range w.Enemies {
		if e.ID == id && !e.dead && e.Health > 0 {
			return e
		}
	}
	return nil
}

// compact drops every entity flagged dead. Survivors keep their order.
func (w *World) compact() {
	w.Bullets = lo.Filter(w.Bullets, func(b *Bullet, _ int) bool { return !b.dead })
	w.EnemyBullets = lo.Filter(w.EnemyBullets, func(b *Bullet, _ int) bool { return !b.dead })
	w.Enemies = lo.Filter(w.Enemies, func(e *Enemy, _ int) bool { return !e.dead })
	w.PowerUps = lo.Filter(w.PowerUps, func(p *PowerUp, _ int) bool { return !p.dead })
	w.Particles = lo.Filter(w.Particles, func(p *Particle, _ int) bool { return !p.Dead() })
	w.Missiles = lo.Filter(w.Missiles, func(m *Missile, _ int) bool { return !m.dead })
	w.Backdrop = lo.Filter(w.Backdrop, func(o *BackgroundObject, _ int) bool { return !o.dead })
	if w.Boss != nil && w.Boss.dead {
		w.Boss = nil
	}
}

// Clock returns the world's wall clock
func (w *World) Clock() Clock {
	return w.clock
}
