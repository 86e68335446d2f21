package game

import "math"

// PowerUpType is what a pickup grants
type PowerUpType int

const (
	PowerUpPower PowerUpType = iota
	PowerUpShield
)

func (t PowerUpType) String() string {
	if t == PowerUpShield {
		return "shield"
	}
	return "power"
}

// PowerUp drifts down the screen until collected or lost off the bottom
type PowerUp struct {
	Body
	ID         EntityID
	VY         float64
	Type       PowerUpType
	PulsePhase float64

	dead bool
}

// newPowerUp drops a power-up of a random type
func newPowerUp(w *World, x, y float64) *PowerUp {
	t := PowerUpShield
	if w.rng.Float64() < PowerUpPowerChance {
		t = PowerUpPower
	}
	return newPowerUpOfType(w, x, y, t)
}

func newPowerUpOfType(w *World, x, y float64, t PowerUpType) *PowerUp {
	return &PowerUp{
		Body: Body{X: x, Y: y, Width: PowerUpSize, Height: PowerUpSize},
		ID:   w.newID(),
		VY:   PowerUpSpeed,
		Type: t,
	}
}

// Update drifts the pickup and flags it once below the screen
func (p *PowerUp) Update(w *World) {
	p.Y += p.VY
	p.PulsePhase = math.Mod(p.PulsePhase+0.1, 2*math.Pi)
	if p.below(w.Config) {
		p.dead = true
	}
}

// Pulse is the render scale factor for the pickup glow
func (p *PowerUp) Pulse() float64 {
	return 1 + math.Sin(p.PulsePhase)*0.2
}

// apply grants the pickup. A full shield silently absorbs the extra point.
func (p *PowerUp) apply(w *World) {
	st := &w.State
	switch p.Type {
	case PowerUpShield:
		st.Shield = min(st.ShieldMax, st.Shield+1)
		w.play(SoundShield)
	default:
		st.Power = min(MaxPower, st.Power+1)
		w.play(SoundPowerUp)
	}
	p.dead = true

	w.addScore(PowerUpScore, false, p.X, p.Y)
	w.emit(Event{Type: EventPowerUpCollected, Amount: int(p.Type), X: p.X, Y: p.Y})
}
