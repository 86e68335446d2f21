package game

import (
	"image/color"
	"math"
)

// ParticleKind determines a particle's lifespan, launch velocity and decay curve
type ParticleKind int

const (
	ParticleNormal ParticleKind = iota
	ParticleExplosion
	ParticleTrail
	ParticleShield
	ParticleMissileTrail
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleExplosion:
		return "explosion"
	case ParticleTrail:
		return "trail"
	case ParticleShield:
		return "shield"
	case ParticleMissileTrail:
		return "missile_trail"
	default:
		return "normal"
	}
}

// Particle is a purely visual, short lived dot. It never collides.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Color         color.RGBA
	Kind          ParticleKind
	Size          float64
	Life          int
	MaxLife       int
	Rotation      float64
	RotationSpeed float64
}

var particleInits = [...]func(p *Particle, w *World){
	ParticleNormal: func(p *Particle, w *World) {
		p.VX = (w.rng.Float64() - 0.5) * 6
		p.VY = (w.rng.Float64() - 0.5) * 6
		p.Size = 4
		p.Life = 30
	},
	ParticleExplosion: func(p *Particle, w *World) {
		p.VX = (w.rng.Float64() - 0.5) * 12
		p.VY = (w.rng.Float64() - 0.5) * 12
		p.Size = w.rng.Float64()*6 + 2
		p.Life = 40
		p.Rotation = w.rng.Float64() * math.Pi * 2
		p.RotationSpeed = (w.rng.Float64() - 0.5) * 0.4
	},
	ParticleTrail: func(p *Particle, w *World) {
		p.VX = (w.rng.Float64() - 0.5) * 2
		p.VY = 3
		p.Size = w.rng.Float64()*3 + 1
		p.Life = 20
	},
	ParticleShield: func(p *Particle, w *World) {
		a := w.rng.Float64() * math.Pi * 2
		p.VX = math.Cos(a) * 8
		p.VY = math.Sin(a) * 8
		p.Size = 3
		p.Life = 25
	},
	ParticleMissileTrail: func(p *Particle, w *World) {
		p.VX = w.rng.Float64() - 0.5
		p.VY = 2
		p.Size = w.rng.Float64()*4 + 2
		p.Life = 15
	},
}

func newParticle(w *World, x, y float64, clr color.RGBA, kind ParticleKind) *Particle {
	p := &Particle{X: x, Y: y, Color: clr, Kind: kind}
	particleInits[kind](p, w)
	p.MaxLife = p.Life
	return p
}

// Update moves the particle with damped velocity and ages it by one frame
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= ParticleDamping
	p.VY *= ParticleDamping
	p.Life--

	if p.Kind == ParticleExplosion {
		p.Rotation += p.RotationSpeed
		p.Size *= ExplosionShrink
	}
}

// Dead reports whether the particle has used up its life
func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Alpha is the remaining life as a 0..1 opacity
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, float64(p.Life)/float64(p.MaxLife))
}
