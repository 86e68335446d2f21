package game

import "math"

// Player is the singleton ship. It is created once and reset between games.
type Player struct {
	Body
	Speed            float64
	Invulnerable     bool
	InvulnerableTime int
}

func newPlayer(cfg Config) *Player {
	p := &Player{}
	p.reset(cfg)
	return p
}

func (p *Player) reset(cfg Config) {
	p.Body = Body{
		X:      cfg.Width() / 2,
		Y:      cfg.Height() - PlayerBottomOffset,
		Width:  PlayerWidth,
		Height: PlayerHeight,
	}
	p.Speed = PlayerSpeed
	p.Invulnerable = false
	p.InvulnerableTime = 0
}

// Update moves the ship, ticks invulnerability, fires and applies weapon selection
func (p *Player) Update(w *World, in Input) {
	halfW, halfH := p.Width/2, p.Height/2
	if in.Left() {
		p.X = math.Max(halfW, p.X-p.Speed)
	}
	if in.Right() {
		p.X = math.Min(w.Config.Width()-halfW, p.X+p.Speed)
	}
	if in.Up() {
		p.Y = math.Max(halfH, p.Y-p.Speed)
	}
	if in.Down() {
		p.Y = math.Min(w.Config.Height()-halfH, p.Y+p.Speed)
	}

	if p.Invulnerable {
		p.InvulnerableTime--
		if p.InvulnerableTime <= 0 {
			p.InvulnerableTime = 0
			p.Invulnerable = false
		}
	}

	if in.Fire() {
		p.handleWeaponFire(w)
	}

	if weapon, ok := in.WeaponSelect(); ok {
		w.State.Weapon = weapon
	}
}

// nose is the point projectiles leave from
func (p *Player) nose() (float64, float64) {
	return p.X, p.Y - p.Height/2
}

func (p *Player) handleWeaponFire(w *World) {
	weapon := GetWeaponConfig(w.State.Weapon)
	now := w.clock.Now()

	switch weapon.Type {
	case WeaponTypeBullet:
		if weapon.CanShoot(now.Sub(w.State.lastShot)) {
			p.shoot(w)
			w.State.lastShot = now
			w.play(weapon.Sound)
		}
	case WeaponTypeLaser:
		if w.Laser == nil {
			w.Laser = newLaser(w, p)
			w.play(weapon.Sound)
		}
	case WeaponTypeMissile:
		if weapon.CanShoot(now.Sub(w.State.lastShot)) {
			x, y := p.nose()
			w.Missiles = append(w.Missiles, newMissile(w, x, y))
			w.State.lastShot = now
			w.play(weapon.Sound)
		}
	}
}

// shoot fires the spread for the current power tier: one center stream, then
// pairs at ±15 px and ±25 px with growing sideways drift.
func (p *Player) shoot(w *World) {
	x, y := p.nose()
	power := w.State.Power

	w.Bullets = append(w.Bullets, newBullet(w, x, y, 0, -BulletSpeed, false))
	if power >= 2 {
		w.Bullets = append(w.Bullets,
			newBullet(w, x-15, y, -1, -BulletSpeed, false),
			newBullet(w, x+15, y, 1, -BulletSpeed, false),
		)
	}
	if power >= 3 {
		w.Bullets = append(w.Bullets,
			newBullet(w, x-25, y, -2, -BulletSpeed, false),
			newBullet(w, x+25, y, 2, -BulletSpeed, false),
		)
	}
}

// Hit applies one point of incoming damage. Shield absorbs it first; otherwise a life
// is lost and the ship becomes invulnerable for a while.
func (p *Player) Hit(w *World) {
	if p.Invulnerable {
		return
	}
	st := &w.State

	if st.Shield > 0 {
		st.Shield--
		w.burst(ShieldBurstParticles, p.X, p.Y, 0, 0, ColorShield, ParticleShield)
		w.play(SoundShield)
		w.emit(Event{Type: EventShieldHit, Amount: st.Shield, X: p.X, Y: p.Y})
		return
	}

	if st.Lives > 0 {
		st.Lives--
	}
	st.Power = max(1, st.Power-1)
	p.Invulnerable = true
	p.InvulnerableTime = PlayerInvulnerableFrames
	st.ScreenShake = HitScreenShake

	w.burst(PlayerHitParticles, p.X, p.Y, 0, 0, ColorPlayer, ParticleNormal)
	w.play(SoundHit)
	w.emit(Event{Type: EventPlayerHit, Amount: st.Lives, X: p.X, Y: p.Y})

	if st.Lives <= 0 {
		st.GameOver = true
	}
}

// emitTrail adds the engine exhaust behind the ship
func (p *Player) emitTrail(w *World) {
	w.burst(TrailParticlesPerFrame, p.X, p.Y+p.Height/2, 10, 0, ColorPlayerTrail, ParticleTrail)
}
