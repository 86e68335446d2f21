package game

import (
	"testing"
	"time"
)

func TestPlayer_MovementClamped(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	p := w.Player

	for i := 0; i < 500; i++ {
		p.Update(w, Input{KeyA: true, KeyArrowUp: true})
	}
	if p.X != p.Width/2 || p.Y != p.Height/2 {
		t.Fatalf("position = (%.1f, %.1f), want top-left clamp (%.1f, %.1f)", p.X, p.Y, p.Width/2, p.Height/2)
	}
	for i := 0; i < 500; i++ {
		p.Update(w, Input{KeyArrowRight: true, KeyS: true})
	}
	if p.X != w.Config.Width()-p.Width/2 || p.Y != w.Config.Height()-p.Height/2 {
		t.Fatalf("position = (%.1f, %.1f), want bottom-right clamp", p.X, p.Y)
	}
}

func TestPlayer_InvulnerabilityCountsDown(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	p := w.Player
	p.Hit(w)

	for i := 0; i < PlayerInvulnerableFrames-1; i++ {
		p.Update(w, nil)
	}
	if !p.Invulnerable {
		t.Fatalf("invulnerability ended early")
	}
	p.Update(w, nil)
	if p.Invulnerable || p.InvulnerableTime != 0 {
		t.Fatalf("invulnerable = %v time = %d, want false 0", p.Invulnerable, p.InvulnerableTime)
	}

	// A second hit during invulnerability is ignored.
	p.Hit(w)
	lives := w.State.Lives
	p.Hit(w)
	if w.State.Lives != lives {
		t.Fatalf("lives = %d, want %d", w.State.Lives, lives)
	}
}

func TestPlayer_SpreadByPower(t *testing.T) {
	for power, want := range map[int]int{1: 1, 2: 3, 3: 5} {
		g := newTestGame(t)
		w := g.World()
		w.State.Power = power

		w.Player.Update(w, Input{KeyFire: true})

		if len(w.Bullets) != want {
			t.Fatalf("power %d fired %d bullets, want %d", power, len(w.Bullets), want)
		}
		for _, b := range w.Bullets {
			if b.VY != -BulletSpeed {
				t.Fatalf("bullet vy = %.1f, want %.1f", b.VY, -BulletSpeed)
			}
		}
	}
}

func TestPlayer_BulletCooldownUsesWallClock(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	clock := testClock(t, g)
	fire := Input{KeyFire: true}

	events := g.Tick(fire)
	if len(w.Bullets) != 1 || !hasSound(events, SoundShoot) {
		t.Fatalf("first shot: bullets = %d", len(w.Bullets))
	}

	// Frames alone never release the cooldown.
	for i := 0; i < 30; i++ {
		g.Tick(fire)
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d without the clock moving, want 1", len(w.Bullets))
	}

	clock.Advance(BulletCooldown)
	g.Tick(fire)
	if len(w.Bullets) != 1 {
		t.Fatalf("fired at exactly the cooldown, want strictly after")
	}

	clock.Advance(time.Millisecond)
	g.Tick(fire)
	if len(w.Bullets) != 2 {
		t.Fatalf("bullets = %d after cooldown, want 2", len(w.Bullets))
	}
}

func TestPlayer_MissileSharesCooldown(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	clock := testClock(t, g)

	g.Tick(Input{KeyFire: true})
	g.Tick(Input{KeyWeapon3: true})
	if w.State.Weapon != WeaponTypeMissile {
		t.Fatalf("weapon = %s, want missile", w.State.Weapon)
	}

	clock.Advance(200 * time.Millisecond)
	g.Tick(Input{KeyFire: true})
	if len(w.Missiles) != 0 {
		t.Fatalf("missile fired %v after a bullet, want cooldown %v", 200*time.Millisecond, MissileCooldown)
	}

	clock.Advance(MissileCooldown)
	events := g.Tick(Input{KeyFire: true})
	if len(w.Missiles) != 1 || !hasSound(events, SoundMissile) {
		t.Fatalf("missiles = %d, want 1", len(w.Missiles))
	}
}

func TestPlayer_LaserLifecycle(t *testing.T) {
	g := newTestGame(t)
	w := g.World()

	g.Tick(Input{KeyWeapon2: true})
	if w.State.Weapon != WeaponTypeLaser || w.Laser != nil {
		t.Fatalf("weapon = %s laser = %v, want laser selected and no beam", w.State.Weapon, w.Laser)
	}

	events := g.Tick(Input{KeyFire: true})
	if w.Laser == nil || !hasSound(events, SoundLaser) {
		t.Fatalf("holding fire did not create a beam")
	}
	beam := w.Laser

	g.Tick(Input{KeyFire: true, KeyArrowLeft: true})
	if w.Laser != beam {
		t.Fatalf("a second beam replaced the first")
	}
	if w.Laser.X != w.Player.X {
		t.Fatalf("beam x = %.1f, want player x %.1f", w.Laser.X, w.Player.X)
	}

	g.Tick(nil)
	if w.Laser != nil {
		t.Fatalf("beam survived releasing fire")
	}

	g.Tick(Input{KeyFire: true})
	g.Tick(Input{KeyFire: true, KeyWeapon1: true})
	if w.Laser != nil || w.State.Weapon != WeaponTypeBullet {
		t.Fatalf("beam survived switching weapons")
	}
}

func TestPlayer_Trail(t *testing.T) {
	g := newTestGame(t)
	w := g.World()

	g.Tick(nil)
	trail := 0
	for _, p := range w.Particles {
		if p.Kind == ParticleTrail {
			trail++
		}
	}
	if trail != TrailParticlesPerFrame {
		t.Fatalf("trail particles = %d, want %d", trail, TrailParticlesPerFrame)
	}
}
