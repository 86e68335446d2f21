package game

import "math"

// BossPhase is the boss state machine
type BossPhase int

const (
	BossEntering BossPhase = iota // descending, holds fire
	BossFighting
)

// Boss is the stage guardian. At most one is live at a time.
type Boss struct {
	Body
	ID          EntityID
	Health      int
	MaxHealth   int
	Speed       float64
	Phase       BossPhase
	ShootTimer  int
	MoveTimer   int
	MovePattern int
	TargetY     float64

	dead bool
}

const bossMovePatterns = 3

func newBoss(w *World) *Boss {
	return &Boss{
		Body:      Body{X: w.Config.Width() / 2, Y: BossStartY, Width: BossWidth, Height: BossHeight},
		ID:        w.newID(),
		Health:    BossHealth,
		MaxHealth: BossHealth,
		Speed:     BossSpeed,
		Phase:     BossEntering,
		TargetY:   BossTargetY,
	}
}

// Update runs the entering descent or the fighting sway and fire cadence
func (b *Boss) Update(w *World) {
	if b.Phase == BossEntering {
		b.Y += b.Speed
		if b.Y >= b.TargetY {
			b.Y = b.TargetY
			b.Phase = BossFighting
		}
		return
	}

	b.MoveTimer++
	if b.MoveTimer > BossPatternFrames {
		b.MoveTimer = 0
		b.MovePattern = (b.MovePattern + 1) % bossMovePatterns
	}
	b.move(w)

	b.ShootTimer++
	if b.ShootTimer > BossShootFrames {
		b.shoot(w)
		b.ShootTimer = 0
	}
}

func (b *Boss) move(w *World) {
	t := float64(b.MoveTimer)
	center := w.Config.Width() / 2

	switch b.MovePattern {
	case 0:
		b.X += math.Sin(t*0.02) * 3
	case 1:
		b.X = center + math.Sin(t*0.03)*200
	case 2:
		b.X = center + math.Cos(t*0.02)*150
		b.Y = b.TargetY + math.Sin(t*0.02)*50
	}

	half := b.Width / 2
	b.X = math.Max(half, math.Min(w.Config.Width()-half, b.X))
}

// shoot picks a volley by remaining health: a wide fan while healthy, a narrow
// downward fan when worn, and an aimed spread when nearly dead.
func (b *Boss) shoot(w *World) {
	muzzleY := b.Y + b.Height/2

	switch tier := b.Health / 10; {
	case tier >= 4:
		for i := 0; i < 5; i++ {
			a := math.Pi/4 + float64(i)*math.Pi/8
			b.fire(w, b.X, muzzleY, a, 4)
		}
	case tier >= 2:
		for i := -1; i <= 1; i++ {
			a := math.Pi/2 + float64(i)*0.3
			b.fire(w, b.X+float64(i)*30, muzzleY, a, 3)
		}
	default:
		base := math.Atan2(w.Player.Y-b.Y, w.Player.X-b.X)
		for i := -1; i <= 1; i++ {
			b.fire(w, b.X, muzzleY, base+float64(i)*0.2, 5)
		}
	}
}

func (b *Boss) fire(w *World, x, y, angle, speed float64) {
	w.EnemyBullets = append(w.EnemyBullets,
		newBullet(w, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, true))
}

// Hit applies one point of damage. The final hit clears the stage and removes the
// boss from the world.
func (b *Boss) Hit(w *World) bool {
	if b.dead {
		return false
	}
	b.Health--
	if b.Health > 0 {
		w.burst(BossHitParticles, b.X, b.Y, 0, 0, ColorAmber, ParticleNormal)
		return false
	}
	b.Health = 0
	b.dead = true

	st := &w.State
	w.addScore(BossScore, false, b.X, b.Y)
	st.Stage++
	st.EnemiesKilled = 0
	st.BossSpawned = false

	w.burst(BossExplosionParticles, b.X, b.Y, b.Width, b.Height, ColorBoss, ParticleExplosion)
	for i := 0; i < BossDrops; i++ {
		x := b.X + (w.rng.Float64()-0.5)*b.Width
		w.PowerUps = append(w.PowerUps, newPowerUp(w, x, b.Y))
	}

	w.play(SoundExplosion)
	w.emit(Event{Type: EventBossDefeated, Amount: BossScore, X: b.X, Y: b.Y})
	w.emit(Event{Type: EventStageCleared, Amount: st.Stage})

	if w.Boss == b {
		w.Boss = nil
	}
	return true
}
