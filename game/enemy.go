package game

import "math"

// Enemy is a regular foe. Behavior is driven by its EnemyTypeConfig and MovePattern.
type Enemy struct {
	Body
	ID         EntityID
	Type       EnemyType
	Health     int
	Speed      float64
	Score      int
	Pattern    MovePattern
	ShootTimer int

	// movement pattern state
	ZigzagPhase float64
	Angle       float64
	CenterX     float64
	Radius      float64
	TargetY     float64

	dead bool
}

func newEnemy(w *World, x, y float64, enemyType EnemyType) *Enemy {
	cfg := GetEnemyTypeConfig(enemyType)
	e := &Enemy{
		Body:   Body{X: x, Y: y, Width: cfg.Width, Height: cfg.Height},
		ID:     w.newID(),
		Type:   enemyType,
		Health: cfg.Health,
		Speed:  cfg.Speed,
		Score:  cfg.Score,
	}
	e.Pattern = cfg.Patterns[0]
	if len(cfg.Patterns) > 1 {
		e.Pattern = cfg.Patterns[w.rng.Intn(len(cfg.Patterns))]
	}

	switch e.Pattern {
	case PatternCircular:
		e.CenterX = x
		e.Radius = 50
	case PatternHover:
		e.TargetY = y + 150
	}
	return e
}

// Dead reports whether the enemy has been destroyed or has left the screen
func (e *Enemy) Dead() bool {
	return e.dead
}

var moveBehaviors = [...]func(e *Enemy, w *World){
	PatternStraight: func(e *Enemy, _ *World) {
		e.Y += e.Speed
	},
	PatternZigzag: func(e *Enemy, _ *World) {
		e.Y += e.Speed
		e.X += math.Sin(e.ZigzagPhase) * 2
		e.ZigzagPhase += 0.1
	},
	PatternCircular: func(e *Enemy, w *World) {
		e.Y += e.Speed * 0.5
		e.Angle += 0.05
		e.X = e.CenterX + math.Cos(e.Angle)*e.Radius
		e.CenterX = math.Max(e.Radius, math.Min(w.Config.Width()-e.Radius, e.CenterX))
	},
	PatternHover: func(e *Enemy, w *World) {
		if e.Y < e.TargetY {
			e.Y += e.Speed * 2
			return
		}
		// Lateral drift follows the wall clock, not the frame count.
		ms := float64(w.clock.Now().UnixMilli())
		e.X += math.Sin(ms*0.002) * e.Speed
	},
}

// Update moves the enemy, fires on its cadence and flags it once below the screen
func (e *Enemy) Update(w *World) {
	moveBehaviors[e.Pattern](e, w)

	e.ShootTimer++
	if e.ShootTimer > GetEnemyTypeConfig(e.Type).ShootDelay {
		e.shoot(w)
		e.ShootTimer = 0
	}

	if e.below(w.Config) {
		e.dead = true
	}
}

// shoot fires at the player's position at the moment of firing. There is no lead.
func (e *Enemy) shoot(w *World) {
	cfg := GetEnemyTypeConfig(e.Type)

	switch cfg.Shot {
	case ShotCross:
		for i := 0; i < 4; i++ {
			a := math.Pi/2*float64(i) + e.Angle
			w.EnemyBullets = append(w.EnemyBullets,
				newBullet(w, e.X, e.Y, math.Cos(a)*cfg.ShotSpeed, math.Sin(a)*cfg.ShotSpeed, true))
		}
	default:
		vx, vy := aimAt(e.X, e.Y, w.Player.X, w.Player.Y, cfg.ShotSpeed)
		w.EnemyBullets = append(w.EnemyBullets, newBullet(w, e.X, e.Y+e.Height/2, vx, vy, true))
	}
}

// Hit applies one point of damage and reports whether the enemy died.
// A kill pays out score, combo, multiplier, splitter children, particles and drops.
func (e *Enemy) Hit(w *World) bool {
	if e.dead {
		return false
	}
	e.Health--
	if e.Health > 0 {
		return false
	}
	e.dead = true

	st := &w.State
	w.addScore(e.Score*st.ScoreMultiplier, true, e.X, e.Y)
	st.EnemiesKilled++

	if st.Combo > 0 && st.Combo%ComboStep == 0 {
		st.ScoreMultiplier = min(MaxScoreMultiplier, st.ScoreMultiplier+1)
	}

	if e.Type == EnemyTypeSplitter && e.Y > SplitterMinY {
		e.split(w)
	}

	w.burst(EnemyExplosionParticles, e.X, e.Y, e.Width, e.Height, GetEnemyTypeConfig(e.Type).Color, ParticleExplosion)
	w.burst(EnemyEmberParticles, e.X, e.Y, 0, 0, ColorAmber, ParticleExplosion)

	if w.rng.Float64() < w.Config.PowerUpDropChance {
		w.PowerUps = append(w.PowerUps, newPowerUp(w, e.X, e.Y))
	}

	st.Combo++
	st.ComboTimer = ComboWindowFrames

	w.play(SoundExplosion)
	w.emit(Event{Type: EventEnemyKilled, Amount: int(e.Type), X: e.X, Y: e.Y})
	w.emit(Event{Type: EventCombo, Amount: st.Combo, X: e.X, Y: e.Y})
	return true
}

// split releases three fast basic enemies in a triangle around the splitter
func (e *Enemy) split(w *World) {
	for i := 0; i < SplitterChildren; i++ {
		a := math.Pi * 2 / SplitterChildren * float64(i)
		child := newEnemy(w, e.X+math.Cos(a)*SplitterChildOffset, e.Y+math.Sin(a)*SplitterChildOffset, EnemyTypeBasic)
		child.Speed = SplitterChildSpeed
		w.Enemies = append(w.Enemies, child)
	}
}
