package game

import (
	"math"
	"testing"
)

func TestEnemy_HealthDecreasesPerHit(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	e := addEnemy(w, 200, 200, EnemyTypeStrong)

	for want := 2; want > 0; want-- {
		if e.Hit(w) {
			t.Fatalf("strong enemy died with %d health left", want)
		}
		if e.Health != want {
			t.Fatalf("health = %d, want %d", e.Health, want)
		}
	}
	if !e.Hit(w) {
		t.Fatalf("third hit did not kill")
	}
	if e.Hit(w) {
		t.Fatalf("dead enemy reported a second kill")
	}
	if w.State.EnemiesKilled != 1 || w.State.Score != 300 {
		t.Fatalf("kills = %d score = %d, want 1 and 300", w.State.EnemiesKilled, w.State.Score)
	}
}

func TestEnemy_ComboRaisesMultiplier(t *testing.T) {
	g := newTestGame(t)
	w := g.World()

	kill := func() {
		e := addEnemy(w, 200, 200, EnemyTypeBasic)
		e.Hit(w)
	}

	for i := 0; i < 5; i++ {
		kill()
	}
	if w.State.ScoreMultiplier != 1 || w.State.Score != 500 {
		t.Fatalf("after 5 kills multiplier = %d score = %d, want 1 and 500", w.State.ScoreMultiplier, w.State.Score)
	}

	// The sixth kill sees combo 5 and raises the multiplier after paying out.
	kill()
	if w.State.ScoreMultiplier != 2 || w.State.Score != 600 {
		t.Fatalf("after 6 kills multiplier = %d score = %d, want 2 and 600", w.State.ScoreMultiplier, w.State.Score)
	}
	kill()
	if w.State.Score != 800 {
		t.Fatalf("seventh kill paid %d, want 200", w.State.Score-600)
	}

	for i := 0; i < 100; i++ {
		kill()
	}
	if w.State.ScoreMultiplier != MaxScoreMultiplier {
		t.Fatalf("multiplier = %d, want cap %d", w.State.ScoreMultiplier, MaxScoreMultiplier)
	}
	if w.State.ComboTimer != ComboWindowFrames {
		t.Fatalf("combo timer = %d, want %d", w.State.ComboTimer, ComboWindowFrames)
	}
}

func TestEnemy_SplitterChildren(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"below threshold spawns children", 100, SplitterChildren},
		{"too high spawns nothing", 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			w := g.World()
			e := addEnemy(w, 300, tt.y, EnemyTypeSplitter)

			e.Hit(w)
			e.Hit(w)
			w.compact()

			if len(w.Enemies) != tt.want {
				t.Fatalf("enemies after split = %d, want %d", len(w.Enemies), tt.want)
			}
			for _, c := range w.Enemies {
				if c.Type != EnemyTypeBasic || c.Speed != SplitterChildSpeed {
					t.Fatalf("child = %s speed %.1f, want basic speed %.1f", c.Type, c.Speed, SplitterChildSpeed)
				}
				if d := math.Hypot(c.X-e.X, c.Y-e.Y); math.Abs(d-SplitterChildOffset) > 1e-9 {
					t.Fatalf("child offset = %.2f, want %.0f", d, SplitterChildOffset)
				}
			}
		})
	}
}

func TestEnemy_KillParticles(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	e := addEnemy(w, 300, 300, EnemyTypeBasic)

	e.Hit(w)

	if got, want := len(w.Particles), EnemyExplosionParticles+EnemyEmberParticles; got != want {
		t.Fatalf("particles = %d, want %d", got, want)
	}
}

func TestEnemy_ShootCadence(t *testing.T) {
	tests := []struct {
		typ         EnemyType
		delay       int
		wantBullets int
		wantSpeed   float64
	}{
		{EnemyTypeBasic, 120, 1, 3},
		{EnemyTypeStrong, 80, 1, 3},
		{EnemyTypeRotating, 80, 4, 3},
		{EnemyTypeSniper, 60, 1, 6},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			g := newTestGame(t)
			w := g.World()
			e := addEnemy(w, 300, 100, tt.typ)

			e.ShootTimer = tt.delay - 1
			e.Update(w)
			if len(w.EnemyBullets) != 0 {
				t.Fatalf("fired at timer %d, delay %d", e.ShootTimer, tt.delay)
			}
			e.Update(w)
			if len(w.EnemyBullets) != tt.wantBullets {
				t.Fatalf("bullets = %d, want %d", len(w.EnemyBullets), tt.wantBullets)
			}
			if e.ShootTimer != 0 {
				t.Fatalf("shoot timer = %d after firing, want 0", e.ShootTimer)
			}
			for _, b := range w.EnemyBullets {
				if s := math.Hypot(b.VX, b.VY); math.Abs(s-tt.wantSpeed) > 1e-9 {
					t.Fatalf("bullet speed = %.3f, want %.1f", s, tt.wantSpeed)
				}
			}
		})
	}
}

func TestEnemy_AimedShotTargetsPlayer(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	e := addEnemy(w, w.Player.X, 100, EnemyTypeStrong)
	e.Pattern = PatternStraight

	e.shoot(w)

	b := w.EnemyBullets[0]
	if math.Abs(b.VX) > 1e-9 || b.VY <= 0 {
		t.Fatalf("velocity = (%.2f, %.2f), want straight down", b.VX, b.VY)
	}
	if b.Y != e.Y+e.Height/2 {
		t.Fatalf("bullet y = %.1f, want the enemy's lower edge", b.Y)
	}
}

func TestEnemy_MovePatterns(t *testing.T) {
	g := newTestGame(t)
	w := g.World()

	t.Run("zigzag", func(t *testing.T) {
		e := addEnemy(w, 300, 0, EnemyTypeBasic)
		e.Pattern = PatternZigzag
		e.ZigzagPhase = math.Pi / 2
		e.Update(w)
		if e.X != 302 || e.Y != 2 {
			t.Fatalf("position = (%.2f, %.2f), want (302, 2)", e.X, e.Y)
		}
	})

	t.Run("circular clamps center", func(t *testing.T) {
		e := addEnemy(w, 10, 0, EnemyTypeRotating)
		e.Update(w)
		if e.CenterX != e.Radius {
			t.Fatalf("center = %.1f, want %.1f", e.CenterX, e.Radius)
		}
		if e.Y != e.Speed*0.5 {
			t.Fatalf("y = %.2f, want %.2f", e.Y, e.Speed*0.5)
		}
	})

	t.Run("hover stops descending", func(t *testing.T) {
		e := addEnemy(w, 300, EnemySpawnY, EnemyTypeSniper)
		target := e.TargetY
		for i := 0; i < 200; i++ {
			e.Update(w)
		}
		if e.Y < target || e.Y > target+e.Speed*2 {
			t.Fatalf("y = %.1f, want resting near %.1f", e.Y, target)
		}
	})
}

func TestEnemy_SpawnPatternChoice(t *testing.T) {
	g := newTestGame(t)
	w := g.World()

	seen := map[MovePattern]bool{}
	for i := 0; i < 200; i++ {
		seen[newEnemy(w, 0, 0, EnemyTypeBasic).Pattern] = true
	}
	if !seen[PatternStraight] || !seen[PatternZigzag] || len(seen) != 2 {
		t.Fatalf("basic patterns = %v, want straight and zigzag", seen)
	}
	if p := newEnemy(w, 0, 0, EnemyTypeSplitter).Pattern; p != PatternStraight {
		t.Fatalf("splitter pattern = %d, want straight", p)
	}
}
