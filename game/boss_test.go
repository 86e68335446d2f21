package game

import "testing"

func TestBoss_DefeatAdvancesStage(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.State.EnemiesKilled = 30
	w.State.BossSpawned = true
	w.State.TotalScore = 100
	w.Boss = newBoss(w)
	b := w.Boss

	for i := 0; i < BossHealth-1; i++ {
		if b.Hit(w) {
			t.Fatalf("boss died on hit %d", i+1)
		}
	}
	if w.Boss == nil || w.State.Stage != 1 {
		t.Fatalf("boss cleared before the final hit")
	}

	w.drainEvents()
	if !b.Hit(w) {
		t.Fatalf("final hit did not defeat the boss")
	}
	events := w.drainEvents()

	if w.State.Stage != 2 {
		t.Fatalf("stage = %d, want 2", w.State.Stage)
	}
	if w.Boss != nil {
		t.Fatalf("boss reference not cleared")
	}
	if len(w.PowerUps) != BossDrops {
		t.Fatalf("power-ups = %d, want %d", len(w.PowerUps), BossDrops)
	}
	if w.State.EnemiesKilled != 0 || w.State.BossSpawned {
		t.Fatalf("kills = %d spawned = %v, want 0 false", w.State.EnemiesKilled, w.State.BossSpawned)
	}
	if w.State.Score != BossScore || w.State.TotalScore != 100 {
		t.Fatalf("score = %d total = %d, want %d 100", w.State.Score, w.State.TotalScore, BossScore)
	}
	if countEvents(events, EventBossDefeated) != 1 || countEvents(events, EventStageCleared) != 1 {
		t.Fatalf("events = %v, want boss defeated and stage cleared", events)
	}
	if b.Hit(w) {
		t.Fatalf("defeated boss took another hit")
	}
}

func TestBoss_HitSparks(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.Boss = newBoss(w)

	w.Boss.Hit(w)
	if len(w.Particles) != BossHitParticles {
		t.Fatalf("particles = %d, want %d", len(w.Particles), BossHitParticles)
	}
}

func TestBoss_EntersThenFights(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	b := newBoss(w)

	frames := 0
	for b.Phase == BossEntering {
		b.Update(w)
		frames++
		if len(w.EnemyBullets) != 0 {
			t.Fatalf("boss fired while entering")
		}
		if frames > 1000 {
			t.Fatalf("boss never reached its target")
		}
	}
	if b.Y != BossTargetY {
		t.Fatalf("y = %.1f, want %.1f", b.Y, BossTargetY)
	}
	if frames != int(BossTargetY-BossStartY) {
		t.Fatalf("entering took %d frames, want %d", frames, int(BossTargetY-BossStartY))
	}
}

func TestBoss_MovePatternCycles(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	b := newBoss(w)
	b.Phase = BossFighting
	b.Y = BossTargetY

	b.MoveTimer = BossPatternFrames
	b.Update(w)
	if b.MoveTimer != 0 || b.MovePattern != 1 {
		t.Fatalf("timer = %d pattern = %d, want 0 and 1", b.MoveTimer, b.MovePattern)
	}

	b.MovePattern = 2
	b.MoveTimer = BossPatternFrames
	b.Update(w)
	if b.MovePattern != 0 {
		t.Fatalf("pattern = %d, want wrap to 0", b.MovePattern)
	}

	b.X = -500
	b.Update(w)
	if b.X < b.Width/2 {
		t.Fatalf("x = %.1f, want clamped to %.1f", b.X, b.Width/2)
	}
}

func TestBoss_VolleyByHealth(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   int
		speed  float64
	}{
		{"wide fan", 45, 5, 4},
		{"narrow fan", 25, 3, 3},
		{"aimed spread", 9, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			w := g.World()
			b := newBoss(w)
			b.Phase = BossFighting
			b.Y = BossTargetY
			b.Health = tt.health
			b.ShootTimer = BossShootFrames

			b.Update(w)

			if len(w.EnemyBullets) != tt.want {
				t.Fatalf("bullets = %d, want %d", len(w.EnemyBullets), tt.want)
			}
			for _, bullet := range w.EnemyBullets {
				if s := bullet.VX*bullet.VX + bullet.VY*bullet.VY; s < tt.speed*tt.speed-1e-6 || s > tt.speed*tt.speed+1e-6 {
					t.Fatalf("bullet speed^2 = %.3f, want %.1f", s, tt.speed*tt.speed)
				}
				if bullet.VY <= 0 {
					t.Fatalf("bullet flies upwards: vy = %.2f", bullet.VY)
				}
			}
		})
	}
}
