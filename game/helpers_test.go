package game

import (
	"math/rand"
	"testing"
	"time"
)

// fixedSource makes every rand draw return the same value
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (fixedSource) Seed(int64)     {}

// randAt returns a source whose Float64 draws are always approximately f
func randAt(f float64) *rand.Rand {
	return rand.New(fixedSource(int64(f * (1 << 63))))
}

func newTestGame(t *testing.T, mutate ...func(*Config)) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PowerUpDropChance = 0
	cfg.StarCount = 0
	for _, m := range mutate {
		m(&cfg)
	}
	g := NewGame(cfg, rand.New(rand.NewSource(1)), NewManualClock(time.Unix(1_700_000_000, 0)))
	g.Start()
	return g
}

func testClock(t *testing.T, g *Game) *ManualClock {
	t.Helper()
	c, ok := g.World().Clock().(*ManualClock)
	if !ok {
		t.Fatalf("clock is %T, want *ManualClock", g.World().Clock())
	}
	return c
}

func addEnemy(w *World, x, y float64, t EnemyType) *Enemy {
	e := newEnemy(w, x, y, t)
	w.Enemies = append(w.Enemies, e)
	return e
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func hasSound(events []Event, s Sound) bool {
	for _, e := range events {
		if e.Type == EventSound && e.Sound == s {
			return true
		}
	}
	return false
}
