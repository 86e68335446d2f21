package game

import "math/rand"

// Game is the frame orchestrator. It owns the world and runs every per-frame step
// in a fixed order. Presentation code only needs Start, Tick and the game-over accessors.
type Game struct {
	world           *World
	spawner         *Spawner
	collisionSystem *CollisionSystem
	config          Config

	running bool
}

// NewGame creates a new game instance. Nothing runs until Start is called.
func NewGame(config Config, rng *rand.Rand, clock Clock) *Game {
	if clock == nil {
		clock = SystemClock{}
	}
	world := NewWorld(config, rng, clock)

	return &Game{
		world:           world,
		spawner:         NewSpawner(),
		collisionSystem: NewCollisionSystem(world),
		config:          config,
	}
}

// Start resets every piece of state to its initial value and begins a new run.
// It is also the restart verb after a game over.
func (g *Game) Start() {
	g.world.Reset()
	g.spawner.Reset()
	g.running = true
}

// Tick advances exactly one frame and returns the events emitted during it, in
// emission order. It does nothing before Start or after the game is over.
func (g *Game) Tick(in Input) []Event {
	if !g.running {
		return nil
	}
	w := g.world
	w.Frame++

	g.updateEntities(in)
	w.compact()

	g.spawner.Update(w)

	g.collisionSystem.CheckCollisions()
	w.compact()

	g.updateDecoration()

	st := &w.State
	st.Rank = RankFor(st.TotalScore)
	if st.GameOver {
		g.running = false
		w.emit(Event{Type: EventGameOver, Amount: st.Score})
	}
	return w.drainEvents()
}

// updateEntities advances every entity once. Entities that leave the screen or run
// out of life flag themselves and are dropped by the following compaction.
func (g *Game) updateEntities(in Input) {
	w := g.world
	st := &w.State

	w.Player.Update(w, in)
	if w.Boss != nil {
		w.Boss.Update(w)
	}
	if w.Laser != nil {
		w.Laser.Update(w, in)
	}
	for _, m := range w.Missiles {
		m.Update(w)
	}
	for _, b := range w.Bullets {
		b.Update(w)
	}
	for _, e := range w.Enemies {
		e.Update(w)
	}
	for _, b := range w.EnemyBullets {
		b.Update(w)
	}
	for _, p := range w.PowerUps {
		p.Update(w)
	}
	for _, p := range w.Particles {
		p.Update()
	}

	if st.ComboTimer > 0 {
		st.ComboTimer--
		if st.ComboTimer == 0 {
			st.Combo = 0
			st.ScoreMultiplier = 1
		}
	}
	if st.ScreenShake > 0 {
		st.ScreenShake--
	}

	for _, o := range w.Backdrop {
		o.Update(w)
	}
}

// updateDecoration handles the purely cosmetic parts of the frame
func (g *Game) updateDecoration() {
	w := g.world

	w.Player.emitTrail(w)
	for _, s := range w.Stars {
		s.Update(w)
	}

	w.GridOffset++
	if w.GridOffset > GridSpacing {
		w.GridOffset = 0
	}

	if w.rng.Float64() < BackdropChance {
		w.Backdrop = append(w.Backdrop, newBackgroundObject(w))
	}
}

// Running reports whether a run is in progress
func (g *Game) Running() bool {
	return g.running
}

// Over reports whether the last run ended in a game over
func (g *Game) Over() bool {
	return g.world.State.GameOver
}

// FinalScore is the score of the current or last run
func (g *Game) FinalScore() int {
	return g.world.State.Score
}

// World exposes the simulation for rendering. Callers must treat it as read-only.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration the game was created with
func (g *Game) Config() Config {
	return g.config
}

// HUD returns a snapshot of the values the UI displays
func (g *Game) HUD() HUD {
	st := g.world.State
	hud := HUD{
		Score:      st.Score,
		Lives:      st.Lives,
		Power:      st.Power,
		Shield:     st.Shield,
		ShieldMax:  st.ShieldMax,
		Stage:      st.Stage,
		Combo:      st.Combo,
		Multiplier: st.ScoreMultiplier,
		Rank:       st.Rank,
		Weapon:     st.Weapon,
		GameOver:   st.GameOver,
	}
	if b := g.world.Boss; b != nil {
		hud.BossActive = true
		hud.BossHealth = b.Health
		hud.BossMaxHealth = b.MaxHealth
	}
	return hud
}
