package game

// Spawner decides when enemies and the boss enter the world
type Spawner struct {
	timer int
}

// NewSpawner creates a spawner with an empty timer
func NewSpawner() *Spawner {
	return &Spawner{}
}

// SpawnRate returns the frames between enemy spawns for a score. It shrinks by
// SpawnRateStep every SpawnRateStepScore points down to SpawnRateMin.
func SpawnRate(score int) int {
	return max(SpawnRateMin, SpawnRateBase-(score/SpawnRateStepScore)*SpawnRateStep)
}

// Update runs once per frame. A pending boss takes priority, and no enemies are
// spawned while a boss is on screen.
func (s *Spawner) Update(w *World) {
	st := &w.State

	if w.Boss != nil {
		return
	}
	if st.EnemiesKilled >= w.Config.BossKillThreshold && !st.BossSpawned {
		w.Boss = newBoss(w)
		st.BossSpawned = true
		w.emit(Event{Type: EventBossSpawned, Amount: st.Stage, X: w.Boss.X, Y: w.Boss.Y})
		return
	}

	s.timer++
	if s.timer > SpawnRate(st.Score) {
		s.spawnEnemy(w)
		s.timer = 0
	}
}

func (s *Spawner) spawnEnemy(w *World) {
	x := EnemySpawnMargin + w.rng.Float64()*(w.Config.Width()-2*EnemySpawnMargin)
	t := GetRandomEnemyType(w.State.Stage, w.rng)
	e := newEnemy(w, x, EnemySpawnY, t)
	w.Enemies = append(w.Enemies, e)
	w.emit(Event{Type: EventEnemySpawned, Amount: int(t), X: e.X, Y: e.Y})
}

// Reset clears the spawn timer
func (s *Spawner) Reset() {
	s.timer = 0
}
