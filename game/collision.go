package game

// CollisionSystem resolves interactions between the world's entity collections
type CollisionSystem struct {
	world *World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{
		world: world,
	}
}

// CheckCollisions runs every pass in a fixed order. Hits only flag entities dead;
// flagged entities are skipped by the remaining passes and the caller compacts the
// collections afterwards.
func (c *CollisionSystem) CheckCollisions() {
	c.laserPass()
	c.missilePass()
	c.bulletPass()
	c.enemyBulletPass()
	c.enemyBodyPass()
	c.bossBodyPass()
	c.powerUpPass()
}

// laserPass only compares horizontal extents: the beam spans the whole screen height
func (c *CollisionSystem) laserPass() {
	w := c.world
	l := w.Laser
	if l == nil {
		return
	}
	for _, e := range w.Enemies {
		if !e.dead && l.OverlapsX(e.Body) {
			e.Hit(w)
		}
	}
	if b := w.Boss; b != nil && !b.dead && l.OverlapsX(b.Body) {
		b.Hit(w)
	}
}

func (c *CollisionSystem) missilePass() {
	w := c.world
	for _, m := range w.Missiles {
		if m.dead {
			continue
		}
		if e := c.firstEnemyHit(m.Body); e != nil {
			m.dead = true
			e.Hit(w)
		} else if b := w.Boss; b != nil && !b.dead && m.Overlaps(b.Body) {
			m.dead = true
			b.Hit(w)
		}
		if m.dead {
			w.burst(MissileExplosionParticles, m.X, m.Y, 0, 0, ColorMissileFire, ParticleExplosion)
		}
	}
}

func (c *CollisionSystem) bulletPass() {
	w := c.world
	for _, bullet := range w.Bullets {
		if bullet.dead {
			continue
		}
		if e := c.firstEnemyHit(bullet.Body); e != nil {
			bullet.dead = true
			e.Hit(w)
		} else if b := w.Boss; b != nil && !b.dead && bullet.Overlaps(b.Body) {
			bullet.dead = true
			b.Hit(w)
		}
	}
}

// enemyBulletPass checks invulnerability per bullet, so a life lost to one bullet
// protects the player from the rest of the volley.
func (c *CollisionSystem) enemyBulletPass() {
	w := c.world
	p := w.Player
	for _, bullet := range w.EnemyBullets {
		if bullet.dead || p.Invulnerable {
			continue
		}
		if bullet.Overlaps(p.Body) {
			bullet.dead = true
			p.Hit(w)
		}
	}
}

// enemyBodyPass rams destroy the enemy without paying out any score
func (c *CollisionSystem) enemyBodyPass() {
	w := c.world
	p := w.Player
	for _, e := range w.Enemies {
		if e.dead || p.Invulnerable {
			continue
		}
		if e.Overlaps(p.Body) {
			e.dead = true
			p.Hit(w)
		}
	}
}

func (c *CollisionSystem) bossBodyPass() {
	w := c.world
	p := w.Player
	if b := w.Boss; b != nil && !b.dead && !p.Invulnerable && b.Overlaps(p.Body) {
		p.Hit(w)
	}
}

func (c *CollisionSystem) powerUpPass() {
	w := c.world
	for _, pu := range w.PowerUps {
		if !pu.dead && pu.Overlaps(w.Player.Body) {
			pu.apply(w)
		}
	}
}

// firstEnemyHit returns the first live enemy overlapping body, in collection order
func (c *CollisionSystem) firstEnemyHit(body Body) *Enemy {
	for _, e := range c.world.Enemies {
		if !e.dead && e.Overlaps(body) {
			return e
		}
	}
	return nil
}
