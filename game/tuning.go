package game

import "time"

// Velocities are pixels per frame and timers count frames unless the name says otherwise.
const (
	PlayerWidth              = 40.0
	PlayerHeight             = 50.0
	PlayerSpeed              = 5.0
	PlayerBottomOffset       = 100.0 // start y is screen height minus this
	PlayerInvulnerableFrames = 120
	PlayerHitParticles       = 20
	ShieldBurstParticles     = 10
	HitScreenShake           = 20
	TrailParticlesPerFrame   = 3
	MaxPower                 = 3

	BulletSpeed       = 10.0
	BulletWidth       = 4.0
	BulletHeight      = 20.0
	EnemyBulletWidth  = 6.0
	EnemyBulletHeight = 12.0

	LaserWidth = 20.0

	MissileWidth              = 8.0
	MissileHeight             = 20.0
	MissileSpeed              = 8.0
	MissileLaunchSpeed        = 5.0
	MissileExplosionParticles = 20

	PowerUpSize        = 20.0
	PowerUpSpeed       = 2.0
	PowerUpScore       = 500
	PowerUpPowerChance = 0.7

	ComboWindowFrames  = 60
	ComboStep          = 5
	MaxScoreMultiplier = 8

	EnemySpawnY        = -30.0
	EnemySpawnMargin   = 30.0
	SpawnRateBase      = 120
	SpawnRateMin       = 30
	SpawnRateStep      = 10
	SpawnRateStepScore = 1000

	EnemyExplosionParticles = 15
	EnemyEmberParticles     = 8

	SplitterMinY        = 50.0
	SplitterChildren    = 3
	SplitterChildOffset = 30.0
	SplitterChildSpeed  = 3.0

	BossWidth              = 120.0
	BossHeight             = 100.0
	BossHealth             = 50
	BossSpeed              = 1.0
	BossStartY             = -100.0
	BossTargetY            = 150.0
	BossPatternFrames      = 120
	BossShootFrames        = 30
	BossScore              = 5000
	BossExplosionParticles = 50
	BossHitParticles       = 3
	BossDrops              = 3

	ParticleDamping = 0.95
	ExplosionShrink = 0.98

	BackdropChance = 0.005
	GridSpacing    = 50.0
)

// Wall-clock weapon cadence.
const (
	BulletCooldown  = 150 * time.Millisecond
	MissileCooldown = 500 * time.Millisecond
)
