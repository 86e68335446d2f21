package game

import "time"

// Rank is a cosmetic label derived from cumulative score
type Rank string

const (
	RankRookie  Rank = "ROOKIE"
	RankPilot   Rank = "PILOT"
	RankVeteran Rank = "VETERAN"
	RankAce     Rank = "ACE"
)

// RankFor returns the rank earned by a cumulative score
func RankFor(totalScore int) Rank {
	switch {
	case totalScore >= 50000:
		return RankAce
	case totalScore >= 20000:
		return RankVeteran
	case totalScore >= 5000:
		return RankPilot
	default:
		return RankRookie
	}
}

// State is the scalar part of the simulation: counters, timers and flags every
// component reads and writes.
type State struct {
	Score           int
	TotalScore      int
	Lives           int
	Power           int
	Shield          int
	ShieldMax       int
	Stage           int
	Combo           int
	ComboTimer      int
	ScoreMultiplier int
	Weapon          WeaponType
	EnemiesKilled   int
	BossSpawned     bool
	Rank            Rank
	ScreenShake     int
	GameOver        bool

	// lastShot is shared by the bullet and missile cooldowns
	lastShot time.Time
}

func newState(cfg Config) State {
	return State{
		Lives:           cfg.StartLives,
		Power:           1,
		ShieldMax:       cfg.ShieldMax,
		Stage:           1,
		ScoreMultiplier: 1,
		Weapon:          WeaponTypeBullet,
		Rank:            RankRookie,
	}
}

// HUD is a copy of the state fields the UI displays
type HUD struct {
	Score         int
	Lives         int
	Power         int
	Shield        int
	ShieldMax     int
	Stage         int
	Combo         int
	Multiplier    int
	Rank          Rank
	Weapon        WeaponType
	BossActive    bool
	BossHealth    int
	BossMaxHealth int
	GameOver      bool
}
