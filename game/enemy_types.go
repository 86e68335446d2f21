package game

import (
	"image/color"
	"math/rand"
)

// EnemyType defines different types of enemies
type EnemyType int

const (
	EnemyTypeBasic EnemyType = iota
	EnemyTypeStrong
	EnemyTypeRotating
	EnemyTypeSplitter
	EnemyTypeSniper
)

func (t EnemyType) String() string {
	switch t {
	case EnemyTypeStrong:
		return "strong"
	case EnemyTypeRotating:
		return "rotating"
	case EnemyTypeSplitter:
		return "splitter"
	case EnemyTypeSniper:
		return "sniper"
	default:
		return "basic"
	}
}

// MovePattern selects an enemy's movement behavior
type MovePattern int

const (
	PatternStraight MovePattern = iota
	PatternZigzag
	PatternCircular
	PatternHover
)

// ShotPattern selects how an enemy fires
type ShotPattern int

const (
	ShotAimed ShotPattern = iota // one shot at the player's current position
	ShotCross                    // four shots rotated by the orbit angle
)

// EnemyTypeConfig holds configuration for each enemy type
type EnemyTypeConfig struct {
	Type       EnemyType
	Width      float64
	Height     float64
	Health     int
	Speed      float64
	Score      int
	Patterns   []MovePattern // one is picked uniformly at spawn
	ShootDelay int           // frames between shots
	Shot       ShotPattern
	ShotSpeed  float64
	Color      color.RGBA
}

var enemyTypeConfigs = [...]EnemyTypeConfig{
	EnemyTypeBasic: {
		Type: EnemyTypeBasic, Width: 30, Height: 30, Health: 1, Speed: 2, Score: 100,
		Patterns:   []MovePattern{PatternStraight, PatternZigzag},
		ShootDelay: 120, Shot: ShotAimed, ShotSpeed: 3, Color: ColorBasic,
	},
	EnemyTypeStrong: {
		Type: EnemyTypeStrong, Width: 50, Height: 40, Health: 3, Speed: 1.5, Score: 300,
		Patterns:   []MovePattern{PatternStraight, PatternZigzag},
		ShootDelay: 80, Shot: ShotAimed, ShotSpeed: 3, Color: ColorStrong,
	},
	EnemyTypeRotating: {
		Type: EnemyTypeRotating, Width: 40, Height: 40, Health: 2, Speed: 1.5, Score: 200,
		Patterns:   []MovePattern{PatternCircular},
		ShootDelay: 80, Shot: ShotCross, ShotSpeed: 3, Color: ColorRotating,
	},
	EnemyTypeSplitter: {
		Type: EnemyTypeSplitter, Width: 45, Height: 45, Health: 2, Speed: 1.8, Score: 250,
		Patterns:   []MovePattern{PatternStraight},
		ShootDelay: 80, Shot: ShotAimed, ShotSpeed: 3, Color: ColorSplitter,
	},
	EnemyTypeSniper: {
		Type: EnemyTypeSniper, Width: 35, Height: 35, Health: 1, Speed: 1, Score: 150,
		Patterns:   []MovePattern{PatternHover},
		ShootDelay: 60, Shot: ShotAimed, ShotSpeed: 6, Color: ColorSniper,
	},
}

// GetEnemyTypeConfig returns configuration for an enemy type
func GetEnemyTypeConfig(enemyType EnemyType) EnemyTypeConfig {
	if enemyType < 0 || int(enemyType) >= len(enemyTypeConfigs) {
		return enemyTypeConfigs[EnemyTypeBasic]
	}
	return enemyTypeConfigs[enemyType]
}

type weightedType struct {
	Type   EnemyType
	Weight float64
}

// spawnTables lists the weighted enemy mix per stage; the last entry whose stage has
// been reached applies.
var spawnTables = []struct {
	MinStage int
	Mix      []weightedType
}{
	{1, []weightedType{{EnemyTypeBasic, 0.8}, {EnemyTypeStrong, 0.2}}},
	{2, []weightedType{{EnemyTypeBasic, 0.5}, {EnemyTypeStrong, 0.25}, {EnemyTypeRotating, 0.15}, {EnemyTypeSplitter, 0.1}}},
	{3, []weightedType{{EnemyTypeBasic, 0.4}, {EnemyTypeStrong, 0.2}, {EnemyTypeRotating, 0.15}, {EnemyTypeSplitter, 0.15}, {EnemyTypeSniper, 0.1}}},
}

// spawnMix returns the weighted enemy mix for a stage
func spawnMix(stage int) []weightedType {
	mix := spawnTables[0].Mix
	for _, t := range spawnTables {
		if stage >= t.MinStage {
			mix = t.Mix
		}
	}
	return mix
}

// GetRandomEnemyType draws an enemy type from the stage's weighted mix
func GetRandomEnemyType(stage int, rng *rand.Rand) EnemyType {
	mix := spawnMix(stage)
	r := rng.Float64()
	acc := 0.0
	for _, wt := range mix {
		acc += wt.Weight
		if r < acc {
			return wt.Type
		}
	}
	return mix[len(mix)-1].Type
}
