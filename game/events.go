package game

// EventType identifies what happened during a frame
type EventType int

const (
	EventSound EventType = iota
	EventScore
	EventCombo
	EventPlayerHit
	EventShieldHit
	EventEnemySpawned
	EventEnemyKilled
	EventBossSpawned
	EventBossDefeated
	EventPowerUpCollected
	EventStageCleared
	EventGameOver
)

var eventTypeNames = [...]string{
	EventSound:            "sound",
	EventScore:            "score",
	EventCombo:            "combo",
	EventPlayerHit:        "player_hit",
	EventShieldHit:        "shield_hit",
	EventEnemySpawned:     "enemy_spawned",
	EventEnemyKilled:      "enemy_killed",
	EventBossSpawned:      "boss_spawned",
	EventBossDefeated:     "boss_defeated",
	EventPowerUpCollected: "powerup_collected",
	EventStageCleared:     "stage_cleared",
	EventGameOver:         "game_over",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Sound names an audio cue. How a cue sounds is up to the presentation layer.
type Sound string

const (
	SoundShoot     Sound = "shoot"
	SoundExplosion Sound = "explosion"
	SoundPowerUp   Sound = "powerup"
	SoundHit       Sound = "hit"
	SoundLaser     Sound = "laser"
	SoundMissile   Sound = "missile"
	SoundShield    Sound = "shield"
)

// Event is a discrete signal emitted by the simulation for presentation layers.
// Amount carries points for EventScore, the combo count for EventCombo, the new stage
// for EventStageCleared and the final score for EventGameOver.
type Event struct {
	Type   EventType
	Sound  Sound
	Amount int
	X, Y   float64
}
