package game

import "time"

// WeaponType defines the player's selectable weapons
type WeaponType int

const (
	WeaponTypeBullet WeaponType = iota
	WeaponTypeLaser
	WeaponTypeMissile
)

func (w WeaponType) String() string {
	switch w {
	case WeaponTypeLaser:
		return "laser"
	case WeaponTypeMissile:
		return "missile"
	default:
		return "bullet"
	}
}

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type WeaponType

	// Cooldown is the minimum wall-clock gap between shots; zero fires every frame
	Cooldown time.Duration

	// Sound is the cue played when the weapon fires
	Sound Sound
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypeBullet:
		return WeaponConfig{
			Type:     WeaponTypeBullet,
			Cooldown: BulletCooldown,
			Sound:    SoundShoot,
		}
	case WeaponTypeLaser:
		return WeaponConfig{
			Type:  WeaponTypeLaser,
			Sound: SoundLaser,
		}
	case WeaponTypeMissile:
		return WeaponConfig{
			Type:     WeaponTypeMissile,
			Cooldown: MissileCooldown,
			Sound:    SoundMissile,
		}
	default:
		return GetWeaponConfig(WeaponTypeBullet)
	}
}

// CanShoot checks if a weapon is ready to fire given the time since the last shot
func (wc WeaponConfig) CanShoot(sinceLastShot time.Duration) bool {
	return sinceLastShot > wc.Cooldown
}
