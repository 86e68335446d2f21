package game

// Key is a logical key identifier understood by the simulation
type Key int

const (
	KeyArrowLeft Key = iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyFire
	KeyWeapon1
	KeyWeapon2
	KeyWeapon3
)

// Input is the pressed state of every logical key, sampled once per frame.
// A nil Input means nothing is pressed.
type Input map[Key]bool

// Left returns true if either left key is held
func (in Input) Left() bool {
	return in[KeyArrowLeft] || in[KeyA]
}

// Right returns true if either right key is held
func (in Input) Right() bool {
	return in[KeyArrowRight] || in[KeyD]
}

// Up returns true if either up key is held
func (in Input) Up() bool {
	return in[KeyArrowUp] || in[KeyW]
}

// Down returns true if either down key is held
func (in Input) Down() bool {
	return in[KeyArrowDown] || in[KeyS]
}

// Fire returns true if the fire key is held
func (in Input) Fire() bool {
	return in[KeyFire]
}

// WeaponSelect returns the weapon picked by a digit key, lowest digit first
func (in Input) WeaponSelect() (WeaponType, bool) {
	switch {
	case in[KeyWeapon1]:
		return WeaponTypeBullet, true
	case in[KeyWeapon2]:
		return WeaponTypeLaser, true
	case in[KeyWeapon3]:
		return WeaponTypeMissile, true
	}
	return WeaponTypeBullet, false
}
