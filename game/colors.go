package game

import "image/color"

// Particle and entity palette
var (
	ColorPlayer      = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	ColorPlayerTrail = color.RGBA{R: 0x00, G: 0xcc, B: 0xff, A: 0xff}
	ColorShield      = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	ColorAmber       = color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}
	ColorMissileFire = color.RGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
	ColorBoss        = color.RGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff}

	ColorBasic    = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	ColorStrong   = color.RGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff}
	ColorRotating = color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	ColorSplitter = color.RGBA{R: 0x1a, G: 0xbc, B: 0x9c, A: 0xff}
	ColorSniper   = color.RGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff}
)
