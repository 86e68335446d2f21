package main

import (
	"image/color"
	"time"
)

// Color constants
var (
	colorBackground   = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 255}
	colorGrid         = color.NRGBA{R: 0x16, G: 0x21, B: 0x3e, A: 77}
	colorBullet       = color.NRGBA{R: 0xff, G: 0xff, B: 0x66, A: 255}
	colorEnemyBullet  = color.NRGBA{R: 0xff, G: 0x33, B: 0x33, A: 255}
	colorLaserGlow    = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 90}
	colorLaserCore    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 230}
	colorMissile      = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	colorCockpit      = color.NRGBA{R: 0xaa, G: 0xdd, B: 0xff, A: 255}
	colorShieldRing   = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 140}
	colorPowerUp      = color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 255}
	colorShieldUp     = color.NRGBA{R: 0x3d, G: 0xd6, B: 0xff, A: 255}
	colorStation      = color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 153}
	colorStationInner = color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 153}
	colorHealthBack   = color.NRGBA{R: 100, G: 0, B: 0, A: 255}
	colorHealthFill   = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}
	colorText         = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}
	colorAccent       = color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 255}
	colorOverlay      = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
)

// UI constants
const (
	hudMarginX        = 10
	hudMarginY        = 10
	hudLineHeight     = 16
	bossBarWidth      = 300.0
	bossBarHeight     = 10.0
	bossBarY          = 20.0
	backdropAlpha     = 0.6
	windowedSizeRatio = 0.9
)

// Profiling constants
const (
	fpsDropThreshold = 40.0
	fpsWarmup        = 5 * time.Second
)
