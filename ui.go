package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"starstrike/game"
)

// drawText draws a string with its top-left corner at (x, y)
func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	text.Draw(screen, s, g.face, op)
}

// drawTextCentered draws a string centered on (x, y)
func (g *Game) drawTextCentered(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.face, op)
}

// hudLines formats the status panel
func hudLines(h game.HUD) []string {
	lines := []string{
		fmt.Sprintf("SCORE  %d", h.Score),
		fmt.Sprintf("LIVES  %s", strings.Repeat("^ ", h.Lives)),
		fmt.Sprintf("STAGE  %d", h.Stage),
		fmt.Sprintf("POWER  %d/%d", h.Power, game.MaxPower),
		fmt.Sprintf("SHIELD %d/%d", h.Shield, h.ShieldMax),
		fmt.Sprintf("WEAPON %s", strings.ToUpper(h.Weapon.String())),
		fmt.Sprintf("RANK   %s", h.Rank),
	}
	if h.Combo > 1 {
		lines = append(lines, fmt.Sprintf("COMBO  %d  x%d", h.Combo, h.Multiplier))
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if !g.started {
		return
	}
	h := g.core.HUD()

	g.drawText(screen, strings.Join(hudLines(h), "\n"), hudMarginX, hudMarginY, colorText)

	if g.audio != nil && !g.audio.Enabled() {
		g.drawText(screen, "NO AUDIO", float64(g.config.ScreenWidth)-70, hudMarginY, withAlpha(colorText, 0.5))
	}

	if h.BossActive && h.BossMaxHealth > 0 {
		x := (float64(g.config.ScreenWidth) - bossBarWidth) / 2
		frac := float64(h.BossHealth) / float64(h.BossMaxHealth)
		drawRect(screen, x, bossBarY, bossBarWidth, bossBarHeight, colorHealthBack)
		drawRect(screen, x, bossBarY, bossBarWidth*frac, bossBarHeight, colorHealthFill)
		drawRectOutline(screen, x, bossBarY, bossBarWidth, bossBarHeight, 1, colorText)
		g.drawTextCentered(screen, "BOSS", float64(g.config.ScreenWidth)/2, bossBarY+bossBarHeight+10, colorText)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, lines []string, accent string) {
	width, height := float64(g.config.ScreenWidth), float64(g.config.ScreenHeight)
	drawRect(screen, 0, 0, width, height, colorOverlay)

	cy := height/2 - float64(len(lines))*hudLineHeight/2
	g.drawTextCentered(screen, accent, width/2, cy-2*hudLineHeight, colorAccent)
	g.drawTextCentered(screen, strings.Join(lines, "\n"), width/2, cy+float64(len(lines))*hudLineHeight/2, colorText)
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	g.drawOverlay(screen, []string{
		"ARROWS / WASD  move",
		"SPACE  fire",
		"1 2 3  bullet / laser / missile",
		"M  mute    ALT+ENTER  fullscreen",
		"",
		"press SPACE or ENTER to start",
	}, "STAR STRIKE")
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	h := g.core.HUD()
	g.drawOverlay(screen, []string{
		fmt.Sprintf("final score  %d", g.core.FinalScore()),
		fmt.Sprintf("stage  %d", h.Stage),
		fmt.Sprintf("rank  %s", h.Rank),
		"",
		"press SPACE or ENTER to play again",
	}, "GAME OVER")
}
