package main

import (
	"errors"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"starstrike/audio"
	"starstrike/game"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}

	settings, err := parseSettings(os.Args[1:], os.Getenv, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	config := game.DefaultConfig()
	if settings.configPath != "" {
		config, err = game.LoadConfig(settings.configPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded tuning from %s", settings.configPath)
	}
	log.Printf("seed %d, screen %dx%d, mute %v", settings.seed, config.ScreenWidth, config.ScreenHeight, settings.mute)

	player := audio.NewPlayer(settings.volume, settings.mute)
	defer player.Close()

	g := NewGame(config, rand.New(rand.NewSource(settings.seed)), player)
	if settings.profile {
		g.profiler = NewProfiler()
	}

	sw, sh := ebiten.Monitor().Size()
	w, h := config.ScreenWidth, config.ScreenHeight
	if sw > 0 && sh > 0 && (w > sw || h > sh) {
		scale := min(float64(sw)/float64(w), float64(sh)/float64(h)) * windowedSizeRatio
		w, h = int(float64(w)*scale), int(float64(h)*scale)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Star Strike")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
