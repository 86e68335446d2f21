package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Environment keys read from the process or a .env file
const (
	envConfigPath = "STARSTRIKE_CONFIG"
	envSeed       = "GAME_RAND_SEED"
	envMute       = "STARSTRIKE_MUTE"
)

const defaultVolume = 0.5

// parseSettings resolves launch settings. Environment values are defaults and flags
// given on the command line win.
func parseSettings(args []string, getenv func(string) string, now time.Time) (launchSettings, error) {
	s := launchSettings{
		configPath: getenv(envConfigPath),
		seed:       now.UnixNano(),
		volume:     defaultVolume,
	}

	if v := getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("%s=%q: %w", envSeed, v, err)
		}
		s.seed = seed
	}
	if v := getenv(envMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s=%q: %w", envMute, v, err)
		}
		s.mute = mute
	}

	fs := flag.NewFlagSet("starstrike", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&s.configPath, "config", s.configPath, "path to a YAML tuning file")
	fs.Int64Var(&s.seed, "seed", s.seed, "random seed for the simulation")
	fs.BoolVar(&s.mute, "mute", s.mute, "start with audio muted")
	fs.Float64Var(&s.volume, "volume", s.volume, "master volume, 0..1")
	fs.BoolVar(&s.profile, "profile", s.profile, "capture a CPU profile and trace when FPS drops")
	if err := fs.Parse(args); err != nil {
		return s, err
	}

	if s.volume < 0 || s.volume > 1 {
		return s, fmt.Errorf("volume %.2f outside 0..1", s.volume)
	}
	return s, nil
}
