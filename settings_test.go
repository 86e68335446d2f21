package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"starstrike/game"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

var launchTime = time.Unix(1_700_000_000, 0)

func TestParseSettingsDefaults(t *testing.T) {
	s, err := parseSettings(nil, envOf(nil), launchTime)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.configPath != "" || s.mute || s.profile {
		t.Fatalf("defaults = %+v, want empty path, unmuted, no profile", s)
	}
	if s.seed != launchTime.UnixNano() {
		t.Fatalf("seed = %d, want launch time %d", s.seed, launchTime.UnixNano())
	}
	if s.volume != defaultVolume {
		t.Fatalf("volume = %.2f, want %.2f", s.volume, defaultVolume)
	}
}

func TestParseSettingsFlagsOverrideEnv(t *testing.T) {
	env := envOf(map[string]string{
		envConfigPath: "env.yaml",
		envSeed:       "7",
		envMute:       "true",
	})

	s, err := parseSettings(nil, env, launchTime)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.configPath != "env.yaml" || s.seed != 7 || !s.mute {
		t.Fatalf("env settings = %+v", s)
	}

	s, err = parseSettings([]string{"-config", "flag.yaml", "-seed", "42", "-mute=false", "-profile", "-volume", "0.25"}, env, launchTime)
	if err != nil {
		t.Fatalf("parseSettings: %v", err)
	}
	if s.configPath != "flag.yaml" || s.seed != 42 || s.mute || !s.profile || s.volume != 0.25 {
		t.Fatalf("flag settings = %+v", s)
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad env seed", nil, map[string]string{envSeed: "abc"}},
		{"bad env mute", nil, map[string]string{envMute: "sometimes"}},
		{"unknown flag", []string{"-turbo"}, nil},
		{"volume too loud", []string{"-volume", "1.5"}, nil},
		{"negative volume", []string{"-volume", "-0.1"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseSettings(tt.args, envOf(tt.env), launchTime); err == nil {
				t.Fatalf("parseSettings succeeded, want error")
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	h := game.HUD{Score: 1200, Lives: 2, Power: 2, Shield: 1, ShieldMax: 3, Stage: 3, Rank: game.RankRookie, Weapon: game.WeaponTypeLaser, Combo: 1, Multiplier: 1}
	lines := hudLines(h)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"SCORE  1200", "STAGE  3", "POWER  2/3", "SHIELD 1/3", "WEAPON LASER", "RANK   ROOKIE"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("HUD %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "COMBO") {
		t.Fatalf("combo of 1 shown in HUD")
	}

	h.Combo, h.Multiplier = 6, 2
	if got := hudLines(h); got[len(got)-1] != "COMBO  6  x2" {
		t.Fatalf("combo line = %q, want %q", got[len(got)-1], "COMBO  6  x2")
	}
}

func TestGeometryHelpers(t *testing.T) {
	p := rotatePoint(point{x: 1, y: 0}, math.Pi/2)
	if math.Abs(p.x) > 1e-9 || math.Abs(p.y-1) > 1e-9 {
		t.Fatalf("rotate (1,0) by 90 deg = %+v, want (0,1)", p)
	}

	tri := regularPolygon(3, 10)
	if math.Abs(tri[0].x) > 1e-9 || math.Abs(tri[0].y+10) > 1e-9 {
		t.Fatalf("first vertex = %+v, want straight up", tri[0])
	}

	placed := placePolygon([]point{{0, -5}}, 100, 50, math.Pi)
	if math.Abs(placed[0].x-100) > 1e-9 || math.Abs(placed[0].y-55) > 1e-9 {
		t.Fatalf("placed = %+v, want (100,55)", placed[0])
	}

	if c := withAlpha(colorText, 0.5); c.A != 127 {
		t.Fatalf("alpha = %d, want 127", c.A)
	}
}
