package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// floorGain is where the exponential decay ends
const floorGain = 0.01

// tone renders one cue: an exponential frequency sweep under an exponential gain decay
type tone struct {
	cue      Cue
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
}

func newTone(cue Cue, rate beep.SampleRate, rng *rand.Rand) *tone {
	return &tone{
		cue:   cue,
		rate:  rate,
		rng:   rng,
		total: rate.N(cue.Duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.total)

		var val float64
		switch t.cue.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = -1
			if t.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(t.phase-0.5)
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}

		val *= sweep(t.cue.Volume, floorGain, progress)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += sweep(t.cue.From, t.cue.To, progress) / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// sweep interpolates exponentially from a to b. Non-positive endpoints fall back to a.
func sweep(a, b, progress float64) float64 {
	if a <= 0 || b <= 0 || a == b {
		return a
	}
	return a * math.Pow(b/a, progress)
}

// withVolume scales a stream by a linear master volume
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
