package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/tomz197/vectoroids/internal/object"
)

// oneShot returns a finite streamer for a one-shot cue, or nil for looping cues.
func oneShot(cue object.Cue) beep.Streamer {
	switch cue {
	case object.CueFire:
		return quieter(beep.Take(sampleRate.N(60*time.Millisecond), sweep(1400, 600, 60*time.Millisecond)), -2)
	case object.CueExplosion:
		return noiseBurst(300*time.Millisecond, 0.5)
	case object.CueCrash:
		return noiseBurst(700*time.Millisecond, 0.8)
	case object.CueWarp:
		return quieter(beep.Take(sampleRate.N(250*time.Millisecond), sweep(200, 1600, 250*time.Millisecond)), -2)
	}
	return nil
}

// loop returns an endless streamer for a looping cue, or nil for one-shot cues.
func loop(cue object.Cue) beep.Streamer {
	switch cue {
	case object.CueThrusters:
		return rumble()
	case object.CueSaucer:
		return quieter(warble(440, 560, 8), -2.5)
	case object.CueMissile:
		return quieter(pulse(1200, 6), -3)
	}
	return nil
}

// quieter scales s by base-2 volume steps.
func quieter(s beep.Streamer, steps float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: steps}
}

// sweep glides a sine from one frequency to another over d, then holds.
func sweep(from, to float64, d time.Duration) beep.Streamer {
	total := float64(sampleRate.N(d))
	var pos, phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			f := from + (to-from)*math.Min(pos/total, 1)
			phase += f / float64(sampleRate)
			phase -= math.Floor(phase)
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// noiseBurst is white noise with an exponential decay.
func noiseBurst(d time.Duration, amp float64) beep.Streamer {
	n := sampleRate.N(d)
	rng := rand.New(rand.NewSource(int64(n)))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			env := amp * math.Exp(-5*float64(pos)/float64(n))
			v := env * (rng.Float64()*2 - 1)
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// rumble is low-passed noise for the thrusters.
func rumble() beep.Streamer {
	rng := rand.New(rand.NewSource(1))
	var last float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			last += 0.05 * (rng.Float64()*2 - 1 - last)
			v := 0.6 * last
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// warble alternates between two sine tones rate times per second.
func warble(low, high float64, rate int) beep.Streamer {
	lo, _ := generators.SineTone(sampleRate, low)
	hi, _ := generators.SineTone(sampleRate, high)
	half := sampleRate.N(time.Second) / (2 * rate)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		src := lo
		if (pos/half)%2 == 1 {
			src = hi
		}
		// Never cross a switch point inside one call
		n := min(len(samples), half-pos%half)
		n, _ = src.Stream(samples[:n])
		pos += n
		return n, true
	})
}

// pulse is a sine beeping on and off rate times per second.
func pulse(freq float64, rate int) beep.Streamer {
	tone, _ := generators.SineTone(sampleRate, freq)
	period := sampleRate.N(time.Second) / rate
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, _ := tone.Stream(samples)
		for i := 0; i < n; i++ {
			if (pos+i)%period >= period/2 {
				samples[i][0], samples[i][1] = 0, 0
			}
		}
		pos += n
		return n, true
	})
}
