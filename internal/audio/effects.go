// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration. attack+release longer than duration
// leaves no sustain.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped single note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Cue builders. Volumes are relative; the manager applies the master level.

func createShotSound(rate beep.SampleRate) beep.Streamer {
	d := 40 * time.Millisecond
	return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 30*time.Millisecond, rate), 0.15)
}

func createKillSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, 50*time.Millisecond, WaveSquare, rate),
		tone(1318.51, 90*time.Millisecond, WaveSquare, rate),
	), 0.2)
}

func createLeakSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, 200*time.Millisecond, WaveSaw, rate), 0.35)
}

func createWaveStartSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(440, 120*time.Millisecond, WaveSine, rate),
		tone(660, 120*time.Millisecond, WaveSine, rate),
	), 0.4)
}

func createWaveEndSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(660, 100*time.Millisecond, WaveSine, rate),
		tone(880, 100*time.Millisecond, WaveSine, rate),
		tone(1320, 200*time.Millisecond, WaveSine, rate),
	), 0.4)
}

func createGameOverSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(392, 250*time.Millisecond, WaveSaw, rate),
		tone(311.13, 250*time.Millisecond, WaveSaw, rate),
		tone(196, 600*time.Millisecond, WaveSaw, rate),
	), 0.35)
}

func createBuildSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(523.25, 80*time.Millisecond, WaveSine, rate), 0.3)
}

// SoundType names a cue.
type SoundType int

const (
	SoundShot SoundType = iota
	SoundKill
	SoundLeak
	SoundWaveStart
	SoundWaveEnd
	SoundGameOver
	SoundBuild
)

// GetSoundEffect returns a fresh streamer for the cue, or nil if unknown.
func GetSoundEffect(sound SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case SoundShot:
		return createShotSound(rate)
	case SoundKill:
		return createKillSound(rate)
	case SoundLeak:
		return createLeakSound(rate)
	case SoundWaveStart:
		return createWaveStartSound(rate)
	case SoundWaveEnd:
		return createWaveEndSound(rate)
	case SoundGameOver:
		return createGameOverSound(rate)
	case SoundBuild:
		return createBuildSound(rate)
	default:
		return nil
	}
}
