package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/star-dodger/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return clampVolume(cfg.EffectVolumes[st]) * clampVolume(cfg.MasterVolume)
}

// CreatePointSound generates a short high tick for passing an obstacle
func CreatePointSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1318.51, constants.PointSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.PointSoundDuration, constants.PointSoundAttack, constants.PointSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundPoint))
}

// CreateCollisionSound generates a low buzz layered with noise
func CreateCollisionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewOscillator(90.0, constants.CollisionSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constants.CollisionSoundDuration, constants.CollisionSoundAttack, constants.CollisionSoundRelease, rate)

	noise := NewOscillator(0, constants.CollisionSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CollisionSoundDuration, constants.CollisionSoundAttack, constants.CollisionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundCollision))
}

// CreateVictorySound generates a rising two-note chime
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6
	n1 := NewOscillator(1046.50, constants.VictorySoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.VictorySoundNote1Duration, constants.VictorySoundAttack, constants.VictorySoundNote1Release, rate)

	// G6
	n2 := NewOscillator(1567.98, constants.VictorySoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.VictorySoundNote2Duration, constants.VictorySoundAttack, constants.VictorySoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundVictory))
}

// CreateGameOverSound generates a falling three-note tone
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 311.13, 261.63} // G4 Eb4 C4
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, constants.GameOverSoundNoteDuration, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, constants.GameOverSoundNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate))
	}

	return newVolume(beep.Seq(parts...), effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPoint:
		return CreatePointSound(cfg)
	case SoundCollision:
		return CreateCollisionSound(cfg)
	case SoundVictory:
		return CreateVictorySound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
