package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a finite oscillator whose frequency slides linearly from one value
// to another while its amplitude decays to zero.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
	rng      *rand.Rand
}

// newSweep creates a tone of the given duration.
func newSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		// Linear decay; the first few ms ramp in to avoid clicks.
		vol := 1 - t
		if attack := s.rate.N(3 * time.Millisecond); s.position < attack {
			vol *= float64(s.position) / float64(attack)
		}
		samples[i][0] = val * vol
		samples[i][1] = val * vol

		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero volume
// is rendered silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Stream builds the stream for a sound at the given sample rate. Every
// stream is finite.
func Stream(snd Sound, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	switch snd {
	case SoundFire:
		return newVolume(newSweep(1400, 500, ms(90), WaveSquare, rate), 0.25)
	case SoundEnemyFire:
		return newVolume(newSweep(700, 300, ms(80), WaveSquare, rate), 0.12)
	case SoundExplosion:
		return beep.Mix(
			newVolume(newSweep(0, 0, ms(350), WaveNoise, rate), 0.5),
			newVolume(newSweep(120, 40, ms(300), WaveSine, rate), 0.4),
		)
	case SoundHit:
		return newVolume(newSweep(220, 90, ms(160), WaveSaw, rate), 0.5)
	case SoundBreach:
		return beep.Seq(
			newVolume(newSweep(160, 160, ms(120), WaveSquare, rate), 0.4),
			newVolume(newSweep(120, 120, ms(160), WaveSquare, rate), 0.4),
		)
	case SoundShield:
		return newVolume(newSweep(300, 1200, ms(400), WaveSine, rate), 0.4)
	case SoundWin:
		return beep.Seq(
			newVolume(newSweep(523.25, 523.25, ms(140), WaveSquare, rate), 0.3),
			newVolume(newSweep(659.25, 659.25, ms(140), WaveSquare, rate), 0.3),
			newVolume(newSweep(783.99, 783.99, ms(140), WaveSquare, rate), 0.3),
			newVolume(newSweep(1046.5, 1046.5, ms(360), WaveSquare, rate), 0.3),
		)
	case SoundLose:
		return newVolume(newSweep(440, 55, ms(900), WaveSaw, rate), 0.4)
	default:
		return beep.Silence(0)
	}
}
