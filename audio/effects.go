package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/parameter"
)

// WaveType selects the tone generator of a cue
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// NewTone returns a fixed-frequency tone cut to duration
// Returns nil when the generator refuses freq for rate
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	var (
		tone beep.Streamer
		err  error
	)
	switch wave {
	case WaveSquare:
		tone, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		tone, err = generators.SawtoothTone(rate, freq)
	default:
		tone, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return nil
	}
	return beep.Take(rate.N(duration), tone)
}

// sweep is a sine whose frequency glides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	pos, total int
	rate       beep.SampleRate
}

// NewSweep creates a sine gliding from start to end over duration
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: start, end: end, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := min(len(samples), s.total-s.pos)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v

		freq := s.start + (s.end-s.start)*float64(s.pos)/float64(s.total)
		_, s.phase = math.Modf(s.phase + freq/float64(s.rate))
		s.pos++
	}
	return n, true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
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
	if releaseStart < e.attackSamples {
		releaseStart = e.attackSamples
	}

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if s == nil {
		return nil
	}
	return newVolume(NewEnvelope(s, d, parameter.SoundAttack, parameter.SoundRelease, rate), parameter.SoundVolume)
}

// NewCue returns a fresh streamer for st, nil for an unknown sound
func NewCue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	d := CueDuration(st)
	switch st {
	case core.SoundAccept:
		return shaped(NewTone(parameter.AcceptSoundFreq, d, WaveSine, rate), d, rate)
	case core.SoundReject:
		return shaped(NewTone(parameter.RejectSoundFreq, d, WaveSaw, rate), d, rate)
	case core.SoundSwap:
		return shaped(NewTone(parameter.SwapSoundFreq, d, WaveSquare, rate), d, rate)
	case core.SoundUndo:
		return shaped(NewSweep(parameter.UndoSoundFreqStart, parameter.UndoSoundFreqEnd, d, rate), d, rate)
	default:
		return nil
	}
}

// CueDuration returns the length of the cue for st, 0 for an unknown sound
func CueDuration(st core.SoundType) time.Duration {
	switch st {
	case core.SoundAccept:
		return parameter.AcceptSoundDuration
	case core.SoundReject:
		return parameter.RejectSoundDuration
	case core.SoundSwap:
		return parameter.SwapSoundDuration
	case core.SoundUndo:
		return parameter.UndoSoundDuration
	default:
		return 0
	}
}
