package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the PCM rate used for every synthesized buffer and for
// the ebiten audio context.
const SampleRate = 44100

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// envelope times keep note edges from clicking.
const (
	attackTime  = 5 * time.Millisecond
	releaseTime = 20 * time.Millisecond
)

// Synthesize renders a single tone as 16-bit little-endian stereo PCM.
// A frequency of zero (a rest) yields silence of the same length, so
// rests occupy real time in the melody without a special case upstream.
func Synthesize(wave Waveform, freq float64, d time.Duration, volume float64) []byte {
	frames := int(d.Seconds() * SampleRate)
	if frames < 0 {
		frames = 0
	}
	buf := make([]byte, frames*4)
	if freq <= 0 || volume <= 0 {
		return buf
	}

	attack := int(attackTime.Seconds() * SampleRate)
	release := int(releaseTime.Seconds() * SampleRate)
	phaseInc := 2 * math.Pi * freq / SampleRate

	phase := 0.0
	for i := 0; i < frames; i++ {
		var sample float64
		switch wave {
		case WaveSquare:
			if math.Sin(phase) >= 0 {
				sample = 1
			} else {
				sample = -1
			}
		default:
			sample = math.Sin(phase)
		}
		phase += phaseInc

		env := 1.0
		if attack > 0 && i < attack {
			env = float64(i) / float64(attack)
		}
		if release > 0 && frames-i < release {
			env = math.Min(env, float64(frames-i)/float64(release))
		}

		v := int16(sample * env * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
