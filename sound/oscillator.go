// Package sound plays the background drone: a single continuous oscillator
// streamed to an ebiten audio player.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

func ParseWaveform(s string) (Waveform, error) {
	switch w := Waveform(strings.ToLower(strings.TrimSpace(s))); w {
	case WaveSine, WaveSquare, WaveSawtooth, WaveTriangle:
		return w, nil
	case "saw":
		return WaveSawtooth, nil
	}
	return "", fmt.Errorf("sound: unknown waveform %q", s)
}

const bytesPerFrame = 4 // 16-bit stereo

// Oscillator is an endless 16-bit little-endian stereo stream of one
// waveform at a fixed frequency and gain.
type Oscillator struct {
	wave       Waveform
	gain       float64
	phase      float64
	phaseInc   float64
	sampleRate int
	pending    []byte
}

func NewOscillator(wave Waveform, freq, gain float64, sampleRate int) *Oscillator {
	return &Oscillator{
		wave:       wave,
		gain:       math.Max(0, math.Min(1, gain)),
		phaseInc:   freq / float64(sampleRate),
		sampleRate: sampleRate,
	}
}

// Sample returns the next mono sample in [-gain, gain] and advances the
// phase.
func (o *Oscillator) Sample() float64 {
	var v float64
	switch o.wave {
	case WaveSine:
		v = math.Sin(2 * math.Pi * o.phase)
	case WaveSquare:
		if o.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	case WaveTriangle:
		v = 1 - 4*math.Abs(o.phase-0.5)
	default:
		v = 2 * (o.phase - 0.5)
	}

	o.phase += o.phaseInc
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	return v * o.gain
}

// Read fills p with whole frames. A trailing partial frame is kept for the
// next call so the byte stream never splits a sample.
func (o *Oscillator) Read(p []byte) (int, error) {
	n := copy(p, o.pending)
	o.pending = o.pending[n:]

	var frame [bytesPerFrame]byte
	for n < len(p) {
		s := int16(o.Sample() * math.MaxInt16)
		binary.LittleEndian.PutUint16(frame[0:], uint16(s))
		binary.LittleEndian.PutUint16(frame[2:], uint16(s))
		c := copy(p[n:], frame[:])
		if c < bytesPerFrame {
			o.pending = append(o.pending[:0], frame[c:]...)
		}
		n += c
	}
	return n, nil
}
