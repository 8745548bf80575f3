package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWaveform(t *testing.T) {
	tests := []struct {
		in      string
		want    Waveform
		wantErr bool
	}{
		{"sawtooth", WaveSawtooth, false},
		{" Saw ", WaveSawtooth, false},
		{"sine", WaveSine, false},
		{"triangle", WaveTriangle, false},
		{"square", WaveSquare, false},
		{"noise", "", true},
	}
	for _, tc := range tests {
		got, err := ParseWaveform(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestOscillatorStaysWithinGain(t *testing.T) {
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		t.Run(string(wave), func(t *testing.T) {
			osc := NewOscillator(wave, 110, 0.03, 44100)
			for i := 0; i < 44100; i++ {
				v := osc.Sample()
				require.LessOrEqual(t, math.Abs(v), 0.03+1e-12)
			}
		})
	}
}

func TestSawtoothRamp(t *testing.T) {
	// 4 samples per cycle: -1, -0.5, 0, 0.5, then wraps.
	osc := NewOscillator(WaveSawtooth, 1, 1, 4)
	want := []float64{-1, -0.5, 0, 0.5, -1}
	for i, w := range want {
		assert.InDelta(t, w, osc.Sample(), 1e-9, "sample %d", i)
	}
}

func TestOscillatorReadWholeFrames(t *testing.T) {
	ref := NewOscillator(WaveSawtooth, 110, 0.5, 44100)
	want := make([]byte, 64)
	n, err := ref.Read(want)
	require.NoError(t, err)
	require.Equal(t, 64, n)

	// Odd-sized reads must produce the same byte stream.
	osc := NewOscillator(WaveSawtooth, 110, 0.5, 44100)
	var got []byte
	for _, size := range []int{3, 5, 1, 7, 48} {
		buf := make([]byte, size)
		n, err := osc.Read(buf)
		require.NoError(t, err)
		require.Equal(t, size, n)
		got = append(got, buf...)
	}
	assert.Equal(t, want, got)

	left := int16(binary.LittleEndian.Uint16(want[0:]))
	right := int16(binary.LittleEndian.Uint16(want[2:]))
	assert.Equal(t, left, right)
	assert.Equal(t, int16(-16383), left)
}
