package sound

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/scroller/prefabs"
)

// Drone is the background hum. It is created once and toggled; the stream
// keeps its phase across pauses.
type Drone struct {
	player *audio.Player
	logger *log.Logger
}

// NewDrone creates the drone on ctx. The context's sample rate wins over the
// one in spec.
func NewDrone(ctx *audio.Context, spec prefabs.MusicSpec, logger *log.Logger) (*Drone, error) {
	if ctx == nil {
		return nil, fmt.Errorf("sound: audio context is nil")
	}
	wave, err := ParseWaveform(spec.Waveform)
	if err != nil {
		return nil, err
	}
	if spec.Frequency <= 0 {
		return nil, fmt.Errorf("sound: frequency %v must be positive", spec.Frequency)
	}

	osc := NewOscillator(wave, spec.Frequency, spec.Gain, ctx.SampleRate())
	player, err := ctx.NewPlayer(osc)
	if err != nil {
		return nil, fmt.Errorf("sound: new player: %w", err)
	}
	return &Drone{player: player, logger: logger}, nil
}

func (d *Drone) On() bool {
	return d != nil && d.player.IsPlaying()
}

// Toggle starts or pauses the drone and returns the new state.
func (d *Drone) Toggle() bool {
	if d == nil {
		return false
	}
	if d.player.IsPlaying() {
		d.player.Pause()
	} else {
		d.player.Play()
	}
	on := d.player.IsPlaying()
	if d.logger != nil {
		d.logger.Debug("music toggled", "on", on)
	}
	return on
}

func (d *Drone) Close() error {
	if d == nil {
		return nil
	}
	return d.player.Close()
}
