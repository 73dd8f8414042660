// Package sine is a synthetic producer backend. It needs no hardware
// and is the default on every platform: each channel gets a detuned
// sine so a multi-channel display shows visibly distinct traces.
package sine

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/noriah/wavescope/producer"
	"github.com/noriah/wavescope/window"
)

func init() {
	producer.RegisterBackend("sine", Backend{})
}

// BaseFrequency is the fundamental of channel 0, in hertz.
const BaseFrequency = 0.5

// Detune is the per-channel frequency offset multiplier.
const Detune = 0.25

type Backend struct{}

func (b Backend) Init() error {
	return nil
}

func (b Backend) Close() error {
	return nil
}

func (b Backend) Devices() ([]producer.Device, error) {
	return []producer.Device{Device{}}, nil
}

func (b Backend) DefaultDevice() (producer.Device, error) {
	return Device{}, nil
}

func (b Backend) Start(cfg producer.SessionConfig) (producer.Session, error) {
	if cfg.SampleRate < 1 {
		return nil, errors.New("sample rate too low (1 min)")
	}

	return &Session{cfg: cfg}, nil
}

type Device struct{}

func (d Device) String() string {
	return "sine"
}

// Session generates one frame per tick at the configured sample rate.
type Session struct {
	cfg  producer.SessionConfig
	tick int
}

// Start runs the generator clock until the context ends or the buffer
// rejects a frame.
func (s *Session) Start(ctx context.Context, buf *window.Buffer) error {
	rate := time.Second / time.Duration(s.cfg.SampleRate)

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	frame := make([]float64, s.cfg.ChannelCount)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
		}

		s.fill(frame)

		if err := buf.AddSample(frame); err != nil {
			return errors.Wrap(err, "failed to push frame")
		}
	}
}

// fill writes the next frame and advances the generator clock.
func (s *Session) fill(frame []float64) {
	t := float64(s.tick) / float64(s.cfg.SampleRate)
	s.tick++

	for idx := range frame {
		freq := BaseFrequency + Detune*float64(idx)
		frame[idx] = math.Sin(2 * math.Pi * freq * t)
	}
}
