package wavescope

import (
	"github.com/pkg/errors"

	"github.com/noriah/wavescope/render"
)

// MaxChannelCount is the maximum number of traces one scope will draw.
const MaxChannelCount = 16

// Config holds the scope parameters.
type Config struct {
	// Backend is the producer backend name from list-backends
	Backend string
	// Device is the device name from list-devices
	Device string
	// SampleRate is the number of samples pushed per channel per second
	SampleRate int
	// WindowSeconds is how much history each channel retains
	WindowSeconds int
	// ChannelCount is the number of channels to read and draw
	ChannelCount int
	// Palette is the ordered channel color list. Empty uses the default.
	Palette render.Palette
}

// NewZeroConfig returns a zero config
// it is the "default"
func NewZeroConfig() Config {
	return Config{
		Backend:       "sine",
		SampleRate:    60,
		WindowSeconds: 5,
		ChannelCount:  2,
	}
}

// Validate cleans things up
func (cfg *Config) Validate() error {
	switch {
	case cfg.ChannelCount > MaxChannelCount:
		return errors.Errorf("too many channels (%d max)", MaxChannelCount)

	case cfg.ChannelCount < 1:
		return errors.New("too few channels (1 min)")

	case cfg.SampleRate < 1:
		return errors.New("sample rate too low (1 min)")

	case cfg.WindowSeconds < 1:
		return errors.New("window too short (1 second min)")
	}

	return nil
}
