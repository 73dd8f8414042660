// Package wavescope wires a periodic sample producer, a sliding-window
// buffer and a termbox waveform display into a running scope.
package wavescope

import (
	"context"

	"github.com/pkg/errors"

	"github.com/noriah/wavescope/graphic"
	"github.com/noriah/wavescope/producer"
	"github.com/noriah/wavescope/render"
	"github.com/noriah/wavescope/window"
)

// Run starts to draw the scope on the termbox screen and blocks until
// the user quits or the producer fails.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	// PRODUCER SETUP

	backend, err := producer.InitBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer backend.Close()

	device, err := producer.GetDevice(backend, cfg.Device)
	if err != nil {
		return err
	}

	session, err := backend.Start(producer.SessionConfig{
		Device:       device,
		ChannelCount: cfg.ChannelCount,
		SampleRate:   cfg.SampleRate,
	})
	if err != nil {
		return errors.Wrap(err, "failed to start the producer backend")
	}

	// BUFFER SETUP

	buf, err := window.New(window.Config{
		ChannelCount:  cfg.ChannelCount,
		SampleRate:    cfg.SampleRate,
		WindowSeconds: cfg.WindowSeconds,
	})
	if err != nil {
		return err
	}

	// DISPLAY SETUP

	display := graphic.NewDisplay(render.NewRenderer(buf.Cap(), cfg.Palette))

	if err := display.Init(); err != nil {
		return errors.Wrap(err, "failed to init display")
	}
	defer display.Close()

	display.Bind(buf)
	defer display.Unbind()

	// Root Context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = display.Start(ctx)
	defer display.Stop()

	if err := session.Start(ctx, buf); err != nil {
		if !errors.Is(ctx.Err(), context.Canceled) {
			return errors.Wrap(err, "failed to run producer session")
		}
	}

	return nil
}
