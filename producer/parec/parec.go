// Package parec is a producer backend that records real audio through
// the PulseAudio `parec` CLI. Device enumeration goes through the
// PulseAudio native protocol; sample delivery is float32le frames on
// parec's stdout, one frame per tick.
package parec

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"

	"github.com/lawl/pulseaudio"
	"github.com/pkg/errors"

	"github.com/noriah/wavescope/producer"
	"github.com/noriah/wavescope/window"
)

func init() {
	producer.RegisterBackend("parec", Backend{})
}

type Backend struct{}

func (p Backend) Init() error {
	return nil
}

func (p Backend) Close() error {
	return nil
}

func (p Backend) Devices() ([]producer.Device, error) {
	c, err := pulseaudio.NewClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	defer c.Close()

	s, err := c.Sources()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sources")
	}

	devices := make([]producer.Device, len(s))
	for i, source := range s {
		devices[i] = PulseDevice(source.Name)
	}

	return devices, nil
}

func (p Backend) DefaultDevice() (producer.Device, error) {
	return PulseDevice("default"), nil
}

func (p Backend) Start(cfg producer.SessionConfig) (producer.Session, error) {
	dv, ok := cfg.Device.(PulseDevice)
	if !ok {
		return nil, fmt.Errorf("invalid device type %T", cfg.Device)
	}

	if cfg.ChannelCount > 2 {
		return nil, errors.New("channel count not supported, mono/stereo only")
	}

	return &Session{cfg: cfg, device: dv}, nil
}

type PulseDevice string

func (d PulseDevice) String() string {
	return string(d)
}

// Session reads float32le frames from a parec process.
type Session struct {
	cfg    producer.SessionConfig
	device PulseDevice
}

// Start runs parec and feeds the buffer one frame per tick until the
// context ends or the stream breaks.
func (s *Session) Start(ctx context.Context, buf *window.Buffer) error {
	cmd := exec.CommandContext(
		ctx,
		"parec",
		"--format=float32le",
		fmt.Sprintf("--rate=%d", s.cfg.SampleRate),
		fmt.Sprintf("--channels=%d", s.cfg.ChannelCount),
		"-d", s.device.String(),
	)

	cmd.Stderr = os.Stderr

	o, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to get stdout pipe")
	}
	defer o.Close()

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start parec")
	}

	if err := s.read(ctx, o, buf); err != nil {
		return err
	}

	return cmd.Wait()
}

func (s *Session) read(ctx context.Context, o io.Reader, buf *window.Buffer) error {
	reader := bufio.NewReader(o)

	raw := make([]byte, 4*s.cfg.ChannelCount)
	frame := make([]float64, s.cfg.ChannelCount)

	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := io.ReadFull(reader, raw); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return errors.Wrap(err, "failed to read frame")
		}

		for idx := range frame {
			bits := binary.LittleEndian.Uint32(raw[4*idx:])
			frame[idx] = float64(math.Float32frombits(bits))
		}

		if err := buf.AddSample(frame); err != nil {
			return errors.Wrap(err, "failed to push frame")
		}
	}
}
