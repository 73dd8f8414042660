// Package producer supplies the periodic sample clocks that feed a
// sliding-window buffer. A backend knows how to enumerate devices and
// open sessions; a session pushes exactly one value per channel into
// the buffer on every tick, at the buffer's sample rate.
package producer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"

	"github.com/noriah/wavescope/window"
)

// SessionConfig describes one producer session.
type SessionConfig struct {
	Device Device

	// ChannelCount is the number of values supplied per tick. Must
	// match the buffer's channel count.
	ChannelCount int

	// SampleRate is the number of ticks per second.
	SampleRate int
}

type Backend interface {
	// Init should do nothing if called more than once.
	Init() error
	Close() error

	Devices() ([]Device, error)
	DefaultDevice() (Device, error)
	Start(SessionConfig) (Session, error)
}

type Device interface {
	fmt.Stringer
}

// Session is a running producer. Start blocks, feeding the buffer one
// frame per tick until the context ends or the source fails. Values
// are handed to the buffer as-is; a source that can emit non-finite
// samples must clean them up itself.
type Session interface {
	Start(ctx context.Context, buf *window.Buffer) error
}

type NamedBackend struct {
	Name string
	Backend
}

var Backends []NamedBackend

// RegisterBackend registers a backend globally. This function is not
// thread-safe, and most packages should call it on init().
func RegisterBackend(name string, b Backend) {
	Backends = append(Backends, NamedBackend{
		Name:    name,
		Backend: b,
	})
}

// DefaultBackend picks a backend for the current platform. The
// synthetic generator is always available and is the fallback.
func DefaultBackend() string {
	if runtime.GOOS == "linux" {
		if path, _ := exec.LookPath("parec"); path != "" {
			if HasBackend("parec") {
				return "parec"
			}
		}
	}

	return "sine"
}

// FindBackend is a helper function that finds a backend. It returns nil
// if the backend is not found.
func FindBackend(name string) Backend {
	for _, backend := range Backends {
		if backend.Name == name {
			return backend
		}
	}
	return nil
}

func HasBackend(name string) bool {
	return FindBackend(name) != nil
}

func InitBackend(bknd string) (Backend, error) {
	backend := FindBackend(bknd)
	if backend == nil {
		return nil, fmt.Errorf("backend not found: %q; check list-backends", bknd)
	}

	if err := backend.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize producer backend")
	}

	return backend, nil
}

func GetDevice(backend Backend, device string) (Device, error) {
	if device == "" {
		def, err := backend.DefaultDevice()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get default device")
		}
		return def, nil
	}

	devices, err := backend.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get devices")
	}

	for idx := range devices {
		if devices[idx].String() == device {
			return devices[idx], nil
		}
	}

	return nil, errors.Errorf("device %q not found; check list-devices", device)
}
