package window

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrFrameSize is returned by AddSample when the frame does not hold
// exactly one value per channel. The buffer is left untouched.
var ErrFrameSize = errors.New("frame length does not match channel count")

// Config describes a sliding-window buffer.
type Config struct {
	// ChannelCount is the number of sample streams. Fixed at creation.
	ChannelCount int
	// SampleRate is the number of ticks per second the producer runs at.
	SampleRate int
	// WindowSeconds is how much history each channel retains.
	WindowSeconds int
}

// Validate cleans things up
func (cfg Config) Validate() error {
	switch {
	case cfg.ChannelCount < 1:
		return errors.New("too few channels (1 min)")

	case cfg.SampleRate < 1:
		return errors.New("sample rate too low (1 min)")

	case cfg.WindowSeconds < 1:
		return errors.New("window too short (1 second min)")
	}

	return nil
}

// Snapshot is an immutable point-in-time read of all channel contents,
// one slice per channel, oldest sample first.
type Snapshot [][]float64

// Empty reports whether the snapshot holds no samples at all.
func (s Snapshot) Empty() bool {
	for _, ch := range s {
		if len(ch) > 0 {
			return false
		}
	}

	return true
}

// Buffer owns a fixed set of equally sized sample channels and keeps
// them in lockstep: every tick appends one value to all channels, or to
// none. Views observe the buffer through Notify subscriptions and read
// it through Snapshot; they never write.
//
// All methods are safe for concurrent use. The producer and any number
// of views may run on different goroutines; Snapshot copies under the
// lock so a view never observes a channel mid-append.
type Buffer struct {
	mu       sync.Mutex
	channels []*Channel
	capacity int

	subs   map[int]func()
	nextID int
}

// New returns an empty buffer with cfg.ChannelCount channels of
// capacity cfg.SampleRate * cfg.WindowSeconds each.
func New(cfg Config) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	capacity := cfg.SampleRate * cfg.WindowSeconds

	buf := &Buffer{
		channels: make([]*Channel, cfg.ChannelCount),
		capacity: capacity,
		subs:     make(map[int]func()),
	}

	for idx := range buf.channels {
		buf.channels[idx] = NewChannel(capacity)
	}

	return buf, nil
}

// ChannelCount returns the fixed number of channels.
func (b *Buffer) ChannelCount() int {
	return len(b.channels)
}

// Cap returns the per-channel window capacity.
func (b *Buffer) Cap() int {
	return b.capacity
}

// AddSample appends frame[i] to channel i for every i, evicting each
// channel's oldest sample in the same step once the window is full.
//
// If the frame does not hold exactly one value per channel it returns
// ErrFrameSize and no channel is modified. After a successful append
// every subscriber is invoked once, synchronously, on the caller's
// goroutine.
func (b *Buffer) AddSample(frame []float64) error {
	b.mu.Lock()

	if len(frame) != len(b.channels) {
		b.mu.Unlock()
		return ErrFrameSize
	}

	for idx, ch := range b.channels {
		ch.Push(frame[idx])
	}

	fns := b.subscribers()
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}

	return nil
}

// Snapshot returns a deep copy of all channel contents. The copy is
// taken under the buffer lock, so it is always a whole number of ticks.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := make(Snapshot, len(b.channels))

	for idx, ch := range b.channels {
		snap[idx] = make([]float64, ch.Len())
		ch.copyInto(snap[idx])
	}

	return snap
}

// subscribers returns a copy of the callback list so notification runs
// without the lock and a callback may attach or detach at any time,
// including from inside itself. A subscription closed between the copy
// and its own invocation may still observe one final notification.
func (b *Buffer) subscribers() []func() {
	fns := make([]func(), 0, len(b.subs))

	for _, fn := range b.subs {
		fns = append(fns, fn)
	}

	return fns
}

// Notify registers fn to run after every successful AddSample. Close
// the returned subscription to detach.
func (b *Buffer) Notify(fn func()) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return &Subscription{buf: b, id: id}
}

// Subscription is a handle to one registered change callback.
type Subscription struct {
	buf *Buffer
	id  int
}

// Close detaches the subscription. Closing more than once is a no-op.
func (s *Subscription) Close() {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()

	delete(s.buf.subs, s.id)
}
