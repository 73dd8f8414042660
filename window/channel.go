package window

// Channel is one independent stream of scalar samples inside a Buffer.
//
// It keeps at most Cap() samples in arrival order. Once full, pushing a
// new sample evicts the oldest one in the same step, so the window
// slides forward one sample at a time.
type Channel struct {
	data  []float64
	head  int // next write position
	count int // number of valid samples
}

// NewChannel returns an empty channel holding at most capacity samples.
func NewChannel(capacity int) *Channel {
	return &Channel{
		data: make([]float64, capacity),
	}
}

// Push appends a sample, evicting the oldest one if the window is full.
func (c *Channel) Push(v float64) {
	c.data[c.head] = v
	c.head = (c.head + 1) % len(c.data)

	if c.count < len(c.data) {
		c.count++
	}
}

// Len returns how many samples the channel currently holds.
func (c *Channel) Len() int {
	return c.count
}

// Cap returns the window capacity.
func (c *Channel) Cap() int {
	return len(c.data)
}

// Samples returns the retained window, oldest first. The returned slice
// is a copy and stays valid across later pushes.
func (c *Channel) Samples() []float64 {
	out := make([]float64, c.count)
	c.copyInto(out)
	return out
}

func (c *Channel) copyInto(dst []float64) {
	start := (c.head - c.count + len(c.data)) % len(c.data)

	for i := 0; i < c.count; i++ {
		dst[i] = c.data[(start+i)%len(c.data)]
	}
}
