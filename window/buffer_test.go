package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, channels, rate, seconds int) *Buffer {
	t.Helper()

	buf, err := New(Config{
		ChannelCount:  channels,
		SampleRate:    rate,
		WindowSeconds: seconds,
	})
	require.NoError(t, err)

	return buf
}

func TestNewValidates(t *testing.T) {
	for _, cfg := range []Config{
		{ChannelCount: 0, SampleRate: 4, WindowSeconds: 1},
		{ChannelCount: 2, SampleRate: 0, WindowSeconds: 1},
		{ChannelCount: 2, SampleRate: 4, WindowSeconds: 0},
	} {
		_, err := New(cfg)
		require.Error(t, err)
	}
}

func TestSlidingWindowScenario(t *testing.T) {
	// channelCount=2, samplingRate=4, windowDurationSeconds=1
	buf := newTestBuffer(t, 2, 4, 1)
	require.Equal(t, 4, buf.Cap())

	frames := [][]float64{
		{1, 10}, {2, 20}, {3, 30}, {4, 40}, {5, 50},
	}

	for _, frame := range frames {
		require.NoError(t, buf.AddSample(frame))
	}

	snap := buf.Snapshot()
	require.Equal(t, []float64{2, 3, 4, 5}, snap[0])
	require.Equal(t, []float64{20, 30, 40, 50}, snap[1])
}

func TestChannelsStayInLockstep(t *testing.T) {
	buf := newTestBuffer(t, 3, 4, 2)

	for n := 0; n < 20; n++ {
		require.NoError(t, buf.AddSample([]float64{1, 2, 3}))

		snap := buf.Snapshot()
		require.Equal(t, len(snap[0]), len(snap[1]))
		require.Equal(t, len(snap[1]), len(snap[2]))
	}
}

func TestAddSampleRejectsBadFrame(t *testing.T) {
	buf := newTestBuffer(t, 2, 4, 1)

	require.NoError(t, buf.AddSample([]float64{1, 10}))
	before := buf.Snapshot()

	for _, frame := range [][]float64{nil, {1}, {1, 2, 3}} {
		err := buf.AddSample(frame)
		require.Equal(t, ErrFrameSize, err)
	}

	// every channel's length and contents are untouched
	require.Equal(t, before, buf.Snapshot())
}

func TestBadFrameSkipsNotification(t *testing.T) {
	buf := newTestBuffer(t, 2, 4, 1)

	fired := 0
	sub := buf.Notify(func() { fired++ })
	defer sub.Close()

	require.Error(t, buf.AddSample([]float64{1}))
	require.Equal(t, 0, fired)

	require.NoError(t, buf.AddSample([]float64{1, 2}))
	require.Equal(t, 1, fired)
}

func TestNotifyFansOut(t *testing.T) {
	buf := newTestBuffer(t, 1, 4, 1)

	var a, b int
	subA := buf.Notify(func() { a++ })
	subB := buf.Notify(func() { b++ })

	for n := 0; n < 3; n++ {
		require.NoError(t, buf.AddSample([]float64{0}))
	}

	require.Equal(t, 3, a)
	require.Equal(t, 3, b)

	subA.Close()
	require.NoError(t, buf.AddSample([]float64{0}))

	require.Equal(t, 3, a)
	require.Equal(t, 4, b)

	subB.Close()
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	buf := newTestBuffer(t, 1, 4, 1)

	fired := 0
	sub := buf.Notify(func() { fired++ })

	sub.Close()
	sub.Close()

	require.NoError(t, buf.AddSample([]float64{0}))
	require.Equal(t, 0, fired)
}

func TestDetachFromInsideCallback(t *testing.T) {
	buf := newTestBuffer(t, 1, 4, 1)

	fired := 0
	var sub *Subscription
	sub = buf.Notify(func() {
		fired++
		sub.Close()
	})

	require.NoError(t, buf.AddSample([]float64{0}))
	require.NoError(t, buf.AddSample([]float64{0}))

	require.Equal(t, 1, fired)
}

func TestAttachFromInsideCallback(t *testing.T) {
	buf := newTestBuffer(t, 1, 4, 1)

	late := 0
	sub := buf.Notify(func() {
		buf.Notify(func() { late++ }).Close()
	})
	defer sub.Close()

	require.NoError(t, buf.AddSample([]float64{0}))
	require.Equal(t, 0, late)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	buf := newTestBuffer(t, 1, 4, 1)
	require.NoError(t, buf.AddSample([]float64{7}))

	snap := buf.Snapshot()
	snap[0][0] = 99

	require.Equal(t, []float64{7}, buf.Snapshot()[0])
}

func TestNonFiniteSamplesAreAccepted(t *testing.T) {
	// the buffer does not sanitize values; pre-validation is on the
	// producer
	buf := newTestBuffer(t, 1, 4, 1)

	require.NoError(t, buf.AddSample([]float64{math.Inf(1)}))
	require.NoError(t, buf.AddSample([]float64{math.NaN()}))

	snap := buf.Snapshot()
	require.True(t, math.IsInf(snap[0][0], 1))
	require.True(t, math.IsNaN(snap[0][1]))
}
