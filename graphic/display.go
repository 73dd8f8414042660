package graphic

import (
	"context"
	"sync"

	"github.com/nsf/termbox-go"

	"github.com/noriah/wavescope/render"
	"github.com/noriah/wavescope/window"
)

// Display draws waveform polylines on the termbox screen. It is one
// view: binding it to a buffer subscribes it to change notifications,
// and every notification triggers a full redraw of all channels.
type Display struct {
	rend *render.Renderer

	drawMu sync.Mutex

	buf *window.Buffer
	sub *window.Subscription
}

// NewDisplay returns a display that renders with rend.
func NewDisplay(rend *render.Renderer) *Display {
	return &Display{rend: rend}
}

// Init sets up the termbox screen.
func (d *Display) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}

	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()

	return nil
}

// Close stops the display and cleans up the terminal.
func (d *Display) Close() error {
	termbox.Close()
	return nil
}

// Start polls terminal events until the context ends or the user quits.
// The returned context ends when either happens.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go eventPoller(dispCtx, dispCancel, d)
	return dispCtx
}

// Stop is a no-op; closing the screen is what unblocks the poller.
func (d *Display) Stop() error {
	return nil
}

func eventPoller(ctx context.Context, fn context.CancelFunc, d *Display) {
	defer fn()

	for {
		// first check if we need to exit
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventKey:
			switch {
			case ev.Key == termbox.KeyCtrlC,
				ev.Ch == 'q', ev.Ch == 'Q':
				return
			}

		case termbox.EventResize:
			// next notification redraws at the new size, but a redraw
			// now keeps a quiet producer from leaving garbage behind
			d.Draw()

		case termbox.EventInterrupt:
			return
		}
	}
}

// Bind subscribes the display to the buffer's change notifications.
func (d *Display) Bind(buf *window.Buffer) {
	d.buf = buf
	d.sub = buf.Notify(func() {
		d.Draw()
	})
}

// Unbind detaches the display from its buffer. Safe to call twice.
func (d *Display) Unbind() {
	if d.sub != nil {
		d.sub.Close()
		d.sub = nil
	}
}

// Draw renders one full frame from a fresh snapshot.
func (d *Display) Draw() error {
	if d.buf == nil {
		return nil
	}

	d.drawMu.Lock()
	defer d.drawMu.Unlock()

	snap := d.buf.Snapshot()
	rng := render.ComputeRange(snap)

	cWidth, cHeight := termbox.Size()

	lines := d.rend.Polylines(snap, rng, float64(cWidth), float64(cHeight))

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	for _, pl := range lines {
		drawPolyline(pl, cHeight)
	}

	return termbox.Flush()
}
