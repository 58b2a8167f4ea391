// Package display owns the terminal session: raw mode, the alternate
// screen, input batching, resize handling, and the render loop. Exactly
// one Driver should touch a terminal at a time.
package display

import (
	"fmt"
	"time"

	"github.com/lixenwraith/termpixel/grid"
	"github.com/lixenwraith/termpixel/pixel"
	"github.com/lixenwraith/termpixel/render"
	"github.com/lixenwraith/termpixel/terminal"
)

// Status is the callback's verdict for the update loop.
type Status uint8

const (
	// Continue renders the grid and runs another tick.
	Continue Status = iota
	// Break exits the loop. Teardown still runs.
	Break
)

// State tracks the driver lifecycle. Terminated is final; a driver is
// not reusable.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateTerminated
)

var stateNames = [...]string{
	StateUninitialized: "uninitialized",
	StateInitialized:   "initialized",
	StateRunning:       "running",
	StateTerminated:    "terminated",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// UpdateFunc is invoked once per tick with the input events that
// arrived since the previous invocation, in arrival order. The driver
// pointer is valid only for the duration of the call.
type UpdateFunc func(d *Driver, events []terminal.Event) Status

// Driver runs a pixel grid on a terminal.
type Driver struct {
	res        pixel.Resolution
	tick       time.Duration
	mode       terminal.ColorMode
	modeSet    bool
	background terminal.RGB

	backend  terminal.Backend
	reader   *terminal.Reader
	grid     *grid.Dynamic
	renderer *render.Renderer
	writer   *render.Writer

	// resizeCh holds at most the latest pending terminal size in cells.
	resizeCh chan [2]int

	state    State
	tornDown bool
}

// New creates an uninitialized driver for the given resolution.
func New(res pixel.Resolution, opts ...Option) *Driver {
	d := &Driver{
		res:      res,
		tick:     16 * time.Millisecond,
		resizeCh: make(chan [2]int, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.backend == nil {
		d.backend = terminal.NewBackend()
	}
	if !d.modeSet {
		d.mode = terminal.DetectColorMode()
	}
	return d
}

// Initialize claims the terminal: raw mode, alternate screen, hidden
// cursor, auto-wrap off, and a grid sized to the terminal. On failure
// every step already applied is reversed and an *InitError is
// returned; a failure before the first mutation leaves the terminal
// untouched.
func (d *Driver) Initialize() error {
	if d.state != StateUninitialized {
		return &StateError{Op: "initialize", State: d.state}
	}

	if err := d.backend.Init(); err != nil {
		return &InitError{Step: "raw mode", Err: err}
	}

	wCells, hCells := d.backend.Size()
	g, err := grid.NewDynamic(d.res, wCells*d.res.Width(), hCells*d.res.Height())
	if err != nil {
		d.backend.Fini()
		return &InitError{Step: "grid", Err: err}
	}
	g.SetBackground(d.background)

	if err := d.backend.Write(terminal.CSIAltScreenEnter); err != nil {
		d.backend.Fini()
		return &InitError{Step: "alt screen", Err: err}
	}
	if err := d.backend.Write(terminal.CSICursorHide); err != nil {
		d.backend.Write(terminal.CSIAltScreenExit)
		d.backend.Fini()
		return &InitError{Step: "cursor hide", Err: err}
	}
	if err := d.backend.Write(terminal.CSIAutoWrapOff); err != nil {
		d.backend.Write(terminal.CSICursorShow)
		d.backend.Write(terminal.CSIAltScreenExit)
		d.backend.Fini()
		return &InitError{Step: "auto-wrap", Err: err}
	}

	d.grid = g
	d.renderer = render.NewRenderer()
	d.writer = render.NewWriter(terminal.WriteAdapter{B: d.backend}, d.mode)

	d.backend.SetResizeHandler(func(w, h int) {
		// Keep only the latest size; the loop applies it before the
		// next callback.
		select {
		case <-d.resizeCh:
		default:
		}
		d.resizeCh <- [2]int{w, h}
	})

	d.reader = terminal.NewReader(d.backend)
	d.reader.Start()

	if err := d.writer.Clear(d.background); err != nil {
		// Reverse like the earlier branches so a failed Initialize
		// always leaves the driver uninitialized, never terminated.
		d.reader.Stop()
		d.reader = nil
		select {
		case <-d.resizeCh:
		default:
		}
		d.backend.Write(terminal.CSIAutoWrapOn)
		d.backend.Write(terminal.CSICursorShow)
		d.backend.Write(terminal.CSIAltScreenExit)
		d.backend.Fini()
		return &InitError{Step: "clear", Err: err}
	}

	d.state = StateInitialized
	return nil
}

// Grid returns the driver's grid. The callback may mutate it freely;
// accessing it concurrently with Update from another goroutine is not
// supported.
func (d *Driver) Grid() *grid.Dynamic { return d.grid }

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Resolution returns the pixel packing scheme the driver renders with.
func (d *Driver) Resolution() pixel.Resolution { return d.res }

// Update runs the tick loop until the callback returns Break or an IO
// error occurs. Each tick: input events collected since the last tick
// are batched, a pending terminal resize is applied to the grid before
// the callback sees the batch, the callback runs, and on Continue the
// grid is diffed and written out.
//
// Teardown runs on every exit path, including panics in the callback.
// IO errors are returned after teardown completes.
func (d *Driver) Update(fn UpdateFunc) error {
	if d.state != StateInitialized {
		return &StateError{Op: "update", State: d.state}
	}
	d.state = StateRunning
	defer d.teardown()

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	events := make([]terminal.Event, 0, 64)

	for {
		events = events[:0]

	collect:
		for {
			select {
			case ev := <-d.reader.Events():
				switch ev.Type {
				case terminal.EventError:
					return fmt.Errorf("display: input: %w", ev.Err)
				case terminal.EventClosed:
					return nil
				default:
					events = append(events, ev)
				}
			case <-ticker.C:
				break collect
			}
		}

		select {
		case size := <-d.resizeCh:
			if err := d.applyResize(size[0], size[1]); err != nil {
				return err
			}
			events = append(events, terminal.Event{
				Type:   terminal.EventResize,
				Width:  d.grid.WidthPx(),
				Height: d.grid.HeightPx(),
			})
		default:
		}

		if fn(d, events) == Break {
			return nil
		}

		if err := d.writer.Write(d.renderer.Render(&d.grid.Static)); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}
}

func (d *Driver) applyResize(wCells, hCells int) error {
	if err := d.grid.Resize(wCells*d.res.Width(), hCells*d.res.Height()); err != nil {
		return fmt.Errorf("display: resize: %w", err)
	}
	d.renderer.Invalidate()
	if err := d.writer.Clear(d.background); err != nil {
		return fmt.Errorf("display: resize: %w", err)
	}
	return nil
}

// Close tears the terminal down if Update has not already done so.
// Needed when Initialize succeeded but Update is never entered.
func (d *Driver) Close() error {
	if d.state == StateUninitialized {
		d.state = StateTerminated
		return nil
	}
	d.teardown()
	return nil
}

// teardown restores the terminal. Idempotent; runs on every exit path.
// Restoration order mirrors initialization in reverse, with an
// attribute reset first so no mode bleeds into the primary screen.
func (d *Driver) teardown() {
	if d.tornDown {
		return
	}
	d.tornDown = true

	if d.reader != nil {
		d.reader.Stop()
	}

	// Write errors are ignored: restoring as much as possible beats
	// aborting the restore sequence.
	d.backend.Write(terminal.CSIReset)
	d.backend.Write(terminal.CSIAutoWrapOn)
	d.backend.Write(terminal.CSICursorShow)
	d.backend.Write(terminal.CSIAltScreenExit)
	d.backend.Fini()

	d.state = StateTerminated
}
