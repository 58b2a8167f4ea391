package display

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/termpixel/pixel"
	"github.com/lixenwraith/termpixel/terminal"
)

// fakeBackend records terminal mutations without touching a tty.
type fakeBackend struct {
	mu sync.Mutex

	initErr error
	inits   int
	finis   int

	width, height int

	out bytes.Buffer

	// failWriteAt makes the Nth write fail (1-based); later writes succeed.
	failWriteAt int
	writes      int

	// input is handed out once, then reads behave like poll timeouts.
	input   []byte
	resizeH func(w, h int)
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h}
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initErr != nil {
		return b.initErr
	}
	b.inits++
	return nil
}

func (b *fakeBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finis++
}

func (b *fakeBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *fakeBackend) Write(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	if b.failWriteAt > 0 && b.writes == b.failWriteAt {
		return errors.New("write failed")
	}
	b.out.Write(p)
	return nil
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	b.mu.Lock()
	if len(b.input) > 0 {
		data := b.input
		b.input = nil
		b.mu.Unlock()
		return data, nil
	}
	b.mu.Unlock()

	select {
	case <-stopCh:
		return nil, nil
	case <-time.After(time.Millisecond):
		return nil, nil // poll timeout
	}
}

func (b *fakeBackend) SetResizeHandler(handler func(width, height int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resizeH = handler
}

func (b *fakeBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func (b *fakeBackend) finiCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finis
}

func newTestDriver(b terminal.Backend) *Driver {
	return New(pixel.Braille,
		WithBackend(b),
		WithColorMode(terminal.ColorModeTrueColor),
		WithTickInterval(time.Millisecond),
	)
}

func TestInitializeFailureLeavesNoTrace(t *testing.T) {
	fb := newFakeBackend(8, 4)
	fb.initErr = errors.New("stdin is not a terminal")

	d := newTestDriver(fb)
	err := d.Initialize()

	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("Initialize error = %v, want *InitError", err)
	}
	if d.State() != StateUninitialized {
		t.Errorf("State = %s, want uninitialized", d.State())
	}
	if fb.output() != "" {
		t.Errorf("Failed initialize wrote %q", fb.output())
	}
	if fb.finiCount() != 0 {
		t.Error("Fini called without successful Init")
	}
}

func TestInitializeLateFailureStaysUninitialized(t *testing.T) {
	fb := newFakeBackend(8, 4)
	// Alt screen, cursor hide and auto-wrap succeed; the initial clear
	// fails. Every failure branch must leave the same state.
	fb.failWriteAt = 4

	d := newTestDriver(fb)
	err := d.Initialize()

	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("Initialize error = %v, want *InitError", err)
	}
	if d.State() != StateUninitialized {
		t.Errorf("State = %s, want uninitialized", d.State())
	}
	if fb.finiCount() != 1 {
		t.Errorf("Fini called %d times, want 1", fb.finiCount())
	}

	// Applied modes were reversed.
	out := fb.output()
	for _, seq := range []string{"\x1b[?7h", "\x1b[?25h", "\x1b[?1049l"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Unwind output missing %q: %q", seq, out)
		}
	}
}

func TestInitializeAppliesModes(t *testing.T) {
	fb := newFakeBackend(8, 4)
	d := newTestDriver(fb)

	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if d.State() != StateInitialized {
		t.Errorf("State = %s, want initialized", d.State())
	}

	out := fb.output()
	enter := strings.Index(out, "\x1b[?1049h")
	hide := strings.Index(out, "\x1b[?25l")
	wrap := strings.Index(out, "\x1b[?7l")
	if enter < 0 || hide < 0 || wrap < 0 {
		t.Fatalf("Missing mode sequences in %q", out)
	}
	if !(enter < hide && hide < wrap) {
		t.Error("Mode sequences out of order")
	}

	// Grid sized to the terminal: 8x4 cells at 2x4 px per braille cell.
	g := d.Grid()
	if g.WidthPx() != 16 || g.HeightPx() != 16 {
		t.Errorf("Grid = %dx%d px, want 16x16", g.WidthPx(), g.HeightPx())
	}
}

func TestUpdateBreakTearsDownOnce(t *testing.T) {
	fb := newFakeBackend(8, 4)
	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	calls := 0
	err := d.Update(func(d *Driver, events []terminal.Event) Status {
		calls++
		return Break
	})
	if err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("Callback ran %d times, want 1", calls)
	}
	if d.State() != StateTerminated {
		t.Errorf("State = %s, want terminated", d.State())
	}
	if fb.finiCount() != 1 {
		t.Errorf("Fini called %d times, want 1", fb.finiCount())
	}

	out := fb.output()
	if !strings.Contains(out, "\x1b[?1049l") || !strings.Contains(out, "\x1b[?25h") {
		t.Errorf("Teardown sequences missing from %q", out)
	}

	// Second teardown is a no-op.
	d.Close()
	if fb.finiCount() != 1 {
		t.Error("Teardown ran twice")
	}
}

func TestUpdateRequiresInitialized(t *testing.T) {
	d := newTestDriver(newFakeBackend(8, 4))

	err := d.Update(func(*Driver, []terminal.Event) Status { return Break })
	var se *StateError
	if !errors.As(err, &se) {
		t.Errorf("Update error = %v, want *StateError", err)
	}
}

func TestInitializeTwiceFails(t *testing.T) {
	fb := newFakeBackend(8, 4)
	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	var se *StateError
	if err := d.Initialize(); !errors.As(err, &se) {
		t.Errorf("Second Initialize error = %v, want *StateError", err)
	}
}

func TestUpdateRendersOnContinue(t *testing.T) {
	fb := newFakeBackend(4, 2)
	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	calls := 0
	err := d.Update(func(d *Driver, events []terminal.Event) Status {
		calls++
		if calls == 1 {
			d.Grid().Fill(terminal.RGB{R: 255})
			return Continue
		}
		return Break
	})
	if err != nil {
		t.Fatal(err)
	}

	out := fb.output()
	if !strings.Contains(out, "⣿") {
		t.Errorf("Rendered output missing filled braille glyph: %q", out)
	}
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("Rendered output missing red foreground: %q", out)
	}
}

func TestInputBatchReachesCallback(t *testing.T) {
	fb := newFakeBackend(8, 4)
	fb.input = []byte("q")

	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	var got []terminal.Event
	deadline := time.Now().Add(2 * time.Second)
	err := d.Update(func(d *Driver, events []terminal.Event) Status {
		got = append(got, events...)
		for _, ev := range events {
			if ev.Type == terminal.EventKey && ev.Rune == 'q' {
				return Break
			}
		}
		if time.Now().After(deadline) {
			t.Error("Timed out waiting for input event")
			return Break
		}
		return Continue
	})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, ev := range got {
		if ev.Type == terminal.EventKey && ev.Key == terminal.KeyRune && ev.Rune == 'q' {
			found = true
		}
	}
	if !found {
		t.Errorf("Events = %+v, want KeyRune 'q'", got)
	}
}

func TestResizeAppliedBeforeCallback(t *testing.T) {
	fb := newFakeBackend(8, 4)
	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	// Simulate SIGWINCH before the loop starts.
	fb.resizeH(10, 5)

	deadline := time.Now().Add(2 * time.Second)
	err := d.Update(func(d *Driver, events []terminal.Event) Status {
		for _, ev := range events {
			if ev.Type == terminal.EventResize {
				// Grid already resized when the callback sees the event.
				if d.Grid().WidthPx() != 20 || d.Grid().HeightPx() != 20 {
					t.Errorf("Grid = %dx%d px at resize event, want 20x20",
						d.Grid().WidthPx(), d.Grid().HeightPx())
				}
				if ev.Width != 20 || ev.Height != 20 {
					t.Errorf("Resize event = %dx%d, want 20x20", ev.Width, ev.Height)
				}
				return Break
			}
		}
		if time.Now().After(deadline) {
			t.Error("Timed out waiting for resize event")
			return Break
		}
		return Continue
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCloseWithoutUpdate(t *testing.T) {
	fb := newFakeBackend(8, 4)
	d := newTestDriver(fb)
	if err := d.Initialize(); err != nil {
		t.Fatal(err)
	}

	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if d.State() != StateTerminated {
		t.Errorf("State = %s, want terminated", d.State())
	}
	if fb.finiCount() != 1 {
		t.Errorf("Fini called %d times, want 1", fb.finiCount())
	}
}
