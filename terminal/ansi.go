package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	CSIReset = []byte("\x1b[0m")
	CSIClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	CSICursorHide = []byte("\x1b[?25l")
	CSICursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Screen modes
	CSIAltScreenEnter = []byte("\x1b[?1049h")
	CSIAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll
	// when writing to the bottom-right corner
	CSIAutoWrapOn  = []byte("\x1b[?7h")
	CSIAutoWrapOff = []byte("\x1b[?7l")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// WriteInt writes an integer without allocation.
// Optimized for terminal values (0-255 common, 0-999 typical max).
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a cursor positioning sequence (0-indexed input).
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}

// WriteFg writes a complete foreground color sequence for the given mode.
func WriteFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		WriteInt(w, int(c.R))
		w.WriteByte(';')
		WriteInt(w, int(c.G))
		w.WriteByte(';')
		WriteInt(w, int(c.B))
		w.WriteByte('m')
		return
	}
	w.Write(csiFg256)
	WriteInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}

// WriteBg writes a complete background color sequence for the given mode.
func WriteBg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		WriteInt(w, int(c.R))
		w.WriteByte(';')
		WriteInt(w, int(c.G))
		w.WriteByte(';')
		WriteInt(w, int(c.B))
		w.WriteByte('m')
		return
	}
	w.Write(csiBg256)
	WriteInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}
