//go:build unix

package terminal

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if the normal teardown path cannot run.
func EmergencyReset(w io.Writer) {
	w.Write(CSICursorShow)
	w.Write(CSIAltScreenExit)
	w.Write(CSIReset)
	w.Write(CSIAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via termios - escape sequences alone don't
	// restore line discipline. Best-effort; errors ignored in crash context.
	resetTerminalMode()
}

// resetTerminalMode attempts to restore the terminal to cooked mode.
func resetTerminalMode() {
	// Restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(fd, unix.TCSETS, termios)
	}
}
