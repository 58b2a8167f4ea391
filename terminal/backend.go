package terminal

// Backend abstracts platform-specific terminal operations so the display
// driver can run against a real tty or a test double.
type Backend interface {
	// Lifecycle
	// Init verifies the terminal is interactive and enters raw mode.
	// No terminal state is mutated when an error is returned.
	Init() error
	// Fini restores the terminal input mode. Safe to call multiple times.
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error signals a poll
	// timeout or EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// Callbacks
	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(width, height int))
}

// WriteAdapter wraps a Backend as an io.Writer for buffered output.
type WriteAdapter struct {
	B Backend
}

func (a WriteAdapter) Write(p []byte) (int, error) {
	if err := a.B.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
