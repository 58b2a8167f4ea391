package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/termpixel/terminal"
)

// Writer turns instruction streams into ANSI output. All writes go
// through one buffered writer and reach the terminal on Flush.
type Writer struct {
	bw   *bufio.Writer
	mode terminal.ColorMode
}

func NewWriter(w io.Writer, mode terminal.ColorMode) *Writer {
	return &Writer{
		bw:   bufio.NewWriterSize(w, 32*1024),
		mode: mode,
	}
}

// Write emits the instruction stream followed by an attribute reset,
// then flushes.
func (w *Writer) Write(ins []Instruction) error {
	if len(ins) == 0 {
		return nil
	}
	for _, in := range ins {
		if in.MoveCursor {
			terminal.WriteCursorPos(w.bw, in.X, in.Y)
		}
		if in.SetColor {
			terminal.WriteFg(w.bw, in.Fg, w.mode)
			terminal.WriteBg(w.bw, in.Bg, w.mode)
		}
		w.bw.WriteRune(in.Glyph)
	}
	w.bw.Write(terminal.CSIReset)
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// Clear paints the whole screen with the given background and homes
// the cursor.
func (w *Writer) Clear(bg terminal.RGB) error {
	terminal.WriteBg(w.bw, bg, w.mode)
	w.bw.Write(terminal.CSIClear)
	w.bw.Write(terminal.CSIReset)
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	return nil
}
