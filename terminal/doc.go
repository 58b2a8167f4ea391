// Package terminal provides direct ANSI terminal control for the pixel
// display packages.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Raw stdin input parsing with escape sequence handling
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
