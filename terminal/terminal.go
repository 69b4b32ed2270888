package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Extent is the terminal geometry as of the last poll. Updated reports a
// change since the previous poll; the first poll always reports updated.
type Extent struct {
	Width   int
	Height  int
	Updated bool
}

// Terminal owns the controlling terminal for the lifetime of the program:
// alternate screen, hidden cursor, geometry polling and the frame output
// stage. Single-threaded; the frame loop is its only caller.
type Terminal struct {
	out   *os.File
	outFd int

	output *Output

	width  int
	height int

	initialized bool
	finalized   bool
}

// New creates a Terminal on stdout. Call Init before use.
func New() *Terminal {
	return &Terminal{
		out:   os.Stdout,
		outFd: int(os.Stdout.Fd()),
	}
}

// Init verifies stdout is a terminal and enters the alternate screen with a
// hidden cursor. The scene cannot exist without geometry, so a non-terminal
// stdout is a hard error.
func (t *Terminal) Init() error {
	if t.initialized {
		return nil
	}

	if !term.IsTerminal(t.outFd) {
		return fmt.Errorf("terminal: stdout is not a terminal")
	}

	t.output = NewOutput(t.out)

	t.out.Write(csiAltScreenEnter)
	t.out.Write(csiCursorHide)
	// Wrap must stay on, the renderer's row contiguity depends on it
	t.out.Write(csiAutoWrapOn)

	t.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times.
func (t *Terminal) Fini() {
	if !t.initialized || t.finalized {
		return
	}

	t.out.Write(csiSGR0)
	t.out.Write(csiCursorShow)
	t.out.Write(csiAltScreenExit)

	t.finalized = true
}

// PollExtent queries the current geometry. A failed query is fatal for the
// caller and is distinct from an unchanged extent.
func (t *Terminal) PollExtent() (Extent, error) {
	w, h, err := getTerminalSize(t.outFd)
	if err != nil {
		return Extent{}, fmt.Errorf("terminal: size query failed: %w", err)
	}

	ext := Extent{
		Width:   w,
		Height:  h,
		Updated: w != t.width || h != t.height,
	}
	t.width = w
	t.height = h
	return ext, nil
}

// Output returns the frame output stage. Valid after Init.
func (t *Terminal) Output() *Output {
	return t.output
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini() cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
