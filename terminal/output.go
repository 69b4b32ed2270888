// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"
)

// Output streams one frame's directives to the terminal through a buffered
// writer. It satisfies the renderer's Sink contract: Clear brackets the
// frame at the front, Reset restores attributes and flushes at the end.
// Output performs no coalescing of its own; the renderer owns that.
type Output struct {
	writer *bufio.Writer
}

// NewOutput creates an output stage writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{
		writer: bufio.NewWriterSize(w, 32768), // 32KB, a few full frames
	}
}

// Clear erases the screen and homes the cursor.
func (o *Output) Clear() {
	o.writer.Write(csiClear)
}

// MoveTo positions the cursor (0-indexed cell coordinates).
func (o *Output) MoveTo(x, y int) {
	writeCursorPos(o.writer, x, y)
}

// SetColor emits one combined SGR sequence for a foreground/background pair.
func (o *Output) SetColor(fg, bg uint8) {
	o.writer.Write(csi)
	writeInt(o.writer, int(fg))
	o.writer.WriteByte(';')
	writeInt(o.writer, int(bg))
	o.writer.WriteByte('m')
}

// Print writes a cell glyph at the cursor.
func (o *Output) Print(glyph string) {
	o.writer.WriteString(glyph)
}

// Reset restores default attributes and flushes the frame to the terminal.
func (o *Output) Reset() {
	o.writer.Write(csiSGR0)
	o.writer.Flush()
}
