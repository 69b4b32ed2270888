package render

// Sink receives the control directives and glyphs that make up one rendered
// frame. The compositor guarantees minimal traffic: one SetColor per color
// transition, one MoveTo per cursor discontinuity, one Print per visible
// cell. terminal.Output implements Sink for a real terminal.
type Sink interface {
	// Clear erases the screen and homes the cursor. Issued once per frame,
	// before any cell output.
	Clear()

	// MoveTo positions the cursor at a cell (0-indexed column, row).
	MoveTo(x, y int)

	// SetColor selects the foreground/background pair as raw SGR codes.
	SetColor(fg, bg uint8)

	// Print writes one cell's glyph at the cursor, advancing it.
	Print(glyph string)

	// Reset restores default attributes and completes the frame.
	Reset()
}
