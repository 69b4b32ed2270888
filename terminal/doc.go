// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the scene
// renderer.
//
// Features:
//   - Directive-level output (cursor position, SGR color pairs, glyphs)
//     through a single buffered writer
//   - Terminal size query via TIOCGWINSZ with change detection
//   - Alternate screen and cursor-hide lifecycle with clean restoration
//   - Emergency reset path for panic recovery
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Auto-wrap is left enabled on purpose: the renderer relies on
// the cursor wrapping at the last column to keep full rows contiguous.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
