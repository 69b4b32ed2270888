package render

// Classic SGR color codes, the palette of the scene
const (
	FgBlack       uint8 = 30
	FgBlue        uint8 = 34
	FgBrightWhite uint8 = 97

	BgBlack        uint8 = 40
	BgGreen        uint8 = 42
	BgYellow       uint8 = 43
	BgBlue         uint8 = 44
	BgBrightYellow uint8 = 103
)

// Style is a foreground/background SGR pair. The compositor coalesces
// consecutive cells sharing a Style into a single SetColor directive.
type Style struct {
	Fg, Bg uint8
}

var (
	styleCrown   = Style{Fg: FgBlue, Bg: BgGreen}        // palm fronds
	styleTrunk   = Style{Fg: FgBlue, Bg: BgYellow}       // palm trunk
	styleSand    = Style{Fg: FgBlue, Bg: BgBrightYellow} // island body
	styleCloud   = Style{Fg: FgBrightWhite, Bg: BgBlack} // cloud sprite
	styleWaterFG = Style{Fg: FgBlue, Bg: BgBlack}        // surface line, drips
	styleWaterBG = Style{Fg: FgBlack, Bg: BgBlue}        // submerged fill
	styleBlank   = Style{Fg: FgBlack, Bg: BgBlack}       // island trailing blank
)
