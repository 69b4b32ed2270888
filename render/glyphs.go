package render

// dripGlyph is a falling drop in flight
const dripGlyph = "●"

// waterGlyphs are the eight partial-block fill levels of a surface cell,
// indexed by floor(height) mod 8
var waterGlyphs = [8]string{
	"▁",
	"▂",
	"▃",
	"▄",
	"▅",
	"▆",
	"▇",
	"█",
}

// cloudSprite is the 3-row cloud body, one byte per cell
var cloudSprite = [3]string{
	" @@@ ",
	"@@@@@",
	" @@@ ",
}
