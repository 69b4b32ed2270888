package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/sim"
)

// WaterField is the read access the compositor borrows from the water
// simulation for one frame.
type WaterField interface {
	HeightAt(col int) float64
	IslandRow() int
}

// Compositor resolves the scene into terminal cells and streams minimal
// directives to its sink: it carries the current color pair and cursor
// contiguity across the whole scan, so a run of identical adjacent cells
// costs one SetColor and one MoveTo regardless of its length. Contiguity
// survives a row boundary when the previous row was emitted through its
// last column (terminal auto-wrap).
type Compositor struct {
	sink Sink

	style      Style
	styleValid bool

	contiguous   bool
	nextX, nextY int

	dripCells map[int]struct{} // y*width+x of drips in flight, rebuilt per frame
}

// NewCompositor creates a compositor writing to sink.
func NewCompositor(sink Sink) (*Compositor, error) {
	if sink == nil {
		return nil, fmt.Errorf("render: nil sink")
	}
	return &Compositor{
		sink:      sink,
		dripCells: make(map[int]struct{}),
	}, nil
}

// Render composites one frame: island silhouette over drips over cloud over
// water, row by row. The frame is bracketed by a Clear and a Reset.
func (c *Compositor) Render(field WaterField, drips []sim.Drip, cloudCol, width, height int) {
	c.sink.Clear()
	c.styleValid = false
	c.contiguous = false

	clear(c.dripCells)
	for _, d := range drips {
		if !d.Active {
			continue
		}
		row := (height*constants.SubRows - int(d.Y)) / constants.SubRows
		if d.X >= 0 && d.X < width && row >= 0 && row < height {
			c.dripCells[row*width+d.X] = struct{}{}
		}
	}

	mid := width / 2
	baseRow := field.IslandRow()

	for y := 0; y < height; y++ {
		rowHeight := float64((height - y) * constants.SubRows)
		prevIsland := false

		for x := 0; x < width; x++ {
			if st, ok := islandStyleAt(x, y, mid, baseRow); ok {
				c.emit(x, y, width, st, " ")
				prevIsland = true
				continue
			}

			if _, ok := c.dripCells[y*width+x]; ok {
				c.emit(x, y, width, styleWaterFG, dripGlyph)
				prevIsland = false
				continue
			}

			if y < len(cloudSprite) && x >= cloudCol && x < cloudCol+constants.CloudWidth {
				c.emit(x, y, width, styleCloud, string(cloudSprite[y][x-cloudCol]))
				prevIsland = false
				continue
			}

			h := field.HeightAt(x)
			switch {
			case h >= rowHeight:
				// Fully submerged
				c.emit(x, y, width, styleWaterBG, " ")
			case h >= rowHeight-constants.SubRows:
				// Surface line
				c.emit(x, y, width, styleWaterFG, waterGlyphs[levelIndex(h)])
			case prevIsland:
				// Trailing edge of the island: blank the cell so nothing
				// bleeds out of the silhouette
				c.emit(x, y, width, styleBlank, " ")
			default:
				// Empty sky stays untouched since the frame began with a
				// clear; the cursor run is broken
				c.contiguous = false
			}
			prevIsland = false
		}
	}

	c.sink.Reset()
}

// emit writes one cell, preceded by at most one SetColor (when the color
// pair changes) and at most one MoveTo (when the cursor run breaks).
func (c *Compositor) emit(x, y, width int, st Style, glyph string) {
	if !c.styleValid || st != c.style {
		c.sink.SetColor(st.Fg, st.Bg)
		c.style = st
		c.styleValid = true
	}
	if !c.contiguous || x != c.nextX || y != c.nextY {
		c.sink.MoveTo(x, y)
	}
	c.sink.Print(glyph)

	c.nextX, c.nextY = x+1, y
	if c.nextX == width {
		// Auto-wrap carries the run into the next row
		c.nextX, c.nextY = 0, y+1
	}
	c.contiguous = true
}

// levelIndex selects the partial-block fill level for a surface cell.
func levelIndex(h float64) int {
	i := int(math.Floor(h)) % constants.SubRows
	if i < 0 {
		i += constants.SubRows
	}
	return i
}
