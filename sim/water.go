package sim

import (
	"github.com/lixenwraith/island/constants"
)

// column holds the local wave state of one terminal-width unit of water.
// ldelta/rdelta are scratch values valid only within one diffusion sub-pass.
type column struct {
	height   float64
	velocity float64
	ldelta   float64
	rdelta   float64
}

// Water simulates a 1-D body of water as a row of spring-coupled columns.
// Heights are in sub-rows (8 sub-rows = 1 character row, see constants.SubRows).
type Water struct {
	cols       []column
	target     float64
	islandRow  int
	termHeight int
}

// NewWater creates a water field sized to the given terminal extent.
func NewWater(width, height int) *Water {
	w := &Water{}
	w.Reinit(width, height)
	return w
}

// Reinit discards all wave state and resizes the field to the terminal extent.
// Every column settles at the baseline target with zero velocity. Must be
// called before any same-frame read when the extent changes.
func (w *Water) Reinit(width, height int) {
	if width < 0 {
		width = 0
	}
	if cap(w.cols) < width {
		w.cols = make([]column, width)
	} else {
		w.cols = w.cols[:width]
	}

	w.target = constants.WaterBaseTarget
	for i := range w.cols {
		w.cols[i] = column{height: w.target}
	}

	w.termHeight = height
	w.islandRow = (height * 3 / 4) - 1
}

// Step advances the simulation one frame: spring relaxation toward the
// equilibrium target, then several passes of lateral diffusion.
func (w *Water) Step() {
	cols := w.cols

	// Spring relaxation, once per column
	for i := range cols {
		cols[i].velocity += constants.WaterTension*(w.target-cols[i].height) -
			cols[i].velocity*constants.WaterDampening
		cols[i].height += cols[i].velocity
	}

	// Lateral diffusion. Each sub-iteration runs two sequential passes:
	// deltas are computed from the heights as they stand at the start of the
	// sub-iteration and pushed into neighbor velocities, then applied to
	// neighbor heights in a second pass. The split keeps velocity updates on
	// a consistent height snapshot.
	last := len(cols) - 1
	for j := 0; j < constants.WaterSpreadPasses; j++ {
		for i := range cols {
			if i > 0 {
				cols[i].ldelta = constants.WaterSpread * (cols[i].height - cols[i-1].height)
				cols[i-1].velocity += cols[i].ldelta
			}
			if i < last {
				cols[i].rdelta = constants.WaterSpread * (cols[i].height - cols[i+1].height)
				cols[i+1].velocity += cols[i].rdelta
			}
		}
		for i := range cols {
			if i > 0 {
				cols[i-1].height += cols[i].ldelta
			}
			if i < last {
				cols[i+1].height += cols[i].rdelta
			}
		}
	}
}

// ApplyImpulse injects a one-time velocity change into a column, typically a
// drip impact, and ratchets the equilibrium target up by one sub-row spread
// across the full width. The target never exceeds (termHeight-3) rows.
func (w *Water) ApplyImpulse(col int, dv float64) {
	if col < 0 || col >= len(w.cols) {
		return
	}
	w.cols[col].velocity += dv

	limit := float64(w.termHeight-3) * constants.SubRows
	w.target += constants.SubRows / float64(len(w.cols))
	if w.target > limit {
		w.target = limit
	}
}

// Width returns the number of columns.
func (w *Water) Width() int {
	return len(w.cols)
}

// HeightAt returns the water height of a column in sub-rows.
// Out-of-range columns report zero height.
func (w *Water) HeightAt(col int) float64 {
	if col < 0 || col >= len(w.cols) {
		return 0
	}
	return w.cols[col].height
}

// VelocityAt returns the vertical velocity of a column in sub-rows per frame.
func (w *Water) VelocityAt(col int) float64 {
	if col < 0 || col >= len(w.cols) {
		return 0
	}
	return w.cols[col].velocity
}

// Target returns the current equilibrium height in sub-rows.
func (w *Water) Target() float64 {
	return w.target
}

// IslandRow returns the terminal row the island silhouette is anchored at.
func (w *Water) IslandRow() int {
	return w.islandRow
}
