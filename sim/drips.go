package sim

import (
	"github.com/lixenwraith/island/constants"
)

// Drip is one falling water particle. Y is in sub-rows with 0 at the ground;
// Speed is vertical velocity, negative while falling.
type Drip struct {
	Active bool
	X      int
	Y      float64
	Speed  float64
}

// Drips pools falling particles. Slots are recycled: a spawn reuses the
// first inactive slot and the pool grows only when every slot is live.
type Drips struct {
	pool []Drip
}

// NewDrips creates an empty drip pool.
func NewDrips() *Drips {
	return &Drips{}
}

// Spawn activates a drip at the given column, released just under the cloud
// layer near the top of the terminal.
func (d *Drips) Spawn(col, termHeight int) {
	slot := -1
	for i := range d.pool {
		if !d.pool[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		d.pool = append(d.pool, Drip{})
		slot = len(d.pool) - 1
	}

	d.pool[slot] = Drip{
		Active: true,
		X:      col,
		Y:      float64(termHeight-2) * constants.SubRows,
	}
}

// Advance applies gravity to every active drip and detects water contact.
// A drip that reaches the surface of its own column is deactivated and its
// momentum is injected into that column. Returned are the impact speeds of
// this frame, for the caller to feed into splash effects.
//
// A drip whose column fell outside the field after a resize is dropped
// without an impulse.
func (d *Drips) Advance(w *Water) []float64 {
	var impacts []float64

	for i := range d.pool {
		dr := &d.pool[i]
		if !dr.Active {
			continue
		}

		if dr.X < 0 || dr.X >= w.Width() {
			dr.Active = false
			continue
		}

		dr.Speed -= constants.Gravity
		if dr.Y+dr.Speed < 0 {
			dr.Y = 0
		} else {
			dr.Y += dr.Speed
		}

		if dr.Y <= w.HeightAt(dr.X) {
			dr.Active = false
			w.ApplyImpulse(dr.X, dr.Speed)
			impacts = append(impacts, dr.Speed)
		}
	}
	return impacts
}

// All exposes the pool for rendering. Inactive slots are included; callers
// must check Active.
func (d *Drips) All() []Drip {
	return d.pool
}
