package sim

import (
	"github.com/lixenwraith/island/constants"
)

// Rand is the uniform random source consumed by the cloud's drift flips.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Cloud is the drifting emitter that periodically releases drips.
// Position is in sub-columns across the full terminal width.
type Cloud struct {
	pos       float64
	speed     float64
	dropCount int
	dropDelay int
}

// NewCloud places the cloud at mid-width, drifting right.
func NewCloud(termWidth int) *Cloud {
	return &Cloud{
		pos:       float64(termWidth*constants.SubRows)/2 - 2,
		speed:     constants.CloudSpeed,
		dropDelay: constants.CloudDropDelay,
	}
}

// Advance moves the cloud one frame: clamp after a resize, occasional random
// drift reversal, bounce at the edges, and a drip release every dropDelay
// frames. resized reports a terminal extent change since last frame.
func (c *Cloud) Advance(width, height int, resized bool, drips *Drips, rng Rand) {
	bound := float64((width - constants.CloudWidth) * constants.SubRows)

	if resized {
		if width < constants.CloudWidth {
			c.pos = 0
		} else if c.pos >= bound {
			c.pos = bound
		}
	}

	// Organic drift: roughly one direction flip per width*8 frames
	if n := width * constants.SubRows; n > 0 && rng.Intn(n) == 0 {
		c.speed = -c.speed
	}

	c.pos += c.speed
	if c.pos >= bound {
		c.pos = bound
		if c.speed > 0 {
			c.speed = -c.speed
		}
	}
	if c.pos <= 0 {
		c.pos = 0
		if c.speed < 0 {
			c.speed = -c.speed
		}
	}

	c.dropCount++
	if c.dropCount >= c.dropDelay {
		c.dropCount = 0
		drips.Spawn(int(c.pos/constants.SubRows)+2, height)
	}
}

// Col returns the terminal column of the cloud sprite's left edge.
func (c *Cloud) Col() int {
	return int(c.pos / constants.SubRows)
}

// Pos returns the raw position in sub-columns.
func (c *Cloud) Pos() float64 {
	return c.pos
}

// Speed returns the current drift speed in sub-columns per frame.
func (c *Cloud) Speed() float64 {
	return c.speed
}
