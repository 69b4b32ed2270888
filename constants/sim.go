package constants

import "time"

// Frame Pacing
const (
	// FrameRate is the target simulation cadence in frames per second.
	// Physics coefficients below are tuned per-frame for this rate.
	FrameRate = 10

	// FrameUpdateInterval is the frame loop ticker interval
	FrameUpdateInterval = time.Second / FrameRate
)

// Sub-row resolution: heights and vertical positions are tracked in
// eighths of a character row, matching the 8 partial-block glyphs
const SubRows = 8

// Water Physics (dimensionless per-frame coefficients)
const (
	// WaterTension pulls each column toward the equilibrium target
	WaterTension = 0.025

	// WaterDampening bleeds column velocity each frame
	WaterDampening = 0.025

	// WaterSpread couples neighboring columns during diffusion
	WaterSpread = 0.25

	// WaterSpreadPasses is the number of diffusion sub-iterations per frame
	WaterSpreadPasses = 8

	// WaterBaseTarget is the initial equilibrium height in sub-rows
	WaterBaseTarget = 8.0
)

// Drip Physics
const (
	// Gravity is the per-frame vertical speed loss of a falling drip
	Gravity = 9.8 / FrameRate
)

// Cloud Motion
const (
	// CloudSpeed is the horizontal drift in sub-columns per frame
	CloudSpeed = 10.0 / FrameRate

	// CloudWidth is the sprite width in columns
	CloudWidth = 5

	// CloudDropDelay is the number of frames between drip releases
	CloudDropDelay = 30
)
