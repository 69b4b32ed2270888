package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/island/constants"
)

// Engine plays a short plink when a drip hits the water, pitched by impact
// speed. Initialization is best effort: without a usable audio device the
// engine stays silent and the scene runs on.
type Engine struct {
	sampleRate beep.SampleRate
	ready      bool
	muted      atomic.Bool
}

// NewEngine creates a stopped engine.
func NewEngine() *Engine {
	return &Engine{
		sampleRate: beep.SampleRate(constants.AudioSampleRate),
	}
}

// Start opens the speaker. On error the engine remains in silent mode; the
// caller may log and continue.
func (e *Engine) Start() error {
	if e.ready {
		return nil
	}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constants.AudioBufferLen)); err != nil {
		return err
	}
	e.ready = true
	return nil
}

// Stop closes the speaker.
func (e *Engine) Stop() {
	if !e.ready {
		return
	}
	speaker.Close()
	e.ready = false
}

// SetMuted silences splash playback without touching the device.
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// PlaySplash fires one plink for a drip impact. impactSpeed is the drip's
// vertical speed on contact, negative on the way down.
func (e *Engine) PlaySplash(impactSpeed float64) {
	if !e.ready || e.muted.Load() {
		return
	}

	tone, err := generators.SineTone(e.sampleRate, splashFreq(impactSpeed))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(constants.SplashDuration), tone))
}

// splashFreq maps impact speed to plink pitch: harder hits ring higher,
// capped to keep the scene gentle.
func splashFreq(impactSpeed float64) float64 {
	f := constants.SplashBaseFreq + math.Abs(impactSpeed)*constants.SplashFreqPerSpeed
	if f > constants.SplashMaxFreq {
		f = constants.SplashMaxFreq
	}
	return f
}
