package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer length; one frame's worth keeps
	// plinks responsive without underruns
	AudioBufferLen = time.Second / 10
)

// Splash Sound
const (
	// SplashDuration is the length of one impact plink
	SplashDuration = 60 * time.Millisecond

	// SplashBaseFreq is the plink pitch for a near-zero impact, in Hz
	SplashBaseFreq = 220.0

	// SplashFreqPerSpeed scales pitch with impact speed (sub-rows/frame)
	SplashFreqPerSpeed = 30.0

	// SplashMaxFreq caps the plink pitch for hard impacts
	SplashMaxFreq = 880.0
)
