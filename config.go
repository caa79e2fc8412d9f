package main

import "time"

// Display, timing and audio constants for the touch frontend. The display
// defaults match the 320x240 landscape panel the renderer was first built for.
const (
	defaultWidth, defaultHeight = 320, 240
	windowScale                 = 2
	defaultTPS                  = 240
	defaultDrawInterval         = 100 * time.Millisecond
	pgoRecordDuration           = 15 * time.Second
	autoTouchInterval           = 120 * time.Millisecond
	audioSampleRate             = 48000
	audioFrameBytes             = 4
	touchToneFrequency          = 659.26
	touchToneDuration           = 50 * time.Millisecond
	touchToneVolume             = 48.0 / 255.0
	toneFadeDuration            = 3 * time.Millisecond
	startupChimeTones           = 3
	startupChimeSpacing         = 150 * time.Millisecond
	pcm16MaxValue               = 32767
	pcm16MinValue               = -32768
	bytesPerMB                  = 1 << 20
)
