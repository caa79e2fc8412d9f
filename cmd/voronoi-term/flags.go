package main

import (
	"flag"
	"time"
)

const (
	defaultDrawInterval = 100 * time.Millisecond
	audioSampleRate     = 48000
	audioBufferDuration = 100 * time.Millisecond
	touchToneFrequency  = 659.26
	touchToneDuration   = 50 * time.Millisecond
	touchToneVolume     = 48.0 / 255.0
	startupChimeTones   = 3
	startupChimeSpacing = 150 * time.Millisecond
)

var (
	// drawIntervalFlag is the render task period. Commits also wake it.
	drawIntervalFlag = flag.Duration("draw-interval", defaultDrawInterval, "interval between animation frames")

	// openCLFlag prefers the OpenCL jump flood when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "classify on an OpenCL device when available")

	// enableAudioFlag toggles the touch feedback tone.
	enableAudioFlag = flag.Bool("enable-audio", true, "play a tone for every committed touch")

	startupChimeFlag = flag.Bool("startup-chime", true, "play three tones at startup")

	// logFlag receives log output; the terminal itself is owned by the screen.
	logFlag = flag.String("log", "", "append log output to this file (default: discard)")

	// seedFlag makes palette picks reproducible.
	seedFlag = flag.Int64("seed", 0, "palette random seed (0 = time based)")
)
