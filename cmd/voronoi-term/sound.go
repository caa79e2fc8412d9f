package main

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// toneFeedback beeps through the system speaker for every committed touch.
// It implements voronoi.Feedback.
type toneFeedback struct {
	sr        beep.SampleRate
	closeOnce sync.Once
}

// newToneFeedback opens the speaker. It fails on machines without an audio
// device.
func newToneFeedback() (*toneFeedback, error) {
	sr := beep.SampleRate(audioSampleRate)
	if err := speaker.Init(sr, sr.N(audioBufferDuration)); err != nil {
		return nil, err
	}
	return &toneFeedback{sr: sr}, nil
}

// toneStreamer returns one touch tone at the feedback volume.
func toneStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, touchToneFrequency)
	if err != nil {
		return nil, fmt.Errorf("touch tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(touchToneDuration), sine),
		Base:     2,
		Volume:   math.Log2(touchToneVolume),
	}, nil
}

// chimeStreamer returns the startup sequence: tones whose onsets are
// startupChimeSpacing apart.
func chimeStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, startupChimeTones*2)
	for i := 0; i < startupChimeTones; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sr.N(startupChimeSpacing-touchToneDuration)))
		}
		tone, err := toneStreamer(sr)
		if err != nil {
			return nil, err
		}
		parts = append(parts, tone)
	}
	return beep.Seq(parts...), nil
}

// Touched implements voronoi.Feedback.
func (f *toneFeedback) Touched() {
	if f == nil {
		return
	}
	tone, err := toneStreamer(f.sr)
	if err != nil {
		log.Printf("Touch tone unavailable: %v", err)
		return
	}
	speaker.Play(tone)
}

func (f *toneFeedback) playStartupChime() {
	if f == nil {
		return
	}
	chime, err := chimeStreamer(f.sr)
	if err != nil {
		log.Printf("Startup chime unavailable: %v", err)
		return
	}
	speaker.Play(chime)
}

// Close stops playback and releases the speaker.
func (f *toneFeedback) Close() {
	if f == nil {
		return
	}
	f.closeOnce.Do(func() {
		speaker.Clear()
		speaker.Close()
	})
}
