package main

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// tonePCM synthesizes a 16-bit little-endian stereo sine burst. Short linear
// fades at both ends keep the speaker from clicking.
func tonePCM(sampleRate int, freq float64, d time.Duration, amplitude float64) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	if frames <= 0 {
		return nil
	}
	fade := int(float64(sampleRate) * toneFadeDuration.Seconds())
	if fade*2 > frames {
		fade = frames / 2
	}
	out := make([]byte, frames*audioFrameBytes)
	for i := 0; i < frames; i++ {
		env := 1.0
		if fade > 0 {
			if i < fade {
				env = float64(i) / float64(fade)
			} else if rem := frames - 1 - i; rem < fade {
				env = float64(rem) / float64(fade)
			}
		}
		v := amplitude * env * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		s := pcm16(v)
		base := i * audioFrameBytes
		out[base] = byte(s)
		out[base+1] = byte(s >> 8)
		out[base+2] = out[base]
		out[base+3] = out[base+1]
	}
	return out
}

// pcm16 converts a [-1, 1] sample to a clamped signed 16-bit value.
func pcm16(v float64) int16 {
	s := math.Round(v * pcm16MaxValue)
	if s > pcm16MaxValue {
		s = pcm16MaxValue
	} else if s < pcm16MinValue {
		s = pcm16MinValue
	}
	return int16(s)
}

// touchSound plays the feedback for committed touches through ebiten audio.
// It implements voronoi.Feedback.
type touchSound struct {
	ctx    *audio.Context
	touch  []byte
	chime  []byte
	volume float64
}

// newTouchSound prepares the touch and startup tones. A touch WAV that cannot
// be loaded is logged and the synthesized tone is used instead.
func newTouchSound(ctx *audio.Context, wavPath string) *touchSound {
	tone := tonePCM(audioSampleRate, touchToneFrequency, touchToneDuration, 1)
	s := &touchSound{ctx: ctx, touch: tone, chime: tone, volume: touchToneVolume}
	if wavPath == "" {
		return s
	}
	pcm, err := loadTouchSample(audioSampleRate, wavPath)
	if err != nil {
		log.Printf("Touch sample unavailable, using tone: %v", err)
		return s
	}
	log.Printf("Touch sample %q loaded (%v, peak %.2f)", wavPath, pcmDuration(audioSampleRate, pcm), peakLevel(pcm))
	s.touch = pcm
	return s
}

// Touched implements voronoi.Feedback.
func (s *touchSound) Touched() {
	s.play(s.touch)
}

func (s *touchSound) play(pcm []byte) {
	if s == nil || s.ctx == nil || len(pcm) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
}

// playStartupChime plays the startup tones in the background.
func (s *touchSound) playStartupChime() {
	if s == nil {
		return
	}
	go func() {
		for i := 0; i < startupChimeTones; i++ {
			if i > 0 {
				time.Sleep(startupChimeSpacing)
			}
			s.play(s.chime)
		}
	}()
}
