package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadTouchSample decodes the WAV at path into 16-bit stereo PCM at
// sampleRate, ready for audio.Context.NewPlayerFromBytes.
func loadTouchSample(sampleRate int, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	decoded = decoded[:len(decoded)-len(decoded)%audioFrameBytes]
	if len(decoded) == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return decoded, nil
}

// pcmDuration reports how long 16-bit stereo pcm plays at sampleRate.
func pcmDuration(sampleRate int, pcm []byte) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	frames := len(pcm) / audioFrameBytes
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

// peakLevel returns the largest stereo-averaged magnitude in pcm, in [0, 1].
func peakLevel(pcm []byte) float64 {
	peak := 0.0
	for i := 0; i+audioFrameBytes <= len(pcm); i += audioFrameBytes {
		left := int16(binary.LittleEndian.Uint16(pcm[i : i+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[i+2 : i+4]))
		v := (float64(left) + float64(right)) * (0.5 / 32768.0)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
