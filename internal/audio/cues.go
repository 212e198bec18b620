// Package audio plays short synthesized cues for match events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note lengths
const (
	blip  = 70 * time.Millisecond
	chime = 90 * time.Millisecond
	dirge = 220 * time.Millisecond
)

// Melodies in Hz
var (
	goodMelody    = []float64{880, 1320}
	badMelody     = []float64{196, 147}
	powerUpMelody = []float64{523, 659, 784, 1047}
	gameOverDirge = []float64{440, 330, 220}
)

// Cues mixes event sounds into a single speaker stream
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCues creates a silent cue player. Call Initialize to open the device.
func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops playback and releases the device
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Pickup plays a rising chime for good items and a low buzz for bad ones
func (c *Cues) Pickup(good bool) {
	if good {
		c.play(goodMelody, blip)
		return
	}
	c.play(badMelody, blip)
}

// PowerUp plays a major arpeggio
func (c *Cues) PowerUp() {
	c.play(powerUpMelody, chime)
}

// GameOver plays a descending dirge
func (c *Cues) GameOver() {
	c.play(gameOverDirge, dirge)
}

func (c *Cues) play(freqs []float64, note time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s, err := melody(freqs, note, c.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// melody strings sine notes of equal length and scales them to vol
func melody(freqs []float64, note time.Duration, vol float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", f, err)
		}
		notes = append(notes, beep.Take(sampleRate.N(note), sine))
	}
	return withVolume(beep.Seq(notes...), vol), nil
}

// math.Log2(0) is -Inf, so zero volume goes silent instead
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
