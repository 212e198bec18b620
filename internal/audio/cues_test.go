package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestMelodyLength(t *testing.T) {
	tests := []struct {
		name  string
		freqs []float64
		note  time.Duration
	}{
		{"good pickup", goodMelody, blip},
		{"bad pickup", badMelody, blip},
		{"power-up", powerUpMelody, chime},
		{"game over", gameOverDirge, dirge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := melody(tt.freqs, tt.note, 0.5)
			if err != nil {
				t.Fatalf("Failed to build melody: %v", err)
			}
			got, _ := drain(s)
			want := len(tt.freqs) * sampleRate.N(tt.note)
			if got != want {
				t.Errorf("Expected %d samples, got %d", want, got)
			}
		})
	}
}

func TestMelodyVolume(t *testing.T) {
	loud, err := melody(powerUpMelody, chime, 1)
	if err != nil {
		t.Fatal(err)
	}
	quiet, err := melody(powerUpMelody, chime, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	silent, err := melody(powerUpMelody, chime, 0)
	if err != nil {
		t.Fatal(err)
	}

	_, loudPeak := drain(loud)
	_, quietPeak := drain(quiet)
	_, silentPeak := drain(silent)

	if quietPeak >= loudPeak {
		t.Errorf("Expected quieter peak below %v, got %v", loudPeak, quietPeak)
	}
	if silentPeak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", silentPeak)
	}
}

func TestMelodyRejectsToneAboveNyquist(t *testing.T) {
	if _, err := melody([]float64{float64(sampleRate)}, blip, 1); err == nil {
		t.Error("Expected error for a tone at the sample rate")
	}
}

func TestPlayWithoutInitializeIsNoop(t *testing.T) {
	c := NewCues(0.5)

	c.Pickup(true)
	c.Pickup(false)
	c.PowerUp()
	c.GameOver()
	c.Close()

	if c.mixer.Len() != 0 {
		t.Errorf("Expected no queued streams, got %d", c.mixer.Len())
	}
}
