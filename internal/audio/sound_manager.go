package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pocket-dragon/internal/dragon"
)

const (
	sampleRate = beep.SampleRate(48000)

	clingFreq     = 1318.5 // E6
	clingDuration = 180 * time.Millisecond
	clingGap      = 90 * time.Millisecond
	clingVolume   = 0.4
)

// SoundManager plays alert clings through the local audio device.
// Every method is a safe no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewSoundManager creates an uninitialized sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Initialize sets up the audio device. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := sm.initSpeaker(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Initialized reports whether the audio device is ready.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Alert plays one cling per alert tier.
func (sm *SoundManager) Alert(a dragon.Alert) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if s := clingSequence(a.Repeats()); s != nil {
		sm.play(s)
	}
}

// Cleanup stops accepting alerts.
// beep has no speaker Close; clearing stops any queued clings.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

// clingSequence returns n clings separated by short silences, or nil for n < 1.
func clingSequence(n int) beep.Streamer {
	if n < 1 {
		return nil
	}

	parts := make([]beep.Streamer, 0, 2*n-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(clingGap)))
		}
		parts = append(parts, newCling(sampleRate, clingFreq, clingDuration))
	}
	return beep.Seq(parts...)
}

// cling is a sine tone with an exponential decay, like a small bell.
type cling struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newCling(sr beep.SampleRate, freq float64, d time.Duration) *cling {
	return &cling{
		freq:  freq,
		total: sr.N(d),
		rate:  sr,
	}
}

func (c *cling) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}

		progress := float64(c.position) / float64(c.total)
		env := math.Exp(-5 * progress)
		val := math.Sin(2*math.Pi*c.phase) * env * clingVolume

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		c.phase += c.freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *cling) Err() error { return nil }
