// Package audio plays short generated cues for player feedback.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/flatcaster/internal/controller"
	"github.com/Faultbox/flatcaster/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// BumpCooldown limits how often the blocked-move cue repeats while the
// player keeps pushing into a wall.
const BumpCooldown = 250 * time.Millisecond

// Manager owns the speaker and mixes cues into it. Until Init succeeds every
// cue is a no-op, so a machine without audio runs silently.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64
	muted       bool

	mixer    *beep.Mixer
	play     func(beep.Streamer)
	shutdown func()
	now      func() time.Time
	lastBump time.Time
	log      *zap.Logger
}

// New creates a manager at the given volume (0.0 to 1.0).
func New(volume float64) *Manager {
	m := &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
		now:        time.Now,
		log:        logger.Named("audio"),
	}
	m.play = m.addToMixer
	m.shutdown = closeSpeaker
	return m
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)), zap.Float64("volume", m.volume))
	return nil
}

// Close stops playback and releases the audio device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.initialized = false
	m.shutdown()
	m.log.Info("audio closed")
}

func closeSpeaker() {
	speaker.Clear()
	speaker.Close()
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetMuted silences all cues without closing the speaker.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// ModeChanged plays a rising chirp when entering first person and a falling
// one when returning to the overhead view.
func (m *Manager) ModeChanged(mode controller.ViewMode) {
	m.cue(chirp(mode == controller.FirstPerson, m.sampleRate))
}

// Bumped plays a thud for a blocked move, at most once per BumpCooldown.
func (m *Manager) Bumped() {
	m.mu.Lock()
	now := m.now()
	if now.Sub(m.lastBump) < BumpCooldown {
		m.mu.Unlock()
		return
	}
	m.lastBump = now
	m.mu.Unlock()

	m.cue(thud(m.sampleRate))
}

func (m *Manager) cue(s beep.Streamer) {
	m.mu.RLock()
	active := m.initialized && !m.muted
	vol := m.volume
	m.mu.RUnlock()

	if !active || vol <= 0 {
		return
	}
	m.play(withVolume(s, vol))
}

func (m *Manager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
