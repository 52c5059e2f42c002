// Package mock provides a simulated implementation of the AudioOutput
// interface. It models playback entirely in memory, which is all the client
// core needs: there is no real decoding, only the lifecycle the player
// engine reacts to.
package mock

import (
	"log/slog"
	"sync"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// DefaultDuration is the simulated source length reported for every loaded
// source, in seconds.
const DefaultDuration = 180.0

// Output simulates an audio output device. It publishes the playback
// lifecycle events a real output would raise, and offers test hooks to drive
// position ticks and natural completion.
//
// Thread-safe: all operations protected by sync.RWMutex.
type Output struct {
	logger *slog.Logger
	bus    ports.EventBus

	mu       sync.RWMutex
	audioRef string
	loaded   bool
	playing  bool
	position float64
	duration float64
	volume   float64

	// Failure injection for tests
	failLoad bool
	failPlay bool
}

// NewOutput creates a new simulated audio output publishing on bus.
func NewOutput(logger *slog.Logger, bus ports.EventBus) *Output {
	return &Output{
		logger: logger,
		bus:    bus,
		volume: 1.0,
	}
}

// SetFailLoad configures the output to fail Load calls (for testing).
func (o *Output) SetFailLoad(fail bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failLoad = fail
}

// SetFailPlay configures the output to fail Play calls (for testing).
func (o *Output) SetFailPlay(fail bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failPlay = fail
}

// Load prepares the output to play audioRef, replacing any previous source,
// and reports the simulated duration via a metadata event.
func (o *Output) Load(audioRef string) error {
	o.mu.Lock()

	if o.failLoad {
		o.mu.Unlock()
		return domain.NewAudioOutputError("load", audioRef, domain.ErrNoTrackLoaded)
	}

	o.audioRef = audioRef
	o.loaded = true
	o.playing = false
	o.position = 0
	o.duration = DefaultDuration
	duration := o.duration
	o.mu.Unlock()

	o.logger.Debug("source loaded", slog.String("audio_ref", audioRef))
	o.bus.Publish(domain.NewMetadataLoadedEvent(audioRef, duration))

	return nil
}

// Play starts or resumes playback of the loaded source.
func (o *Output) Play() error {
	o.mu.Lock()

	if !o.loaded {
		o.mu.Unlock()
		return domain.NewAudioOutputError("play", "", domain.ErrNoTrackLoaded)
	}
	if o.failPlay {
		ref := o.audioRef
		o.mu.Unlock()
		return domain.NewAudioOutputError("play", ref, domain.ErrNoTrackLoaded)
	}

	wasPlaying := o.playing
	o.playing = true
	ref := o.audioRef
	o.mu.Unlock()

	if !wasPlaying {
		o.bus.Publish(domain.NewPlaybackStartedEvent(ref))
	}
	return nil
}

// Pause pauses playback, preserving the position.
func (o *Output) Pause() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return domain.NewAudioOutputError("pause", "", domain.ErrNoTrackLoaded)
	}
	o.playing = false
	return nil
}

// SetPosition moves the playback position, in seconds.
func (o *Output) SetPosition(seconds float64) error {
	o.mu.Lock()

	if !o.loaded {
		o.mu.Unlock()
		return domain.NewAudioOutputError("seek", "", domain.ErrNoTrackLoaded)
	}
	o.position = seconds
	ref, position, duration := o.audioRef, o.position, o.duration
	o.mu.Unlock()

	o.bus.Publish(domain.NewPositionChangedEvent(ref, position, duration))
	return nil
}

// Position returns the current playback position, in seconds.
func (o *Output) Position() (float64, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.position, nil
}

// SetVolume sets the effective output volume.
func (o *Output) SetVolume(volume float64) error {
	if volume < 0.0 || volume > 1.0 {
		return domain.ErrInvalidVolume
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.volume = volume
	return nil
}

// Volume returns the current effective output volume.
func (o *Output) Volume() (float64, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.volume, nil
}

// Close releases the simulated device.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.loaded = false
	o.playing = false
	return nil
}

// IsPlaying reports whether the simulated device is playing, for tests.
func (o *Output) IsPlaying() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.playing
}

// LoadedRef returns the currently loaded audio reference, for tests.
func (o *Output) LoadedRef() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.audioRef
}

// AdvancePosition simulates playback progress by seconds, publishing a
// position event. Advancing past the duration does not finish the track;
// call FinishTrack for natural completion.
func (o *Output) AdvancePosition(seconds float64) {
	o.mu.Lock()
	if !o.loaded || !o.playing {
		o.mu.Unlock()
		return
	}
	o.position += seconds
	if o.position > o.duration {
		o.position = o.duration
	}
	ref, position, duration := o.audioRef, o.position, o.duration
	o.mu.Unlock()

	o.bus.Publish(domain.NewPositionChangedEvent(ref, position, duration))
}

// FinishTrack simulates the loaded source reaching its natural end: position
// jumps to the duration, playback stops, and a playback-ended event fires.
func (o *Output) FinishTrack() {
	o.mu.Lock()
	if !o.loaded {
		o.mu.Unlock()
		return
	}
	o.position = o.duration
	o.playing = false
	ref := o.audioRef
	o.mu.Unlock()

	o.bus.Publish(domain.NewPlaybackEndedEvent(ref))
}

// Verify that Output implements the AudioOutput interface
var _ ports.AudioOutput = (*Output)(nil)
