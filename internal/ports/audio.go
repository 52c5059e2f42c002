// Package ports defines interfaces for dependency inversion.
// These interfaces allow the core business logic to remain independent of external frameworks.
package ports

// AudioOutput is the contract for the audio-output collaborator the player
// engine drives. The engine is its sole owner: nothing else writes to the
// output's source, position, or volume.
//
// Implementations report playback lifecycle changes by publishing
// domain.PlaybackStartedEvent, domain.PlaybackEndedEvent,
// domain.MetadataLoadedEvent and domain.PositionChangedEvent on the event
// bus; the engine never inspects the output beyond this contract.
//
// Implementations must be thread-safe.
type AudioOutput interface {
	// Load prepares the output to play the given audio reference.
	// A previously loaded source is replaced.
	Load(audioRef string) error

	// Play starts or resumes playback of the loaded source.
	Play() error

	// Pause pauses playback, preserving the position.
	Pause() error

	// SetPosition moves the playback position, in seconds.
	SetPosition(seconds float64) error

	// Position returns the current playback position, in seconds.
	Position() (float64, error)

	// SetVolume sets the effective output volume (0.0 to 1.0). The engine is
	// responsible for mapping its mute flag to 0 before calling this.
	SetVolume(volume float64) error

	// Volume returns the current effective output volume.
	Volume() (float64, error)

	// Close releases output resources.
	Close() error
}
