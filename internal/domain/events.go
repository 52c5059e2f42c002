// Package domain defines events for the event-driven architecture.
// Events decouple the player core from the collaborators that observe it.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Audio output events, raised by the collaborator that owns the output
	EventPlaybackStarted EventType = "playback.started"
	EventPlaybackEnded   EventType = "playback.ended"
	EventMetadataLoaded  EventType = "playback.metadata"
	EventPositionChanged EventType = "playback.position"

	// Player engine events
	EventTrackStarted     EventType = "player.track_started"
	EventTrackChanged     EventType = "player.track_changed"
	EventPlayStateChanged EventType = "player.state_changed"
	EventQueueUpdated     EventType = "player.queue_updated"
	EventVolumeChanged    EventType = "player.volume_changed"
	EventMuteToggled      EventType = "player.mute_toggled"
	EventShuffleToggled   EventType = "player.shuffle_toggled"
	EventRepeatChanged    EventType = "player.repeat_changed"

	// Library events
	EventLibraryUpdated EventType = "library.updated"

	// Session events
	EventSessionChanged EventType = "session.changed"

	// Settings events
	EventSettingsUpdated EventType = "settings.updated"

	// Notification events
	EventNotificationShown  EventType = "notification.shown"
	EventNotificationHidden EventType = "notification.hidden"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// PlaybackStartedEvent is raised by the audio output when the loaded source
// begins audible playback. It names the source by audio reference; the
// output never sees Track records.
type PlaybackStartedEvent struct {
	baseEvent
	AudioRef string
}

// Type returns the event type.
func (e PlaybackStartedEvent) Type() EventType {
	return EventPlaybackStarted
}

// NewPlaybackStartedEvent creates a new PlaybackStartedEvent.
func NewPlaybackStartedEvent(audioRef string) PlaybackStartedEvent {
	return PlaybackStartedEvent{
		baseEvent: newBaseEvent(),
		AudioRef:  audioRef,
	}
}

// PlaybackEndedEvent is raised by the audio output when the loaded source
// finishes playing naturally.
type PlaybackEndedEvent struct {
	baseEvent
	AudioRef string
}

// Type returns the event type.
func (e PlaybackEndedEvent) Type() EventType {
	return EventPlaybackEnded
}

// NewPlaybackEndedEvent creates a new PlaybackEndedEvent.
func NewPlaybackEndedEvent(audioRef string) PlaybackEndedEvent {
	return PlaybackEndedEvent{
		baseEvent: newBaseEvent(),
		AudioRef:  audioRef,
	}
}

// MetadataLoadedEvent is raised by the audio output when it learns the loaded
// source's duration.
type MetadataLoadedEvent struct {
	baseEvent
	AudioRef string
	Duration float64 // seconds
}

// Type returns the event type.
func (e MetadataLoadedEvent) Type() EventType {
	return EventMetadataLoaded
}

// NewMetadataLoadedEvent creates a new MetadataLoadedEvent.
func NewMetadataLoadedEvent(audioRef string, duration float64) MetadataLoadedEvent {
	return MetadataLoadedEvent{
		baseEvent: newBaseEvent(),
		AudioRef:  audioRef,
		Duration:  duration,
	}
}

// TrackStartedEvent is published by the player when audible playback of its
// current track begins. The library observes it to update recently-played.
type TrackStartedEvent struct {
	baseEvent
	Track Track
	Index int // Queue index
}

// Type returns the event type.
func (e TrackStartedEvent) Type() EventType {
	return EventTrackStarted
}

// NewTrackStartedEvent creates a new TrackStartedEvent.
func NewTrackStartedEvent(track Track, index int) TrackStartedEvent {
	return TrackStartedEvent{
		baseEvent: newBaseEvent(),
		Track:     track,
		Index:     index,
	}
}

// PositionChangedEvent is published as playback progresses.
type PositionChangedEvent struct {
	baseEvent
	AudioRef string
	Position float64 // seconds
	Duration float64 // seconds
}

// Type returns the event type.
func (e PositionChangedEvent) Type() EventType {
	return EventPositionChanged
}

// NewPositionChangedEvent creates a new PositionChangedEvent.
func NewPositionChangedEvent(audioRef string, position, duration float64) PositionChangedEvent {
	return PositionChangedEvent{
		baseEvent: newBaseEvent(),
		AudioRef:  audioRef,
		Position:  position,
		Duration:  duration,
	}
}

// TrackChangedEvent is published when the player's current track changes.
type TrackChangedEvent struct {
	baseEvent
	Track Track
	Index int // Queue index
}

// Type returns the event type.
func (e TrackChangedEvent) Type() EventType {
	return EventTrackChanged
}

// NewTrackChangedEvent creates a new TrackChangedEvent.
func NewTrackChangedEvent(track Track, index int) TrackChangedEvent {
	return TrackChangedEvent{
		baseEvent: newBaseEvent(),
		Track:     track,
		Index:     index,
	}
}

// PlayStateChangedEvent is published when playback flips between playing and
// paused.
type PlayStateChangedEvent struct {
	baseEvent
	IsPlaying bool
}

// Type returns the event type.
func (e PlayStateChangedEvent) Type() EventType {
	return EventPlayStateChanged
}

// NewPlayStateChangedEvent creates a new PlayStateChangedEvent.
func NewPlayStateChangedEvent(isPlaying bool) PlayStateChangedEvent {
	return PlayStateChangedEvent{
		baseEvent: newBaseEvent(),
		IsPlaying: isPlaying,
	}
}

// QueueUpdatedEvent is published when the queue contents or index change.
type QueueUpdatedEvent struct {
	baseEvent
	Queue Queue
}

// Type returns the event type.
func (e QueueUpdatedEvent) Type() EventType {
	return EventQueueUpdated
}

// NewQueueUpdatedEvent creates a new QueueUpdatedEvent.
func NewQueueUpdatedEvent(queue Queue) QueueUpdatedEvent {
	return QueueUpdatedEvent{
		baseEvent: newBaseEvent(),
		Queue:     queue,
	}
}

// VolumeChangedEvent is published when the volume changes.
type VolumeChangedEvent struct {
	baseEvent
	Volume float64 // 0.0 to 1.0
}

// Type returns the event type.
func (e VolumeChangedEvent) Type() EventType {
	return EventVolumeChanged
}

// NewVolumeChangedEvent creates a new VolumeChangedEvent.
func NewVolumeChangedEvent(volume float64) VolumeChangedEvent {
	return VolumeChangedEvent{
		baseEvent: newBaseEvent(),
		Volume:    volume,
	}
}

// MuteToggledEvent is published when mute is toggled.
type MuteToggledEvent struct {
	baseEvent
	Muted bool
}

// Type returns the event type.
func (e MuteToggledEvent) Type() EventType {
	return EventMuteToggled
}

// NewMuteToggledEvent creates a new MuteToggledEvent.
func NewMuteToggledEvent(muted bool) MuteToggledEvent {
	return MuteToggledEvent{
		baseEvent: newBaseEvent(),
		Muted:     muted,
	}
}

// ShuffleToggledEvent is published when shuffle is toggled.
type ShuffleToggledEvent struct {
	baseEvent
	Shuffled bool
}

// Type returns the event type.
func (e ShuffleToggledEvent) Type() EventType {
	return EventShuffleToggled
}

// NewShuffleToggledEvent creates a new ShuffleToggledEvent.
func NewShuffleToggledEvent(shuffled bool) ShuffleToggledEvent {
	return ShuffleToggledEvent{
		baseEvent: newBaseEvent(),
		Shuffled:  shuffled,
	}
}

// RepeatChangedEvent is published when the repeat mode changes.
type RepeatChangedEvent struct {
	baseEvent
	Mode RepeatMode
}

// Type returns the event type.
func (e RepeatChangedEvent) Type() EventType {
	return EventRepeatChanged
}

// NewRepeatChangedEvent creates a new RepeatChangedEvent.
func NewRepeatChangedEvent(mode RepeatMode) RepeatChangedEvent {
	return RepeatChangedEvent{
		baseEvent: newBaseEvent(),
		Mode:      mode,
	}
}

// LibraryUpdatedEvent is published when liked tracks or recently played change.
type LibraryUpdatedEvent struct {
	baseEvent
	Liked          []Track
	RecentlyPlayed []Track
}

// Type returns the event type.
func (e LibraryUpdatedEvent) Type() EventType {
	return EventLibraryUpdated
}

// NewLibraryUpdatedEvent creates a new LibraryUpdatedEvent.
func NewLibraryUpdatedEvent(liked, recentlyPlayed []Track) LibraryUpdatedEvent {
	return LibraryUpdatedEvent{
		baseEvent:      newBaseEvent(),
		Liked:          liked,
		RecentlyPlayed: recentlyPlayed,
	}
}

// SessionChangedEvent is published on every auth state transition.
type SessionChangedEvent struct {
	baseEvent
	Session Session
}

// Type returns the event type.
func (e SessionChangedEvent) Type() EventType {
	return EventSessionChanged
}

// NewSessionChangedEvent creates a new SessionChangedEvent.
func NewSessionChangedEvent(session Session) SessionChangedEvent {
	return SessionChangedEvent{
		baseEvent: newBaseEvent(),
		Session:   session,
	}
}

// SettingsUpdatedEvent is published after a settings merge-then-store.
type SettingsUpdatedEvent struct {
	baseEvent
	Settings Settings
}

// Type returns the event type.
func (e SettingsUpdatedEvent) Type() EventType {
	return EventSettingsUpdated
}

// NewSettingsUpdatedEvent creates a new SettingsUpdatedEvent.
func NewSettingsUpdatedEvent(settings Settings) SettingsUpdatedEvent {
	return SettingsUpdatedEvent{
		baseEvent: newBaseEvent(),
		Settings:  settings,
	}
}

// NotificationShownEvent is published when a user-facing message is raised.
type NotificationShownEvent struct {
	baseEvent
	Notification Notification
}

// Type returns the event type.
func (e NotificationShownEvent) Type() EventType {
	return EventNotificationShown
}

// NewNotificationShownEvent creates a new NotificationShownEvent.
func NewNotificationShownEvent(n Notification) NotificationShownEvent {
	return NotificationShownEvent{
		baseEvent:    newBaseEvent(),
		Notification: n,
	}
}

// NotificationHiddenEvent is published when a message is dismissed.
type NotificationHiddenEvent struct {
	baseEvent
	NotificationID string
}

// Type returns the event type.
func (e NotificationHiddenEvent) Type() EventType {
	return EventNotificationHidden
}

// NewNotificationHiddenEvent creates a new NotificationHiddenEvent.
func NewNotificationHiddenEvent(id string) NotificationHiddenEvent {
	return NotificationHiddenEvent{
		baseEvent:      newBaseEvent(),
		NotificationID: id,
	}
}
