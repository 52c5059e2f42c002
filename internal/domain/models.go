// Package domain contains core business models and logic with no external dependencies.
// This package defines the fundamental entities of the musicstream client core.
package domain

import (
	"time"
)

// Track represents a single catalog entry: the metadata and media references
// for one playable song. Tracks are immutable; identity is the ID field, and
// two tracks with the same ID are the same track everywhere in the system.
type Track struct {
	// ID is the unique identifier for the track
	ID string `json:"id"`

	// Title is the song title
	Title string `json:"title"`

	// Artist is the performing artist name
	Artist string `json:"artist"`

	// CoverRef is a reference to the cover image asset
	CoverRef string `json:"coverRef"`

	// AudioRef is a reference to the audio asset handed to the audio output
	AudioRef string `json:"audioRef"`

	// DurationLabel is the display duration (e.g. "3:47"), not seconds
	DurationLabel string `json:"duration"`

	// Genre is the music genre (optional)
	Genre string `json:"genre,omitempty"`

	// Album is the album name (optional)
	Album string `json:"album,omitempty"`

	// Year is the release year (optional, 0 = unknown)
	Year int `json:"year,omitempty"`
}

// RepeatMode controls what happens when playback reaches the end of a track.
type RepeatMode int

const (
	// RepeatNone stops at the end of the queue
	RepeatNone RepeatMode = iota

	// RepeatOne loops the current track
	RepeatOne

	// RepeatAll wraps around the queue
	RepeatAll
)

// String returns a human-readable representation of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "none"
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseRepeatMode converts a textual repeat mode into a RepeatMode.
// Unknown values map to RepeatNone.
func ParseRepeatMode(s string) RepeatMode {
	switch s {
	case "one":
		return RepeatOne
	case "all":
		return RepeatAll
	default:
		return RepeatNone
	}
}

// Next cycles the repeat mode the way the player toggle does:
// none -> all -> one -> none.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatNone
	}
}

// Queue is the ordered list of tracks the player traverses via next/previous.
//
// Songs is the active order and OriginalOrder the insertion-order ledger used
// to restore the queue when shuffle is turned off: every track ever added
// appears in OriginalOrder exactly once per add, and Songs is a permutation of
// OriginalOrder filtered by deletions.
type Queue struct {
	// Songs is the active playback order
	Songs []Track `json:"songs"`

	// OriginalOrder preserves insertion order across shuffles
	OriginalOrder []Track `json:"originalOrder"`

	// CurrentIndex is the index in Songs (-1 when the queue is empty)
	CurrentIndex int `json:"currentIndex"`

	// IsShuffled indicates whether Songs is currently a shuffled permutation
	IsShuffled bool `json:"isShuffled"`
}

// PlaybackState is a snapshot of the player: the current track, the queue,
// and the time/volume tracking. It is created once at session start and only
// ever reset, never destroyed.
type PlaybackState struct {
	// CurrentTrack is the currently loaded track (nil if none)
	CurrentTrack *Track

	// IsPlaying indicates whether audible playback is in progress
	IsPlaying bool

	// CurrentTime is the playback position in seconds
	CurrentTime float64

	// Duration is the track length in seconds (0 = unknown)
	Duration float64

	// Volume is the user-set volume (0.0 to 1.0), independent of mute
	Volume float64

	// IsMuted indicates if output is muted
	IsMuted bool

	// RepeatMode is the active repeat mode
	RepeatMode RepeatMode

	// IsShuffled mirrors Queue.IsShuffled
	IsShuffled bool

	// Queue is the playback queue
	Queue Queue
}

// User is a single profile in the local user directory.
type User struct {
	// ID is a unique identifier for the user (UUID)
	ID string `json:"id"`

	// Email is unique within the local user directory
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Avatar is a reference to the profile image (optional)
	Avatar string `json:"avatar,omitempty"`

	// Bio is free-form profile text (optional)
	Bio string `json:"bio,omitempty"`

	// JoinedAt is when the account was registered
	JoinedAt time.Time `json:"joinDate"`

	// FavoriteGenres is seeded with defaults at registration
	FavoriteGenres []string `json:"favoriteGenres"`

	IsPublic     bool `json:"isPublic"`
	ShowActivity bool `json:"showActivity"`

	// LastLoginAt is stamped on each successful login
	LastLoginAt time.Time `json:"lastLoginDate"`
}

// DisplayName returns the user's full display name.
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Credentials is a directory entry: a user record plus its password hash.
// Only the repository layer ever sees this type; sessions carry User.
type Credentials struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Session is the authenticated/anonymous identity state for the profile.
type Session struct {
	// User is the authenticated user (nil when anonymous)
	User *User

	// IsAuthenticated is true once login/register/restore succeeds
	IsAuthenticated bool

	// IsLoading is true while an auth operation is in flight
	IsLoading bool

	// Error holds the last auth failure message ("" when none)
	Error string
}

// ProfileUpdate carries the editable profile fields. Nil pointers leave
// the corresponding field unchanged.
type ProfileUpdate struct {
	FirstName      *string
	LastName       *string
	Avatar         *string
	Bio            *string
	FavoriteGenres *[]string
	IsPublic       *bool
	ShowActivity   *bool
}

// ApplyTo returns a copy of user with the non-nil fields applied.
func (p ProfileUpdate) ApplyTo(user User) User {
	if p.FirstName != nil {
		user.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		user.LastName = *p.LastName
	}
	if p.Avatar != nil {
		user.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		user.Bio = *p.Bio
	}
	if p.FavoriteGenres != nil {
		user.FavoriteGenres = append([]string(nil), (*p.FavoriteGenres)...)
	}
	if p.IsPublic != nil {
		user.IsPublic = *p.IsPublic
	}
	if p.ShowActivity != nil {
		user.ShowActivity = *p.ShowActivity
	}
	return user
}

// Settings is the flat record of user preferences. It is persisted as a whole
// record on every partial update (merge-then-store).
type Settings struct {
	Theme              string `json:"theme"`
	FontSize           string `json:"fontSize"`
	DefaultVolume      int    `json:"defaultVolume"`
	AudioQuality       string `json:"audioQuality"`
	SaveHistory        bool   `json:"saveHistory"`
	DataSharing        bool   `json:"dataSharing"`
	EmailNotifications bool   `json:"emailNotifications"`
}

// DefaultSettings returns the settings applied to a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		Theme:              "dark",
		FontSize:           "medium",
		DefaultVolume:      50,
		AudioQuality:       "high",
		SaveHistory:        true,
		DataSharing:        false,
		EmailNotifications: true,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged
// by the merge.
type SettingsPatch struct {
	Theme              *string
	FontSize           *string
	DefaultVolume      *int
	AudioQuality       *string
	SaveHistory        *bool
	DataSharing        *bool
	EmailNotifications *bool
}

// Merge applies the patch on top of s and returns the merged record.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.DefaultVolume != nil {
		s.DefaultVolume = *p.DefaultVolume
	}
	if p.AudioQuality != nil {
		s.AudioQuality = *p.AudioQuality
	}
	if p.SaveHistory != nil {
		s.SaveHistory = *p.SaveHistory
	}
	if p.DataSharing != nil {
		s.DataSharing = *p.DataSharing
	}
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	return s
}

// NotificationKind classifies an ephemeral user-facing message.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// Notification is an ephemeral user-facing message, auto-dismissed after a
// short delay.
type Notification struct {
	// ID is a unique identifier for the notification (UUID)
	ID string

	Message string
	Kind    NotificationKind

	// ShownAt is when the notification was raised
	ShownAt time.Time
}

// RecentlyPlayedLimit caps the recently-played history at the most recent
// entries, newest first.
const RecentlyPlayedLimit = 50
