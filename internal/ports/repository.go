// Package ports defines repository interfaces for data persistence abstraction.
// These interfaces enable the repository pattern and isolate the services from
// the key-value store and its JSON encoding.
package ports

import (
	"github.com/hoangtrungvu/musicstream/internal/domain"
)

// LibraryRepository persists the liked-tracks set and the recently-played
// history. Loads fall back to empty slices when nothing was saved or the
// stored JSON is corrupt.
//
// Thread-safety: implementations must be thread-safe.
type LibraryRepository interface {
	// SaveLiked persists the insertion-ordered liked set.
	SaveLiked(tracks []domain.Track) error

	// LoadLiked retrieves the liked set. Returns an empty slice if nothing
	// was saved.
	LoadLiked() ([]domain.Track, error)

	// SaveRecentlyPlayed persists the newest-first history.
	SaveRecentlyPlayed(tracks []domain.Track) error

	// LoadRecentlyPlayed retrieves the history. Returns an empty slice if
	// nothing was saved.
	LoadRecentlyPlayed() ([]domain.Track, error)

	// Clear removes both lists.
	Clear() error
}

// SessionRepository persists the auth session and the local user directory
// that stands in for a real identity service.
//
// Thread-safety: implementations must be thread-safe.
type SessionRepository interface {
	// SaveSession persists the user record (without credentials) and the
	// logged-in marker, plus the remember-me flag.
	SaveSession(user domain.User, rememberMe bool) error

	// LoadSession retrieves the persisted session. The boolean is false when
	// no session marker or user record exists.
	LoadSession() (domain.User, bool, error)

	// ClearSession removes the persisted session keys.
	ClearSession() error

	// LoadDirectory retrieves the credentials-bearing user directory.
	// Returns an empty slice if nothing was saved.
	LoadDirectory() ([]domain.Credentials, error)

	// SaveDirectory persists the user directory.
	SaveDirectory(users []domain.Credentials) error
}

// SettingsRepository persists the settings record plus the fast-path mirrors
// for theme and volume.
//
// Thread-safety: implementations must be thread-safe.
type SettingsRepository interface {
	// SaveSettings persists the whole settings record.
	SaveSettings(settings domain.Settings) error

	// LoadSettings retrieves the settings record. Returns defaults if nothing
	// was saved or the stored JSON is corrupt.
	LoadSettings() (domain.Settings, error)

	// SaveVolume mirrors the player volume (0.0 to 1.0) to its own key.
	SaveVolume(volume float64) error

	// LoadVolume retrieves the mirrored volume. The boolean is false when no
	// volume was saved.
	LoadVolume() (float64, bool, error)

	// SaveTheme mirrors the theme to its own key.
	SaveTheme(theme string) error

	// LoadTheme retrieves the mirrored theme. Returns "" when unset.
	LoadTheme() (string, error)

	// Clear removes all settings keys.
	Clear() error
}
