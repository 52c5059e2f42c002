package repository

import (
	"log/slog"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// LibraryRepository implements ports.LibraryRepository over a KeyValueStore.
type LibraryRepository struct {
	codec
}

// NewLibraryRepository creates a new library repository.
func NewLibraryRepository(store ports.KeyValueStore, logger *slog.Logger) *LibraryRepository {
	return &LibraryRepository{codec{store: store, logger: logger}}
}

// SaveLiked persists the insertion-ordered liked set.
func (r *LibraryRepository) SaveLiked(tracks []domain.Track) error {
	return r.setJSON(keyLikedTracks, tracks)
}

// LoadLiked retrieves the liked set, or an empty slice.
func (r *LibraryRepository) LoadLiked() ([]domain.Track, error) {
	var tracks []domain.Track
	ok, err := r.getJSON(keyLikedTracks, &tracks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Track{}, nil
	}
	return tracks, nil
}

// SaveRecentlyPlayed persists the newest-first history.
func (r *LibraryRepository) SaveRecentlyPlayed(tracks []domain.Track) error {
	return r.setJSON(keyRecentlyPlayed, tracks)
}

// LoadRecentlyPlayed retrieves the history, or an empty slice.
func (r *LibraryRepository) LoadRecentlyPlayed() ([]domain.Track, error) {
	var tracks []domain.Track
	ok, err := r.getJSON(keyRecentlyPlayed, &tracks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Track{}, nil
	}
	return tracks, nil
}

// Clear removes both lists.
func (r *LibraryRepository) Clear() error {
	if err := r.delete(keyLikedTracks); err != nil {
		return err
	}
	return r.delete(keyRecentlyPlayed)
}

// Verify interface implementation
var _ ports.LibraryRepository = (*LibraryRepository)(nil)
