// Package catalog is the source of truth for track metadata.
// It holds a static in-memory list of track records and exposes lookup,
// substring search, genre filtering and uniform random sampling.
package catalog

import (
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"github.com/hoangtrungvu/musicstream/internal/domain"
)

// Catalog is an immutable collection of tracks.
type Catalog struct {
	tracks []domain.Track
}

// New creates a catalog over the given tracks. The slice is copied; the
// catalog never mutates it.
func New(tracks []domain.Track) *Catalog {
	copied := make([]domain.Track, len(tracks))
	copy(copied, tracks)
	return &Catalog{tracks: copied}
}

// Default returns a catalog over the built-in track set.
func Default() *Catalog {
	return New(builtinTracks)
}

// All returns a copy of every track in the catalog.
func (c *Catalog) All() []domain.Track {
	tracks := make([]domain.Track, len(c.tracks))
	copy(tracks, c.tracks)
	return tracks
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// FindByID returns the track with the given id.
func (c *Catalog) FindByID(id string) (domain.Track, error) {
	track, ok := lo.Find(c.tracks, func(t domain.Track) bool {
		return t.ID == id
	})
	if !ok {
		return domain.Track{}, domain.ErrTrackNotFound
	}
	return track, nil
}

// Search returns every track whose title, artist or genre contains the query,
// case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.Track {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Track{}
	}

	return lo.Filter(c.tracks, func(t domain.Track, _ int) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q) ||
			strings.Contains(strings.ToLower(t.Genre), q)
	})
}

// ByGenre returns every track with exactly the given genre.
func (c *Catalog) ByGenre(genre string) []domain.Track {
	return lo.Filter(c.tracks, func(t domain.Track, _ int) bool {
		return t.Genre == genre
	})
}

// RandomSample returns n tracks sampled uniformly without replacement.
// When n exceeds the catalog size, every track is returned (in random order).
func (c *Catalog) RandomSample(n int) []domain.Track {
	if n <= 0 {
		return []domain.Track{}
	}

	shuffled := c.All()
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Genres returns the distinct genres in first-seen order, skipping tracks
// without one.
func (c *Catalog) Genres() []string {
	genres := lo.FilterMap(c.tracks, func(t domain.Track, _ int) (string, bool) {
		return t.Genre, t.Genre != ""
	})
	return lo.Uniq(genres)
}
