package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// Notifier raises user-facing confirmation messages. NotificationService
// implements it; a nil notifier disables confirmations.
type Notifier interface {
	Show(message string, kind domain.NotificationKind) domain.Notification
}

// LibraryService maintains the liked-tracks set and the recently-played
// history. It records plays by listening for track-started events from
// the player, so history reflects what actually started playing rather
// than what was merely queued. Recording honours the save-history
// setting, which the service tracks via settings events.
type LibraryService struct {
	logger   *slog.Logger
	repo     ports.LibraryRepository
	bus      ports.EventBus
	notifier Notifier

	mu             sync.RWMutex
	liked          []domain.Track
	recentlyPlayed []domain.Track
	saveHistory    bool

	subIDs []domain.SubscriptionID
}

// NewLibraryService creates the library service and subscribes it to
// track-started and settings events.
func NewLibraryService(logger *slog.Logger, repo ports.LibraryRepository, bus ports.EventBus) *LibraryService {
	s := &LibraryService{
		logger:      logger,
		repo:        repo,
		bus:         bus,
		saveHistory: true,
	}
	s.subIDs = append(s.subIDs,
		bus.Subscribe(domain.EventTrackStarted, s.handleTrackStarted),
		bus.Subscribe(domain.EventSettingsUpdated, s.handleSettingsUpdated),
	)
	return s
}

// SetNotifier wires the confirmation surface for like/unlike. Called once
// during application wiring; a nil notifier leaves confirmations off.
func (s *LibraryService) SetNotifier(n Notifier) {
	s.mu.Lock()
	s.notifier = n
	s.mu.Unlock()
}

// Restore loads the persisted liked set and history into memory. Called
// once at startup before any playback begins.
func (s *LibraryService) Restore() error {
	liked, err := s.repo.LoadLiked()
	if err != nil {
		return err
	}
	recent, err := s.repo.LoadRecentlyPlayed()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.liked = liked
	s.recentlyPlayed = recent
	s.mu.Unlock()

	s.logger.Debug("library restored", "liked", len(liked), "recentlyPlayed", len(recent))
	return nil
}

// Like adds a track to the liked set. Liking an already-liked track is
// a no-op so repeated calls cannot create duplicates.
func (s *LibraryService) Like(track domain.Track) error {
	s.mu.Lock()
	if indexOfTrack(s.liked, track.ID) >= 0 {
		s.mu.Unlock()
		return nil
	}
	s.liked = append(s.liked, track)
	liked := append([]domain.Track(nil), s.liked...)
	notifier := s.notifier
	s.mu.Unlock()

	if err := s.repo.SaveLiked(liked); err != nil {
		return err
	}
	s.publishUpdated()
	if notifier != nil {
		notifier.Show(fmt.Sprintf("Added %q to your liked songs", track.Title), domain.NotificationSuccess)
	}
	return nil
}

// Unlike removes a track from the liked set. Removing an absent track
// is a no-op.
func (s *LibraryService) Unlike(trackID string) error {
	s.mu.Lock()
	idx := indexOfTrack(s.liked, trackID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.liked[idx]
	s.liked = append(s.liked[:idx], s.liked[idx+1:]...)
	liked := append([]domain.Track(nil), s.liked...)
	notifier := s.notifier
	s.mu.Unlock()

	if err := s.repo.SaveLiked(liked); err != nil {
		return err
	}
	s.publishUpdated()
	if notifier != nil {
		notifier.Show(fmt.Sprintf("Removed %q from your liked songs", removed.Title), domain.NotificationInfo)
	}
	return nil
}

// ToggleLike likes the track if it is not liked and unlikes it
// otherwise, returning the resulting liked status.
func (s *LibraryService) ToggleLike(track domain.Track) (bool, error) {
	if s.IsLiked(track.ID) {
		return false, s.Unlike(track.ID)
	}
	return true, s.Like(track)
}

// IsLiked reports whether the track with the given ID is liked.
func (s *LibraryService) IsLiked(trackID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOfTrack(s.liked, trackID) >= 0
}

// Liked returns a copy of the liked set in insertion order.
func (s *LibraryService) Liked() []domain.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Track(nil), s.liked...)
}

// RecentlyPlayed returns a copy of the history, newest first.
func (s *LibraryService) RecentlyPlayed() []domain.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Track(nil), s.recentlyPlayed...)
}

// RecordPlayed moves the track to the front of the history, removing
// any earlier occurrence and trimming the list to its cap. Does nothing
// when history saving is disabled in the settings.
func (s *LibraryService) RecordPlayed(track domain.Track) error {
	s.mu.Lock()
	if !s.saveHistory {
		s.mu.Unlock()
		return nil
	}
	s.recentlyPlayed = lo.Reject(s.recentlyPlayed, func(t domain.Track, _ int) bool {
		return t.ID == track.ID
	})
	s.recentlyPlayed = append([]domain.Track{track}, s.recentlyPlayed...)
	if len(s.recentlyPlayed) > domain.RecentlyPlayedLimit {
		s.recentlyPlayed = s.recentlyPlayed[:domain.RecentlyPlayedLimit]
	}
	recent := append([]domain.Track(nil), s.recentlyPlayed...)
	s.mu.Unlock()

	if err := s.repo.SaveRecentlyPlayed(recent); err != nil {
		return err
	}
	s.publishUpdated()
	return nil
}

// ClearHistory empties the recently-played list while leaving the liked
// set alone.
func (s *LibraryService) ClearHistory() error {
	s.mu.Lock()
	s.recentlyPlayed = nil
	s.mu.Unlock()

	if err := s.repo.SaveRecentlyPlayed(nil); err != nil {
		return err
	}
	s.publishUpdated()
	return nil
}

// Close unsubscribes the service from the bus.
func (s *LibraryService) Close() error {
	for _, id := range s.subIDs {
		s.bus.Unsubscribe(id)
	}
	s.subIDs = nil
	return nil
}

func (s *LibraryService) publishUpdated() {
	s.mu.RLock()
	liked := append([]domain.Track(nil), s.liked...)
	recent := append([]domain.Track(nil), s.recentlyPlayed...)
	s.mu.RUnlock()
	s.bus.Publish(domain.NewLibraryUpdatedEvent(liked, recent))
}

func (s *LibraryService) handleTrackStarted(event domain.Event) {
	started, ok := event.(domain.TrackStartedEvent)
	if !ok {
		return
	}
	if err := s.RecordPlayed(started.Track); err != nil {
		s.logger.Warn("failed to record play", "trackID", started.Track.ID, "error", err)
	}
}

func (s *LibraryService) handleSettingsUpdated(event domain.Event) {
	updated, ok := event.(domain.SettingsUpdatedEvent)
	if !ok {
		return
	}
	s.mu.Lock()
	s.saveHistory = updated.Settings.SaveHistory
	s.mu.Unlock()
}
