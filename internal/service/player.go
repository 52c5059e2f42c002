package service

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// PlayerService owns the playback queue and drives the audio output.
// It keeps two parallel orderings of the queue: the active order the
// player walks through, and the insertion order used to restore the
// queue when shuffle is switched off. All mutation happens under mu;
// output calls and event publishing happen outside it so that handlers
// subscribed on the synchronous bus can re-enter the service safely.
type PlayerService struct {
	logger *slog.Logger
	output ports.AudioOutput
	bus    ports.EventBus

	mu            sync.RWMutex
	current       *domain.Track
	isPlaying     bool
	currentTime   float64
	duration      float64
	volume        float64
	isMuted       bool
	repeatMode    domain.RepeatMode
	songs         []domain.Track
	originalOrder []domain.Track
	currentIndex  int
	isShuffled    bool

	subIDs []domain.SubscriptionID
}

// NewPlayerService creates the playback engine and subscribes it to the
// output-level events on the bus.
func NewPlayerService(logger *slog.Logger, output ports.AudioOutput, bus ports.EventBus) *PlayerService {
	s := &PlayerService{
		logger:       logger,
		output:       output,
		bus:          bus,
		volume:       0.5,
		repeatMode:   domain.RepeatNone,
		currentIndex: -1,
	}
	s.subIDs = append(s.subIDs,
		bus.Subscribe(domain.EventPlaybackStarted, s.handlePlaybackStarted),
		bus.Subscribe(domain.EventPlaybackEnded, s.handlePlaybackEnded),
		bus.Subscribe(domain.EventMetadataLoaded, s.handleMetadataLoaded),
		bus.Subscribe(domain.EventPositionChanged, s.handlePositionChanged),
	)
	return s
}

// PlayTrack starts playback of the given track. If the track is not in
// the queue it is appended to the end of both orderings first. Output
// failures are logged and do not stop the engine state from advancing.
func (s *PlayerService) PlayTrack(track domain.Track) {
	s.mu.Lock()
	idx := indexOfTrack(s.songs, track.ID)
	appended := false
	if idx < 0 {
		s.songs = append(s.songs, track)
		s.originalOrder = append(s.originalOrder, track)
		idx = len(s.songs) - 1
		appended = true
	}
	s.startAtLocked(idx)
	s.mu.Unlock()

	if appended {
		s.publishQueueUpdated()
	}
	s.driveOutput(track)
	s.bus.Publish(domain.NewTrackChangedEvent(track, idx))
	s.bus.Publish(domain.NewPlayStateChangedEvent(true))
}

// TogglePlayPause flips between playing and paused. It is a no-op when
// no track has ever been loaded.
func (s *PlayerService) TogglePlayPause() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.isPlaying = !s.isPlaying
	playing := s.isPlaying
	s.mu.Unlock()

	var err error
	if playing {
		err = s.output.Play()
	} else {
		err = s.output.Pause()
	}
	if err != nil {
		s.logger.Warn("audio output toggle failed", "playing", playing, "error", err)
	}
	s.bus.Publish(domain.NewPlayStateChangedEvent(playing))
}

// Next advances to the following track in the active order. At the end
// of the queue it wraps to the first track when repeat is set to all,
// and does nothing otherwise.
func (s *PlayerService) Next() {
	s.mu.Lock()
	if len(s.songs) == 0 {
		s.mu.Unlock()
		return
	}
	next := s.currentIndex + 1
	if next >= len(s.songs) {
		if s.repeatMode != domain.RepeatAll {
			s.mu.Unlock()
			return
		}
		next = 0
	}
	s.startAtLocked(next)
	track := s.songs[next]
	s.mu.Unlock()

	s.driveOutput(track)
	s.bus.Publish(domain.NewTrackChangedEvent(track, next))
	s.bus.Publish(domain.NewPlayStateChangedEvent(true))
}

// Previous steps back to the preceding track. At the start of the queue
// it wraps to the last track when repeat is set to all, and does
// nothing otherwise.
func (s *PlayerService) Previous() {
	s.mu.Lock()
	if len(s.songs) == 0 {
		s.mu.Unlock()
		return
	}
	prev := s.currentIndex - 1
	if prev < 0 {
		if s.repeatMode != domain.RepeatAll {
			s.mu.Unlock()
			return
		}
		prev = len(s.songs) - 1
	}
	s.startAtLocked(prev)
	track := s.songs[prev]
	s.mu.Unlock()

	s.driveOutput(track)
	s.bus.Publish(domain.NewTrackChangedEvent(track, prev))
	s.bus.Publish(domain.NewPlayStateChangedEvent(true))
}

// Seek moves the playhead of the loaded track to the given position in
// seconds. It does nothing when no track is loaded.
func (s *PlayerService) Seek(seconds float64) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.currentTime = seconds
	s.mu.Unlock()

	if err := s.output.SetPosition(seconds); err != nil {
		s.logger.Warn("seek failed", "position", seconds, "error", err)
	}
}

// SetVolume stores the new volume and clears the mute flag, so that an
// explicit volume change is always audible.
func (s *PlayerService) SetVolume(volume float64) error {
	if volume < 0 || volume > 1 {
		return domain.ErrInvalidVolume
	}
	s.mu.Lock()
	s.volume = volume
	s.isMuted = false
	s.mu.Unlock()

	if err := s.output.SetVolume(volume); err != nil {
		s.logger.Warn("volume change failed", "volume", volume, "error", err)
	}
	s.bus.Publish(domain.NewVolumeChangedEvent(volume))
	return nil
}

// ToggleMute flips the mute flag. The stored volume is preserved so
// unmuting restores the previous level.
func (s *PlayerService) ToggleMute() {
	s.mu.Lock()
	s.isMuted = !s.isMuted
	muted := s.isMuted
	effective := s.volume
	if muted {
		effective = 0
	}
	s.mu.Unlock()

	if err := s.output.SetVolume(effective); err != nil {
		s.logger.Warn("mute toggle failed", "muted", muted, "error", err)
	}
	s.bus.Publish(domain.NewMuteToggledEvent(muted))
}

// ToggleShuffle switches between shuffled and sequential playback.
// Turning shuffle on permutes the active order and re-points the index
// at the current track; turning it off restores insertion order.
func (s *PlayerService) ToggleShuffle() {
	s.mu.Lock()
	s.isShuffled = !s.isShuffled
	if s.isShuffled {
		shuffled := make([]domain.Track, len(s.songs))
		copy(shuffled, s.songs)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s.songs = shuffled
	} else {
		restored := make([]domain.Track, len(s.originalOrder))
		copy(restored, s.originalOrder)
		s.songs = restored
	}
	if s.current != nil {
		idx := indexOfTrack(s.songs, s.current.ID)
		if idx < 0 {
			s.logger.Error("current track missing from queue after shuffle toggle", "trackID", s.current.ID)
			idx = 0
		}
		s.currentIndex = idx
	} else if len(s.songs) == 0 {
		s.currentIndex = -1
	}
	shuffledNow := s.isShuffled
	s.mu.Unlock()

	s.bus.Publish(domain.NewShuffleToggledEvent(shuffledNow))
	s.publishQueueUpdated()
}

// SetRepeatMode sets the repeat behaviour directly.
func (s *PlayerService) SetRepeatMode(mode domain.RepeatMode) {
	s.mu.Lock()
	s.repeatMode = mode
	s.mu.Unlock()
	s.bus.Publish(domain.NewRepeatChangedEvent(mode))
}

// CycleRepeatMode advances repeat through off, all, one and back to off.
func (s *PlayerService) CycleRepeatMode() domain.RepeatMode {
	s.mu.Lock()
	s.repeatMode = s.repeatMode.Next()
	mode := s.repeatMode
	s.mu.Unlock()
	s.bus.Publish(domain.NewRepeatChangedEvent(mode))
	return mode
}

// Enqueue appends a track to the queue. In shuffled mode the track goes
// to a random position in the active order so it does not always land
// at the end of the session.
func (s *PlayerService) Enqueue(track domain.Track) {
	s.mu.Lock()
	s.originalOrder = append(s.originalOrder, track)
	if s.isShuffled {
		pos := rand.IntN(len(s.songs) + 1)
		s.songs = append(s.songs, domain.Track{})
		copy(s.songs[pos+1:], s.songs[pos:])
		s.songs[pos] = track
		if s.currentIndex >= 0 && pos <= s.currentIndex {
			s.currentIndex++
		}
	} else {
		s.songs = append(s.songs, track)
	}
	s.mu.Unlock()

	s.publishQueueUpdated()
}

// Dequeue removes the track with the given ID from both orderings.
// Removing an absent track is a no-op. The current track keeps playing
// even when it is removed from the queue.
func (s *PlayerService) Dequeue(trackID string) {
	s.mu.Lock()
	idx := indexOfTrack(s.songs, trackID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.songs = append(s.songs[:idx], s.songs[idx+1:]...)
	if oi := indexOfTrack(s.originalOrder, trackID); oi >= 0 {
		s.originalOrder = append(s.originalOrder[:oi], s.originalOrder[oi+1:]...)
	}
	switch {
	case len(s.songs) == 0:
		s.currentIndex = -1
	case idx < s.currentIndex:
		s.currentIndex--
	case idx == s.currentIndex && s.currentIndex >= len(s.songs):
		s.currentIndex = len(s.songs) - 1
	}
	s.mu.Unlock()

	s.publishQueueUpdated()
}

// ClearQueue drops the whole queue and stops playback.
func (s *PlayerService) ClearQueue() {
	s.mu.Lock()
	s.songs = nil
	s.originalOrder = nil
	s.currentIndex = -1
	s.current = nil
	s.isPlaying = false
	s.isShuffled = false
	s.currentTime = 0
	s.duration = 0
	s.mu.Unlock()

	if err := s.output.Pause(); err != nil {
		s.logger.Warn("pause on queue clear failed", "error", err)
	}
	s.bus.Publish(domain.NewPlayStateChangedEvent(false))
	s.publishQueueUpdated()
}

// State returns a snapshot of the playback state with defensive copies
// of the queue orderings.
func (s *PlayerService) State() domain.PlaybackState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current *domain.Track
	if s.current != nil {
		c := *s.current
		current = &c
	}
	songs := make([]domain.Track, len(s.songs))
	copy(songs, s.songs)
	original := make([]domain.Track, len(s.originalOrder))
	copy(original, s.originalOrder)

	return domain.PlaybackState{
		CurrentTrack: current,
		IsPlaying:    s.isPlaying,
		CurrentTime:  s.currentTime,
		Duration:     s.duration,
		Volume:       s.volume,
		IsMuted:      s.isMuted,
		RepeatMode:   s.repeatMode,
		IsShuffled:   s.isShuffled,
		Queue: domain.Queue{
			Songs:         songs,
			OriginalOrder: original,
			CurrentIndex:  s.currentIndex,
			IsShuffled:    s.isShuffled,
		},
	}
}

// Close unsubscribes the engine from the bus and releases the output.
func (s *PlayerService) Close() error {
	for _, id := range s.subIDs {
		s.bus.Unsubscribe(id)
	}
	s.subIDs = nil
	return s.output.Close()
}

// startAtLocked points the engine at the track at idx and marks it
// playing. Callers hold mu and drive the output after unlocking.
func (s *PlayerService) startAtLocked(idx int) {
	track := s.songs[idx]
	s.current = &track
	s.currentIndex = idx
	s.currentTime = 0
	s.duration = 0
	s.isPlaying = true
}

// driveOutput loads and starts the track on the audio output at the
// effective volume. Must be called without holding mu: the output
// publishes events whose handlers re-enter the service.
func (s *PlayerService) driveOutput(track domain.Track) {
	s.mu.RLock()
	effective := s.volume
	if s.isMuted {
		effective = 0
	}
	s.mu.RUnlock()

	if err := s.output.Load(track.AudioRef); err != nil {
		s.logger.Warn("failed to load track", "trackID", track.ID, "audioRef", track.AudioRef, "error", err)
		return
	}
	if err := s.output.SetVolume(effective); err != nil {
		s.logger.Warn("failed to set output volume", "volume", effective, "error", err)
	}
	if err := s.output.Play(); err != nil {
		s.logger.Warn("failed to start playback", "trackID", track.ID, "error", err)
	}
}

func (s *PlayerService) publishQueueUpdated() {
	s.mu.RLock()
	queue := domain.Queue{
		Songs:         append([]domain.Track(nil), s.songs...),
		OriginalOrder: append([]domain.Track(nil), s.originalOrder...),
		CurrentIndex:  s.currentIndex,
		IsShuffled:    s.isShuffled,
	}
	s.mu.RUnlock()
	s.bus.Publish(domain.NewQueueUpdatedEvent(queue))
}

func (s *PlayerService) handlePlaybackStarted(event domain.Event) {
	started, ok := event.(domain.PlaybackStartedEvent)
	if !ok {
		return
	}
	s.mu.RLock()
	var track *domain.Track
	idx := -1
	if s.current != nil && s.current.AudioRef == started.AudioRef {
		c := *s.current
		track = &c
		idx = s.currentIndex
	}
	s.mu.RUnlock()

	if track != nil {
		s.bus.Publish(domain.NewTrackStartedEvent(*track, idx))
	}
}

func (s *PlayerService) handlePlaybackEnded(event domain.Event) {
	ended, ok := event.(domain.PlaybackEndedEvent)
	if !ok {
		return
	}
	s.mu.RLock()
	matches := s.current != nil && s.current.AudioRef == ended.AudioRef
	mode := s.repeatMode
	hasNext := s.currentIndex+1 < len(s.songs)
	s.mu.RUnlock()
	if !matches {
		return
	}

	switch {
	case mode == domain.RepeatOne:
		s.restartCurrent()
	case hasNext || mode == domain.RepeatAll:
		s.Next()
	default:
		s.mu.Lock()
		s.isPlaying = false
		s.currentTime = s.duration
		s.mu.Unlock()
		s.bus.Publish(domain.NewPlayStateChangedEvent(false))
	}
}

// restartCurrent replays the loaded track from the beginning, used for
// repeat-one when the output reports natural completion.
func (s *PlayerService) restartCurrent() {
	s.mu.Lock()
	s.currentTime = 0
	s.isPlaying = true
	s.mu.Unlock()

	if err := s.output.SetPosition(0); err != nil {
		s.logger.Warn("rewind for repeat failed", "error", err)
	}
	if err := s.output.Play(); err != nil {
		s.logger.Warn("restart for repeat failed", "error", err)
	}
}

func (s *PlayerService) handleMetadataLoaded(event domain.Event) {
	meta, ok := event.(domain.MetadataLoadedEvent)
	if !ok {
		return
	}
	s.mu.Lock()
	if s.current != nil && s.current.AudioRef == meta.AudioRef {
		s.duration = meta.Duration
	}
	s.mu.Unlock()
}

func (s *PlayerService) handlePositionChanged(event domain.Event) {
	pos, ok := event.(domain.PositionChangedEvent)
	if !ok {
		return
	}
	s.mu.Lock()
	if s.current != nil && s.current.AudioRef == pos.AudioRef {
		s.currentTime = pos.Position
		if pos.Duration > 0 {
			s.duration = pos.Duration
		}
	}
	s.mu.Unlock()
}

func indexOfTrack(tracks []domain.Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
