package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrungvu/musicstream/internal/adapter/eventbus"
	"github.com/hoangtrungvu/musicstream/internal/adapter/repository"
	"github.com/hoangtrungvu/musicstream/internal/adapter/storage/memory"
	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/logger"
)

func newTestLibrary(t *testing.T) (*LibraryService, *eventbus.SyncEventBus) {
	t.Helper()
	log := logger.NewTestLogger()
	bus := eventbus.NewSyncEventBus(log)
	repo := repository.NewLibraryRepository(memory.NewStore(), log)
	library := NewLibraryService(log, repo, bus)
	t.Cleanup(func() {
		require.NoError(t, library.Close())
	})
	return library, bus
}

func TestLibraryService_LikeUnlike(t *testing.T) {
	library, _ := newTestLibrary(t)

	track := testTrack("1")
	require.NoError(t, library.Like(track))
	assert.True(t, library.IsLiked(track.ID))

	// Liking twice must not duplicate.
	require.NoError(t, library.Like(track))
	assert.Len(t, library.Liked(), 1)

	require.NoError(t, library.Unlike(track.ID))
	assert.False(t, library.IsLiked(track.ID))

	// Unliking an absent track is a no-op.
	require.NoError(t, library.Unlike(track.ID))
	assert.Empty(t, library.Liked())
}

func TestLibraryService_ToggleLike(t *testing.T) {
	library, _ := newTestLibrary(t)

	track := testTrack("1")
	liked, err := library.ToggleLike(track)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = library.ToggleLike(track)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Empty(t, library.Liked())
}

type recordingNotifier struct {
	messages []string
	kinds    []domain.NotificationKind
}

func (n *recordingNotifier) Show(message string, kind domain.NotificationKind) domain.Notification {
	n.messages = append(n.messages, message)
	n.kinds = append(n.kinds, kind)
	return domain.Notification{Message: message, Kind: kind}
}

func TestLibraryService_LikeUnlike_Confirmations(t *testing.T) {
	library, _ := newTestLibrary(t)
	notifier := &recordingNotifier{}
	library.SetNotifier(notifier)

	track := testTrack("1")
	require.NoError(t, library.Like(track))
	// A repeated like is silent.
	require.NoError(t, library.Like(track))
	require.NoError(t, library.Unlike(track.ID))
	// So is unliking an absent track.
	require.NoError(t, library.Unlike(track.ID))

	require.Len(t, notifier.messages, 2)
	assert.Contains(t, notifier.messages[0], track.Title)
	assert.Contains(t, notifier.messages[1], track.Title)
	assert.Equal(t, []domain.NotificationKind{domain.NotificationSuccess, domain.NotificationInfo}, notifier.kinds)
}

func TestLibraryService_RecordPlayed_DedupAndOrder(t *testing.T) {
	library, _ := newTestLibrary(t)

	require.NoError(t, library.RecordPlayed(testTrack("1")))
	require.NoError(t, library.RecordPlayed(testTrack("2")))
	require.NoError(t, library.RecordPlayed(testTrack("1")))

	recent := library.RecentlyPlayed()
	assert.Equal(t, []string{"1", "2"}, queueIDs(recent))
}

func TestLibraryService_RecordPlayed_Cap(t *testing.T) {
	library, _ := newTestLibrary(t)

	for i := 0; i < domain.RecentlyPlayedLimit+10; i++ {
		require.NoError(t, library.RecordPlayed(testTrack(fmt.Sprintf("t%d", i))))
	}

	recent := library.RecentlyPlayed()
	assert.Len(t, recent, domain.RecentlyPlayedLimit)
	// Newest first, oldest entries dropped.
	assert.Equal(t, fmt.Sprintf("t%d", domain.RecentlyPlayedLimit+9), recent[0].ID)
}

func TestLibraryService_RecordsOnTrackStarted(t *testing.T) {
	library, bus := newTestLibrary(t)

	track := testTrack("1")
	bus.Publish(domain.NewTrackStartedEvent(track, 0))

	recent := library.RecentlyPlayed()
	require.Len(t, recent, 1)
	assert.Equal(t, track.ID, recent[0].ID)
}

func TestLibraryService_SaveHistoryOff_SuppressesRecording(t *testing.T) {
	library, bus := newTestLibrary(t)

	settings := domain.DefaultSettings()
	settings.SaveHistory = false
	bus.Publish(domain.NewSettingsUpdatedEvent(settings))

	require.NoError(t, library.RecordPlayed(testTrack("1")))
	assert.Empty(t, library.RecentlyPlayed())

	// Re-enabling resumes recording.
	settings.SaveHistory = true
	bus.Publish(domain.NewSettingsUpdatedEvent(settings))

	require.NoError(t, library.RecordPlayed(testTrack("1")))
	assert.Len(t, library.RecentlyPlayed(), 1)
}

func TestLibraryService_RestoreRoundTrip(t *testing.T) {
	log := logger.NewTestLogger()
	bus := eventbus.NewSyncEventBus(log)
	store := memory.NewStore()
	repo := repository.NewLibraryRepository(store, log)

	first := NewLibraryService(log, repo, bus)
	require.NoError(t, first.Like(testTrack("1")))
	require.NoError(t, first.RecordPlayed(testTrack("2")))
	require.NoError(t, first.Close())

	second := NewLibraryService(log, repo, bus)
	defer func() { require.NoError(t, second.Close()) }()
	require.NoError(t, second.Restore())

	assert.Equal(t, []string{"1"}, queueIDs(second.Liked()))
	assert.Equal(t, []string{"2"}, queueIDs(second.RecentlyPlayed()))
}

func TestLibraryService_ClearHistory(t *testing.T) {
	library, _ := newTestLibrary(t)

	require.NoError(t, library.Like(testTrack("1")))
	require.NoError(t, library.RecordPlayed(testTrack("2")))

	require.NoError(t, library.ClearHistory())
	assert.Empty(t, library.RecentlyPlayed())
	assert.Len(t, library.Liked(), 1)
}
