package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrungvu/musicstream/internal/adapter/audio/mock"
	"github.com/hoangtrungvu/musicstream/internal/adapter/eventbus"
	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/logger"
)

func newTestPlayer(t *testing.T) (*PlayerService, *mock.Output, *eventbus.SyncEventBus) {
	t.Helper()
	log := logger.NewTestLogger()
	bus := eventbus.NewSyncEventBus(log)
	output := mock.NewOutput(log, bus)
	player := NewPlayerService(log, output, bus)
	t.Cleanup(func() {
		require.NoError(t, player.Close())
	})
	return player, output, bus
}

func testTrack(id string) domain.Track {
	return domain.Track{
		ID:       id,
		Title:    "Track " + id,
		Artist:   "Test Artist",
		AudioRef: "/audio/" + id + ".mp3",
	}
}

func queueIDs(tracks []domain.Track) []string {
	ids := make([]string, len(tracks))
	for i, track := range tracks {
		ids[i] = track.ID
	}
	return ids
}

func TestPlayerService_PlayTrack(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	track := testTrack("1")
	player.PlayTrack(track)

	state := player.State()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, track.ID, state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.Equal(t, 0, state.Queue.CurrentIndex)
	assert.Equal(t, []string{"1"}, queueIDs(state.Queue.Songs))
	assert.Equal(t, []string{"1"}, queueIDs(state.Queue.OriginalOrder))

	assert.True(t, output.IsPlaying())
	assert.Equal(t, track.AudioRef, output.LoadedRef())
}

func TestPlayerService_PlayTrack_AlreadyQueued(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	first := testTrack("1")
	second := testTrack("2")
	player.PlayTrack(first)
	player.Enqueue(second)

	// Playing a queued track must not duplicate it.
	player.PlayTrack(second)

	state := player.State()
	assert.Equal(t, []string{"1", "2"}, queueIDs(state.Queue.Songs))
	assert.Equal(t, 1, state.Queue.CurrentIndex)
	assert.Equal(t, second.ID, state.CurrentTrack.ID)
}

func TestPlayerService_PlayTrack_PublishesTrackStarted(t *testing.T) {
	player, _, bus := newTestPlayer(t)

	var started []domain.TrackStartedEvent
	bus.Subscribe(domain.EventTrackStarted, func(e domain.Event) {
		started = append(started, e.(domain.TrackStartedEvent))
	})

	track := testTrack("1")
	player.PlayTrack(track)

	require.Len(t, started, 1)
	assert.Equal(t, track.ID, started[0].Track.ID)
	assert.Equal(t, 0, started[0].Index)
}

func TestPlayerService_TogglePlayPause(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	// No track loaded: toggling is a no-op.
	player.TogglePlayPause()
	assert.False(t, player.State().IsPlaying)

	player.PlayTrack(testTrack("1"))
	require.True(t, player.State().IsPlaying)

	player.TogglePlayPause()
	assert.False(t, player.State().IsPlaying)
	assert.False(t, output.IsPlaying())

	player.TogglePlayPause()
	assert.True(t, player.State().IsPlaying)
	assert.True(t, output.IsPlaying())
}

func TestPlayerService_NextAndPrevious(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))
	player.Enqueue(testTrack("3"))

	player.Next()
	assert.Equal(t, "2", player.State().CurrentTrack.ID)

	player.Next()
	assert.Equal(t, "3", player.State().CurrentTrack.ID)

	// End of queue without repeat-all: stays on the last track.
	player.Next()
	assert.Equal(t, "3", player.State().CurrentTrack.ID)

	player.Previous()
	assert.Equal(t, "2", player.State().CurrentTrack.ID)

	player.Previous()
	assert.Equal(t, "1", player.State().CurrentTrack.ID)

	// Start of queue without repeat-all: stays on the first track.
	player.Previous()
	assert.Equal(t, "1", player.State().CurrentTrack.ID)
}

func TestPlayerService_RepeatAll_Wraps(t *testing.T) {
	player, _, _ := newTestPlayer(t)
	player.SetRepeatMode(domain.RepeatAll)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))

	player.Previous()
	assert.Equal(t, "2", player.State().CurrentTrack.ID)

	player.Next()
	assert.Equal(t, "1", player.State().CurrentTrack.ID)
}

func TestPlayerService_AutoAdvanceOnTrackEnd(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))

	output.FinishTrack()

	state := player.State()
	assert.Equal(t, "2", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.True(t, output.IsPlaying())
}

func TestPlayerService_EndOfQueue_StopsLoaded(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	track := testTrack("1")
	player.PlayTrack(track)

	output.FinishTrack()

	state := player.State()
	require.NotNil(t, state.CurrentTrack)
	assert.Equal(t, track.ID, state.CurrentTrack.ID)
	assert.False(t, state.IsPlaying)
	assert.Equal(t, state.Duration, state.CurrentTime)
}

func TestPlayerService_RepeatOne_RestartsOnTrackEnd(t *testing.T) {
	player, output, _ := newTestPlayer(t)
	player.SetRepeatMode(domain.RepeatOne)

	track := testTrack("1")
	player.PlayTrack(track)
	player.Enqueue(testTrack("2"))

	output.FinishTrack()

	state := player.State()
	assert.Equal(t, track.ID, state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)
	assert.True(t, output.IsPlaying())

	pos, err := output.Position()
	require.NoError(t, err)
	assert.Zero(t, pos)
}

func TestPlayerService_RepeatAll_WrapsOnTrackEnd(t *testing.T) {
	player, output, _ := newTestPlayer(t)
	player.SetRepeatMode(domain.RepeatAll)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))

	output.FinishTrack()
	assert.Equal(t, "2", player.State().CurrentTrack.ID)

	output.FinishTrack()
	assert.Equal(t, "1", player.State().CurrentTrack.ID)
	assert.True(t, player.State().IsPlaying)
}

func TestPlayerService_ToggleShuffle(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	for i := 2; i <= 8; i++ {
		player.Enqueue(testTrack(string(rune('0' + i))))
	}
	original := queueIDs(player.State().Queue.Songs)

	player.ToggleShuffle()
	state := player.State()
	assert.True(t, state.IsShuffled)
	assert.ElementsMatch(t, original, queueIDs(state.Queue.Songs))
	// The index follows the current track into its shuffled position.
	assert.Equal(t, state.CurrentTrack.ID, state.Queue.Songs[state.Queue.CurrentIndex].ID)
	assert.Equal(t, original, queueIDs(state.Queue.OriginalOrder))

	player.ToggleShuffle()
	state = player.State()
	assert.False(t, state.IsShuffled)
	assert.Equal(t, original, queueIDs(state.Queue.Songs))
	assert.Equal(t, state.CurrentTrack.ID, state.Queue.Songs[state.Queue.CurrentIndex].ID)
}

func TestPlayerService_Enqueue_Shuffled_KeepsCurrent(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))
	player.ToggleShuffle()

	player.Enqueue(testTrack("3"))

	state := player.State()
	assert.Len(t, state.Queue.Songs, 3)
	assert.Equal(t, []string{"1", "2", "3"}, queueIDs(state.Queue.OriginalOrder))
	assert.Equal(t, state.CurrentTrack.ID, state.Queue.Songs[state.Queue.CurrentIndex].ID)
}

func TestPlayerService_Dequeue(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))
	player.Enqueue(testTrack("3"))
	player.Next() // current is "2" at index 1

	// Removing a track before the current one shifts the index down.
	player.Dequeue("1")
	state := player.State()
	assert.Equal(t, []string{"2", "3"}, queueIDs(state.Queue.Songs))
	assert.Equal(t, []string{"2", "3"}, queueIDs(state.Queue.OriginalOrder))
	assert.Equal(t, 0, state.Queue.CurrentIndex)
	assert.Equal(t, "2", state.CurrentTrack.ID)

	// Removing an absent track is a no-op.
	player.Dequeue("nope")
	assert.Len(t, player.State().Queue.Songs, 2)

	// The current track keeps playing when removed from the queue.
	player.Dequeue("2")
	state = player.State()
	assert.Equal(t, []string{"3"}, queueIDs(state.Queue.Songs))
	assert.Equal(t, "2", state.CurrentTrack.ID)
	assert.True(t, state.IsPlaying)

	player.Dequeue("3")
	state = player.State()
	assert.Empty(t, state.Queue.Songs)
	assert.Equal(t, -1, state.Queue.CurrentIndex)
}

func TestPlayerService_ClearQueue(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	player.Enqueue(testTrack("2"))

	player.ClearQueue()

	state := player.State()
	assert.Nil(t, state.CurrentTrack)
	assert.False(t, state.IsPlaying)
	assert.Empty(t, state.Queue.Songs)
	assert.Empty(t, state.Queue.OriginalOrder)
	assert.Equal(t, -1, state.Queue.CurrentIndex)
	assert.False(t, output.IsPlaying())
}

func TestPlayerService_Volume(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	require.NoError(t, player.SetVolume(0.8))
	assert.InDelta(t, 0.8, player.State().Volume, 0.001)

	assert.ErrorIs(t, player.SetVolume(1.5), domain.ErrInvalidVolume)
	assert.ErrorIs(t, player.SetVolume(-0.1), domain.ErrInvalidVolume)

	player.ToggleMute()
	state := player.State()
	assert.True(t, state.IsMuted)
	assert.InDelta(t, 0.8, state.Volume, 0.001) // stored volume survives mute
	outVol, err := output.Volume()
	require.NoError(t, err)
	assert.Zero(t, outVol)

	// An explicit volume change unmutes.
	require.NoError(t, player.SetVolume(0.3))
	state = player.State()
	assert.False(t, state.IsMuted)
	assert.InDelta(t, 0.3, state.Volume, 0.001)
}

func TestPlayerService_Seek(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	// No track loaded: seeking is a no-op.
	player.Seek(10)
	assert.Zero(t, player.State().CurrentTime)

	player.PlayTrack(testTrack("1"))
	player.Seek(42.5)

	assert.InDelta(t, 42.5, player.State().CurrentTime, 0.001)
	pos, err := output.Position()
	require.NoError(t, err)
	assert.InDelta(t, 42.5, pos, 0.001)
}

func TestPlayerService_CycleRepeatMode(t *testing.T) {
	player, _, _ := newTestPlayer(t)

	assert.Equal(t, domain.RepeatAll, player.CycleRepeatMode())
	assert.Equal(t, domain.RepeatOne, player.CycleRepeatMode())
	assert.Equal(t, domain.RepeatNone, player.CycleRepeatMode())
}

func TestPlayerService_PositionEventsUpdateState(t *testing.T) {
	player, output, _ := newTestPlayer(t)

	player.PlayTrack(testTrack("1"))
	output.AdvancePosition(30)

	state := player.State()
	assert.InDelta(t, 30, state.CurrentTime, 0.001)
	assert.InDelta(t, mock.DefaultDuration, state.Duration, 0.001)
}
