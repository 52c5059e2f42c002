package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrungvu/musicstream/internal/adapter/eventbus"
	"github.com/hoangtrungvu/musicstream/internal/adapter/repository"
	"github.com/hoangtrungvu/musicstream/internal/adapter/storage/memory"
	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/logger"
)

func newTestSettings(t *testing.T) (*SettingsService, *repository.SettingsRepository, *eventbus.SyncEventBus) {
	t.Helper()
	log := logger.NewTestLogger()
	bus := eventbus.NewSyncEventBus(log)
	repo := repository.NewSettingsRepository(memory.NewStore(), log)
	return NewSettingsService(log, repo, bus), repo, bus
}

func TestSettingsService_Defaults(t *testing.T) {
	settings, _, _ := newTestSettings(t)

	current := settings.Settings()
	assert.Equal(t, "dark", current.Theme)
	assert.Equal(t, "medium", current.FontSize)
	assert.Equal(t, 50, current.DefaultVolume)
	assert.Equal(t, "high", current.AudioQuality)
	assert.True(t, current.SaveHistory)
	assert.False(t, current.DataSharing)
	assert.True(t, current.EmailNotifications)
}

func TestSettingsService_Update_MergesPartialPatch(t *testing.T) {
	settings, _, bus := newTestSettings(t)

	var events []domain.SettingsUpdatedEvent
	bus.Subscribe(domain.EventSettingsUpdated, func(e domain.Event) {
		events = append(events, e.(domain.SettingsUpdatedEvent))
	})

	theme := "light"
	volume := 80
	updated, err := settings.Update(domain.SettingsPatch{Theme: &theme, DefaultVolume: &volume})
	require.NoError(t, err)

	assert.Equal(t, "light", updated.Theme)
	assert.Equal(t, 80, updated.DefaultVolume)
	// Untouched fields keep their values.
	assert.Equal(t, "medium", updated.FontSize)
	assert.True(t, updated.SaveHistory)

	require.Len(t, events, 1)
	assert.Equal(t, "light", events[0].Settings.Theme)
}

func TestSettingsService_Update_PersistsWholeRecord(t *testing.T) {
	settings, repo, _ := newTestSettings(t)

	theme := "light"
	_, err := settings.Update(domain.SettingsPatch{Theme: &theme})
	require.NoError(t, err)

	stored, err := repo.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", stored.Theme)
	assert.Equal(t, 50, stored.DefaultVolume)

	// The theme mirror key is written alongside the record.
	mirrored, err := repo.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "light", mirrored)
}

func TestSettingsService_RestoreRoundTrip(t *testing.T) {
	log := logger.NewTestLogger()
	bus := eventbus.NewSyncEventBus(log)
	repo := repository.NewSettingsRepository(memory.NewStore(), log)

	first := NewSettingsService(log, repo, bus)
	fontSize := "large"
	_, err := first.Update(domain.SettingsPatch{FontSize: &fontSize})
	require.NoError(t, err)

	second := NewSettingsService(log, repo, bus)
	require.NoError(t, second.Restore())
	assert.Equal(t, "large", second.Settings().FontSize)
}

func TestSettingsService_VolumeMirror(t *testing.T) {
	settings, _, _ := newTestSettings(t)

	_, ok, err := settings.RestoreVolume()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, settings.SaveVolume(0.65))

	volume, ok, err := settings.RestoreVolume()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.65, volume, 0.001)
}

func TestSettingsService_Reset(t *testing.T) {
	settings, _, _ := newTestSettings(t)

	theme := "light"
	_, err := settings.Update(domain.SettingsPatch{Theme: &theme})
	require.NoError(t, err)

	reset, err := settings.Reset()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), reset)
	assert.Equal(t, domain.DefaultSettings(), settings.Settings())
}
