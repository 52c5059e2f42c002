package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangtrungvu/musicstream/internal/config"
	"github.com/hoangtrungvu/musicstream/internal/logger"
	"github.com/hoangtrungvu/musicstream/internal/service"
)

func newTestApp(t *testing.T, cfg config.Config) *Application {
	t.Helper()
	application, err := New(cfg, logger.NewTestLogger())
	require.NoError(t, err)
	return application
}

func TestNew_WiresEverything(t *testing.T) {
	application := newTestApp(t, config.Default())
	defer application.Shutdown()

	assert.NotNil(t, application.Player)
	assert.NotNil(t, application.Library)
	assert.NotNil(t, application.Auth)
	assert.NotNil(t, application.Settings)
	assert.NotNil(t, application.Notifications)
	assert.Equal(t, 11, application.Catalog().Len())

	// The configured default volume is applied.
	assert.InDelta(t, 0.5, application.Player.State().Volume, 0.001)
}

func TestApplication_PlaybackRecordsHistory(t *testing.T) {
	application := newTestApp(t, config.Default())
	defer application.Shutdown()

	track, err := application.Catalog().FindByID("song1")
	require.NoError(t, err)

	application.Player.PlayTrack(track)

	recent := application.Library.RecentlyPlayed()
	require.Len(t, recent, 1)
	assert.Equal(t, "song1", recent[0].ID)
}

func TestApplication_StatePersistsAcrossRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "state.db")

	first := newTestApp(t, cfg)

	_, err := first.Auth.Register(service.RegisterRequest{
		Email:           "minh@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FirstName:       "Minh",
		LastName:        "Nguyen",
	})
	require.NoError(t, err)

	track, err := first.Catalog().FindByID("song2")
	require.NoError(t, err)
	require.NoError(t, first.Library.Like(track))
	require.NoError(t, first.Player.SetVolume(0.7))
	first.Shutdown()

	second := newTestApp(t, cfg)
	defer second.Shutdown()

	user, err := second.Auth.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "minh@example.com", user.Email)

	liked := second.Library.Liked()
	require.Len(t, liked, 1)
	assert.Equal(t, "song2", liked[0].ID)

	assert.InDelta(t, 0.7, second.Player.State().Volume, 0.001)
}

func TestApplication_ImportDirExtendsCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.Library.ImportDir = t.TempDir()

	application := newTestApp(t, cfg)
	defer application.Shutdown()

	// An empty import dir adds nothing but does not fail.
	assert.Equal(t, 11, application.Catalog().Len())
}

func TestVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, Version, info.Version)
	assert.Contains(t, info.FullString(), "musicstream")
}
