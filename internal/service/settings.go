package service

import (
	"log/slog"
	"sync"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// SettingsService owns the user preference record. Updates are partial:
// the patch is merged over the in-memory record and the whole merged
// record is persisted, so readers never see a half-written state. Theme
// and volume are additionally mirrored to dedicated keys for callers
// that want them without decoding the full record.
type SettingsService struct {
	logger *slog.Logger
	repo   ports.SettingsRepository
	bus    ports.EventBus

	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsService creates the settings service with the default
// preference record.
func NewSettingsService(logger *slog.Logger, repo ports.SettingsRepository, bus ports.EventBus) *SettingsService {
	return &SettingsService{
		logger:   logger,
		repo:     repo,
		bus:      bus,
		settings: domain.DefaultSettings(),
	}
}

// Restore loads the persisted record, merged over the defaults so that
// records written by older versions pick up new fields.
func (s *SettingsService) Restore() error {
	loaded, err := s.repo.LoadSettings()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = loaded
	settings := s.settings
	s.mu.Unlock()

	s.logger.Debug("settings restored", "theme", settings.Theme)
	s.bus.Publish(domain.NewSettingsUpdatedEvent(settings))
	return nil
}

// Update merges the patch into the current record, persists the result
// and publishes the new record on the bus.
func (s *SettingsService) Update(patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	s.settings = s.settings.Merge(patch)
	merged := s.settings
	s.mu.Unlock()

	if err := s.repo.SaveSettings(merged); err != nil {
		return domain.Settings{}, err
	}
	if patch.Theme != nil {
		if err := s.repo.SaveTheme(merged.Theme); err != nil {
			s.logger.Warn("failed to mirror theme", "error", err)
		}
	}

	s.bus.Publish(domain.NewSettingsUpdatedEvent(merged))
	return merged, nil
}

// Settings returns the current preference record.
func (s *SettingsService) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SaveVolume mirrors the player volume so the next session can restore
// it without replaying events.
func (s *SettingsService) SaveVolume(volume float64) error {
	return s.repo.SaveVolume(volume)
}

// RestoreVolume returns the mirrored player volume. The boolean is
// false when no volume was ever saved.
func (s *SettingsService) RestoreVolume() (float64, bool, error) {
	return s.repo.LoadVolume()
}

// Reset discards the stored record and returns to defaults.
func (s *SettingsService) Reset() (domain.Settings, error) {
	if err := s.repo.Clear(); err != nil {
		return domain.Settings{}, err
	}

	s.mu.Lock()
	s.settings = domain.DefaultSettings()
	settings := s.settings
	s.mu.Unlock()

	s.bus.Publish(domain.NewSettingsUpdatedEvent(settings))
	return settings, nil
}
