package repository

import (
	"log/slog"
	"strconv"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// SettingsRepository implements ports.SettingsRepository over a KeyValueStore.
type SettingsRepository struct {
	codec
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(store ports.KeyValueStore, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{codec{store: store, logger: logger}}
}

// SaveSettings persists the whole settings record.
func (r *SettingsRepository) SaveSettings(settings domain.Settings) error {
	return r.setJSON(keySettings, settings)
}

// LoadSettings retrieves the settings record, falling back to defaults.
func (r *SettingsRepository) LoadSettings() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	ok, err := r.getJSON(keySettings, &settings)
	if err != nil {
		return domain.DefaultSettings(), err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveVolume mirrors the player volume to its own key.
func (r *SettingsRepository) SaveVolume(volume float64) error {
	return r.setString(keyVolume, strconv.FormatFloat(volume, 'f', -1, 64))
}

// LoadVolume retrieves the mirrored volume; false when unset or unreadable.
func (r *SettingsRepository) LoadVolume() (float64, bool, error) {
	raw, ok, err := r.getString(keyVolume)
	if err != nil || !ok {
		return 0, false, err
	}

	volume, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		r.logger.Warn("discarding unreadable volume value",
			slog.String("value", raw),
			slog.Any("error", parseErr))
		_ = r.delete(keyVolume)
		return 0, false, nil
	}
	return volume, true, nil
}

// SaveTheme mirrors the theme to its own key.
func (r *SettingsRepository) SaveTheme(theme string) error {
	return r.setString(keyTheme, theme)
}

// LoadTheme retrieves the mirrored theme, or "".
func (r *SettingsRepository) LoadTheme() (string, error) {
	theme, _, err := r.getString(keyTheme)
	return theme, err
}

// Clear removes all settings keys.
func (r *SettingsRepository) Clear() error {
	for _, key := range []string{keySettings, keyVolume, keyTheme} {
		if err := r.delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Verify interface implementation
var _ ports.SettingsRepository = (*SettingsRepository)(nil)
