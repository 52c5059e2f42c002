// Package repository provides persistence over a KeyValueStore.
// Each repository wraps the JSON encode/decode for its slice of state and
// shields the services from storage failures: writes surface as StorageError
// (non-fatal, logged by callers), and corrupt JSON on read discards the key
// and falls back to the empty default.
package repository

import (
	"encoding/json"
	"log/slog"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// Storage keys. These mirror the browser client's local-storage keys so a
// profile written by one is legible to the other.
const (
	keySettings       = "musicStreamSettings"
	keyLikedTracks    = "musicStreamLikedSongs"
	keyRecentlyPlayed = "musicStreamRecentlyPlayed"
	keyUser           = "musicStreamUser"
	keyLoggedIn       = "musicStreamLoggedIn"
	keyRememberMe     = "musicStreamRememberMe"
	keyVolume         = "musicStreamVolume"
	keyTheme          = "musicStreamTheme"
	keyUserDirectory  = "musicStreamUsers"
)

// codec is the shared get/set helper embedded by the repositories.
type codec struct {
	store  ports.KeyValueStore
	logger *slog.Logger
}

// setJSON marshals v and stores it under key.
func (c codec) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return domain.NewStorageError("encode", key, err)
	}
	if err := c.store.Set(key, string(data)); err != nil {
		return domain.NewStorageError("set", key, err)
	}
	return nil
}

// getJSON loads key into dest. Returns false when the key is absent. A
// corrupt value is discarded and treated as absent.
func (c codec) getJSON(key string, dest any) (bool, error) {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		return false, domain.NewStorageError("get", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.Warn("discarding corrupt storage key",
			slog.String("key", key),
			slog.Any("error", err))
		if delErr := c.store.Delete(key); delErr != nil {
			c.logger.Warn("failed to delete corrupt key",
				slog.String("key", key),
				slog.Any("error", delErr))
		}
		return false, nil
	}
	return true, nil
}

// setString stores a raw string value.
func (c codec) setString(key, value string) error {
	if err := c.store.Set(key, value); err != nil {
		return domain.NewStorageError("set", key, err)
	}
	return nil
}

// getString loads a raw string value; false when absent.
func (c codec) getString(key string) (string, bool, error) {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		return "", false, domain.NewStorageError("get", key, err)
	}
	return raw, ok, nil
}

// delete removes a key.
func (c codec) delete(key string) error {
	if err := c.store.Delete(key); err != nil {
		return domain.NewStorageError("delete", key, err)
	}
	return nil
}
