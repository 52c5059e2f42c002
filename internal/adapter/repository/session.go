package repository

import (
	"log/slog"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// SessionRepository implements ports.SessionRepository over a KeyValueStore.
// The user directory it persists stands in for a real identity service; it is
// local-storage-resident by design.
type SessionRepository struct {
	codec
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(store ports.KeyValueStore, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{codec{store: store, logger: logger}}
}

// SaveSession persists the user record (no credentials), the logged-in marker
// and the remember-me flag.
func (r *SessionRepository) SaveSession(user domain.User, rememberMe bool) error {
	if err := r.setJSON(keyUser, user); err != nil {
		return err
	}
	if err := r.setString(keyLoggedIn, "true"); err != nil {
		return err
	}
	if rememberMe {
		return r.setString(keyRememberMe, "true")
	}
	return r.delete(keyRememberMe)
}

// LoadSession retrieves the persisted session. Both the logged-in marker and
// the user record must be present; local storage is trusted, credentials are
// not re-validated.
func (r *SessionRepository) LoadSession() (domain.User, bool, error) {
	marker, ok, err := r.getString(keyLoggedIn)
	if err != nil {
		return domain.User{}, false, err
	}
	if !ok || marker != "true" {
		return domain.User{}, false, nil
	}

	var user domain.User
	ok, err = r.getJSON(keyUser, &user)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// ClearSession removes the persisted session keys.
func (r *SessionRepository) ClearSession() error {
	for _, key := range []string{keyUser, keyLoggedIn, keyRememberMe} {
		if err := r.delete(key); err != nil {
			return err
		}
	}
	return nil
}

// LoadDirectory retrieves the credentials-bearing user directory.
func (r *SessionRepository) LoadDirectory() ([]domain.Credentials, error) {
	var users []domain.Credentials
	ok, err := r.getJSON(keyUserDirectory, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Credentials{}, nil
	}
	return users, nil
}

// SaveDirectory persists the user directory.
func (r *SessionRepository) SaveDirectory(users []domain.Credentials) error {
	return r.setJSON(keyUserDirectory, users)
}

// Verify interface implementation
var _ ports.SessionRepository = (*SessionRepository)(nil)
