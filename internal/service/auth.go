package service

import (
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoangtrungvu/musicstream/internal/domain"
	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// MinPasswordLength is the minimum accepted password length for
// registration.
const MinPasswordLength = 6

// RegisterRequest carries the fields collected by the sign-up form.
type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthService manages the local account directory and the active
// session. There is no remote identity provider: accounts live in the
// persisted directory with bcrypt password hashes, and the session is
// a client-side record of who is logged in.
type AuthService struct {
	logger *slog.Logger
	repo   ports.SessionRepository
	bus    ports.EventBus

	mu      sync.RWMutex
	session domain.Session
}

// NewAuthService creates the auth service with an empty, unauthenticated
// session.
func NewAuthService(logger *slog.Logger, repo ports.SessionRepository, bus ports.EventBus) *AuthService {
	return &AuthService{
		logger: logger,
		repo:   repo,
		bus:    bus,
	}
}

// Restore rehydrates the session from storage. A missing or cleared
// session leaves the service unauthenticated without error.
func (s *AuthService) Restore() error {
	user, ok, err := s.repo.LoadSession()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.session = domain.Session{User: &user, IsAuthenticated: true}
	session := s.session
	s.mu.Unlock()

	s.logger.Debug("session restored", "userID", user.ID, "email", user.Email)
	s.bus.Publish(domain.NewSessionChangedEvent(session))
	return nil
}

// Register validates the sign-up request, creates the account in the
// directory and logs the new user in.
func (s *AuthService) Register(req RegisterRequest) (domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := validateRegistration(email, req); err != nil {
		return domain.User{}, err
	}

	directory, err := s.repo.LoadDirectory()
	if err != nil {
		return domain.User{}, err
	}
	for _, existing := range directory {
		if normalizeEmail(existing.Email) == email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	user := domain.User{
		ID:             uuid.NewString(),
		Email:          email,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		JoinedAt:       now,
		FavoriteGenres: []string{"Pop", "Rock", "Electronic"},
		LastLoginAt:    now,
	}
	directory = append(directory, domain.Credentials{User: user, PasswordHash: string(hash)})
	if err := s.repo.SaveDirectory(directory); err != nil {
		return domain.User{}, err
	}

	if err := s.establishSession(user, true); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user registered", "userID", user.ID, "email", user.Email)
	return user, nil
}

// Login authenticates against the directory. Lookup failure and a wrong
// password both come back as ErrInvalidCredentials so callers cannot
// probe which emails exist.
func (s *AuthService) Login(email, password string, rememberMe bool) (domain.User, error) {
	email = normalizeEmail(email)

	directory, err := s.repo.LoadDirectory()
	if err != nil {
		return domain.User{}, err
	}

	idx := -1
	for i, cred := range directory {
		if normalizeEmail(cred.Email) == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(directory[idx].PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	directory[idx].LastLoginAt = time.Now()
	if err := s.repo.SaveDirectory(directory); err != nil {
		return domain.User{}, err
	}

	user := directory[idx].User
	if err := s.establishSession(user, rememberMe); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("user logged in", "userID", user.ID, "email", user.Email)
	return user, nil
}

// Logout clears the persisted session and resets to unauthenticated.
func (s *AuthService) Logout() error {
	if err := s.repo.ClearSession(); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = domain.Session{}
	session := s.session
	s.mu.Unlock()

	s.logger.Info("user logged out")
	s.bus.Publish(domain.NewSessionChangedEvent(session))
	return nil
}

// UpdateProfile applies the edited fields to the logged-in user, writing
// through to both the directory entry and the persisted session.
func (s *AuthService) UpdateProfile(update domain.ProfileUpdate) (domain.User, error) {
	s.mu.RLock()
	current := s.session.User
	s.mu.RUnlock()
	if current == nil {
		return domain.User{}, domain.ErrNotAuthenticated
	}

	directory, err := s.repo.LoadDirectory()
	if err != nil {
		return domain.User{}, err
	}
	idx := -1
	for i, cred := range directory {
		if cred.ID == current.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.User{}, domain.ErrUserNotFound
	}

	directory[idx].User = update.ApplyTo(directory[idx].User)
	if err := s.repo.SaveDirectory(directory); err != nil {
		return domain.User{}, err
	}

	user := directory[idx].User
	if err := s.establishSession(user, true); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("profile updated", "userID", user.ID)
	return user, nil
}

// Session returns a snapshot of the current session.
func (s *AuthService) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	if s.session.User != nil {
		u := *s.session.User
		session.User = &u
	}
	return session
}

// CurrentUser returns the logged-in user, or ErrNotAuthenticated.
func (s *AuthService) CurrentUser() (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.User == nil {
		return domain.User{}, domain.ErrNotAuthenticated
	}
	return *s.session.User, nil
}

func (s *AuthService) establishSession(user domain.User, rememberMe bool) error {
	if err := s.repo.SaveSession(user, rememberMe); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = domain.Session{User: &user, IsAuthenticated: true}
	session := s.session
	s.mu.Unlock()

	s.bus.Publish(domain.NewSessionChangedEvent(session))
	return nil
}

func validateRegistration(email string, req RegisterRequest) error {
	if email == "" {
		return domain.NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewValidationError("email", "email address is not valid")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return domain.NewValidationError("firstName", "first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return domain.NewValidationError("lastName", "last name is required")
	}
	if len(req.Password) < MinPasswordLength {
		return domain.NewValidationError("password", "password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return domain.NewValidationError("confirmPassword", "passwords do not match")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
