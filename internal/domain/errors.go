// Package domain defines domain-specific errors.
// These errors represent business logic failures and are independent of infrastructure.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that services can return.
var (
	// ErrTrackNotFound is returned when a requested track cannot be found.
	// Engine operations treat it as a no-op rather than a failure.
	ErrTrackNotFound = errors.New("track not found")

	// ErrQueueEmpty is returned when queue operations are attempted on an empty queue.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrDuplicateEmail is returned when registering an email that already
	// exists in the local user directory.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when no directory entry matches a
	// login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when operating on a user id that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAuthenticated is returned when an operation requires a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidVolume is returned when the volume is out of valid range (0.0-1.0).
	ErrInvalidVolume = errors.New("invalid volume: must be between 0.0 and 1.0")

	// ErrNoTrackLoaded is returned when playback is attempted with no track loaded.
	ErrNoTrackLoaded = errors.New("no track loaded")
)

// ValidationError reports client-supplied data that fails a precondition,
// such as a password mismatch or a missing required field. Validation lives
// at the service boundary, not inside the state transitions.
type ValidationError struct {
	Field   string // Field that failed validation
	Message string // Error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a persistence read/write failure. Storage errors are
// never fatal: callers log them and keep the in-memory state as the source of
// truth for the rest of the session.
type StorageError struct {
	Op  string // Operation that failed (e.g. "get", "set", "delete")
	Key string // Storage key involved
	Err error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

// AudioOutputError represents an error from the audio output collaborator.
type AudioOutputError struct {
	Op       string // Operation that failed (e.g. "load", "play", "pause")
	AudioRef string // Audio reference (if applicable)
	Err      error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *AudioOutputError) Error() string {
	if e.AudioRef != "" {
		return fmt.Sprintf("audio output %s failed for %q: %v", e.Op, e.AudioRef, e.Err)
	}
	return fmt.Sprintf("audio output %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *AudioOutputError) Unwrap() error {
	return e.Err
}

// NewAudioOutputError creates a new AudioOutputError.
func NewAudioOutputError(op, audioRef string, err error) *AudioOutputError {
	return &AudioOutputError{Op: op, AudioRef: audioRef, Err: err}
}
