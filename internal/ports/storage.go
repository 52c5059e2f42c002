// Package ports defines the key-value storage contract.
package ports

// KeyValueStore is the local storage the persistence layer writes through to.
// It mirrors a browser's local storage surface: string keys, string values,
// no transactions.
//
// Thread-safety: implementations must be thread-safe.
type KeyValueStore interface {
	// Get returns the value for key. The boolean is false when the key is
	// absent; absence is not an error.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Keys returns all stored keys, in no particular order.
	Keys() ([]string, error)

	// Close releases store resources.
	Close() error
}
