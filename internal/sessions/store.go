// Package sessions tracks each user's active book title. Reads and writes
// are single-key operations with last-writer-wins semantics; no cross-key
// atomicity is provided.
package sessions

// Store maps a Telegram user to their active book title.
type Store interface {
	// Get returns the user's active book title; ok is false when unset.
	Get(userID int64) (title string, ok bool, err error)
	// Set replaces the user's active book title.
	Set(userID int64, title string) error
	// Clear removes the user's active book. Clearing an unset user is a no-op.
	Clear(userID int64) error
}
