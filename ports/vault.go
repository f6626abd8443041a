package ports

import "context"

// TokenVault is the single durable slot holding the raw bearer token
// across process restarts
type TokenVault interface {
	// Load returns the persisted token, or core.ErrNoToken when the slot is empty
	Load(ctx context.Context) (string, error)

	// Store writes token to the slot, replacing any previous value
	Store(ctx context.Context, token string) error

	// Clear empties the slot; clearing an empty slot is not an error
	Clear(ctx context.Context) error
}
