package vault

import (
	"context"
	"sync"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// MemoryVault is an in-memory implementation of the TokenVault interface
type MemoryVault struct {
	mu      sync.RWMutex
	token   string
	present bool
}

// NewMemoryVault creates a new in-memory vault
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{}
}

var _ ports.TokenVault = (*MemoryVault)(nil)

// Load returns the stored token, or core.ErrNoToken when empty
func (v *MemoryVault) Load(ctx context.Context) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.present {
		return "", core.ErrNoToken
	}
	return v.token, nil
}

// Store replaces the stored token
func (v *MemoryVault) Store(ctx context.Context, token string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.token = token
	v.present = true
	return nil
}

// Clear empties the slot; clearing an empty slot is a no-op
func (v *MemoryVault) Clear(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.token = ""
	v.present = false
	return nil
}
