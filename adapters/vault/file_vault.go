// Package vault persists the raw bearer token in a single well-known slot.
// The slot survives process restarts; an absent slot means no session.
package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// TokenFileName is the well-known name of the token slot
const TokenFileName = "token"

// FileVault stores the token in a file, readable only by the owning user
type FileVault struct {
	path string
}

// NewFileVault creates a vault backed by the file at path
func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

// DefaultTokenPath returns the token file location under the user config
// directory
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "splitwing", TokenFileName), nil
}

var _ ports.TokenVault = (*FileVault)(nil)

// Load reads the persisted token
func (v *FileVault) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(v.path)
	if os.IsNotExist(err) {
		return "", core.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrVaultOperationFailed, err)
	}
	if len(data) == 0 {
		return "", core.ErrNoToken
	}
	return string(data), nil
}

// Store writes the token, creating the parent directory if needed.
// The file is only readable by the owning user.
func (v *FileVault) Store(ctx context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(v.path), 0o700); err != nil {
		return fmt.Errorf("%w: %v", core.ErrVaultOperationFailed, err)
	}
	if err := os.WriteFile(v.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%w: %v", core.ErrVaultOperationFailed, err)
	}
	return nil
}

// Clear removes the token file; a missing file is not an error
func (v *FileVault) Clear(ctx context.Context) error {
	err := os.Remove(v.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", core.ErrVaultOperationFailed, err)
	}
	return nil
}
